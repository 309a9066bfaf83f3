package optimizer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/tag/maxent"
	"github.com/teatak/tag/postag"
)

func toyCorpus() []Sentence {
	return []Sentence{
		{Tokens: []string{"the", "dog", "barks"}, Tags: []string{"DT", "NN", "VB"}},
		{Tokens: []string{"the", "cat", "sleeps"}, Tags: []string{"DT", "NN", "VB"}},
		{Tokens: []string{"a", "dog", "sleeps"}, Tags: []string{"DT", "NN", "VB"}},
	}
}

func TestTrainFitsToyCorpus(t *testing.T) {
	sentences := toyCorpus()

	model, err := Train(sentences, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"DT", "NN", "VB"}, model.AllOutcomes())

	tagger, err := postag.New(model)
	require.NoError(t, err)

	acc, err := Evaluate(tagger, sentences)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc.Tokens)
	assert.Equal(t, 1.0, acc.Sentences)
}

func TestTrainEmptyCorpus(t *testing.T) {
	_, err := Train(nil, 5, 3)
	assert.Error(t, err)
}

func TestTrainFileRoundTrip(t *testing.T) {
	corpusPath := writeCorpus(t, "the/DT dog/NN barks/VB\nthe/DT cat/NN sleeps/VB\n")
	modelPath := filepath.Join(t.TempDir(), "model.txt")

	require.NoError(t, TrainFile(corpusPath, modelPath, 20, 3))

	model, err := maxent.Load(modelPath)
	require.NoError(t, err)

	tagger, err := postag.New(model)
	require.NoError(t, err)

	tags, _, err := tagger.Tag([]string{"the", "dog", "sleeps"})
	require.NoError(t, err)
	assert.Equal(t, []string{"DT", "NN", "VB"}, tags)
}

func TestEvaluateCountsSentences(t *testing.T) {
	model := maxent.NewModel("DT", "NN")
	dt, _ := model.OutcomeIndex("DT")
	nn, _ := model.OutcomeIndex("NN")
	model.UpdateFeat("w=the", dt, 10.0)
	model.UpdateFeat("w=dog", nn, 10.0)

	tagger, err := postag.New(model)
	require.NoError(t, err)

	sentences := []Sentence{
		{Tokens: []string{"the", "dog"}, Tags: []string{"DT", "NN"}},
		{Tokens: []string{"the", "dog"}, Tags: []string{"DT", "DT"}}, // one wrong token
	}
	acc, err := Evaluate(tagger, sentences)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, acc.Tokens, 1e-12)
	assert.InDelta(t, 0.5, acc.Sentences, 1e-12)
}

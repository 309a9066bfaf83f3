package optimizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCorpus(t *testing.T) {
	path := writeCorpus(t, "the/DT dog/NN barks/VB\n\n1/2/CD ,/, ok/JJ\n")

	sentences, err := LoadCorpus(path)
	require.NoError(t, err)
	require.Len(t, sentences, 2)

	assert.Equal(t, []string{"the", "dog", "barks"}, sentences[0].Tokens)
	assert.Equal(t, []string{"DT", "NN", "VB"}, sentences[0].Tags)

	// The tag starts after the last slash.
	assert.Equal(t, []string{"1/2", ",", "ok"}, sentences[1].Tokens)
	assert.Equal(t, []string{"CD", ",", "JJ"}, sentences[1].Tags)
}

func TestLoadCorpusMalformed(t *testing.T) {
	for _, bad := range []string{"notagged\n", "/DT\n", "word/\n"} {
		path := writeCorpus(t, bad)
		_, err := LoadCorpus(path)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestCollectOutcomes(t *testing.T) {
	sentences := []Sentence{
		{Tokens: []string{"b", "a"}, Tags: []string{"VB", "NN"}},
		{Tokens: []string{"c"}, Tags: []string{"DT"}},
		{Tokens: []string{"d"}, Tags: []string{"NN"}},
	}
	assert.Equal(t, []string{"DT", "NN", "VB"}, CollectOutcomes(sentences))
}

func TestBuildLexicon(t *testing.T) {
	sentences := []Sentence{
		{Tokens: []string{"the", "dog", ",", "the"}, Tags: []string{"DT", "NN", ",", "DT"}},
	}
	lex := BuildLexicon(sentences)
	assert.Equal(t, 2, lex.Count("the"))
	assert.Equal(t, 1, lex.Count("dog"))
	assert.False(t, lex.Contains(","), "punctuation stays out of the lexicon")
}

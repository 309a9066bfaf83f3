package optimizer

import "github.com/teatak/tag/postag"

// Accuracy holds evaluation results on an annotated corpus.
type Accuracy struct {
	Tokens    float64 // fraction of tokens tagged correctly
	Sentences float64 // fraction of sentences tagged fully correctly
}

// Evaluate tags every sentence of the corpus and scores the output against
// the golden tags.
func Evaluate(tagger *postag.Tagger, sentences []Sentence) (Accuracy, error) {
	var total, correct, sentsCorrect int

	for _, sent := range sentences {
		tags, _, err := tagger.Tag(sent.Tokens)
		if err != nil {
			return Accuracy{}, err
		}
		sentOk := true
		for i, tag := range tags {
			total++
			if tag == sent.Tags[i] {
				correct++
			} else {
				sentOk = false
			}
		}
		if sentOk {
			sentsCorrect++
		}
	}

	var acc Accuracy
	if total > 0 {
		acc.Tokens = float64(correct) / float64(total)
	}
	if len(sentences) > 0 {
		acc.Sentences = float64(sentsCorrect) / float64(len(sentences))
	}
	return acc, nil
}

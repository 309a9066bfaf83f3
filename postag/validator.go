package postag

import (
	"github.com/teatak/tag/beam"
	"github.com/teatak/tag/ngram"
)

// ClosedClassValidator rejects closed-class tags (determiners, pronouns,
// conjunctions and similar fixed inventories) on words the lexicon has never
// seen. An out-of-vocabulary word is an open-class word by assumption; giving
// it a closed-class tag is a search error worth excluding outright.
func ClosedClassValidator(lexicon *ngram.Model, closed ...string) beam.Validator {
	closedSet := make(map[string]bool, len(closed))
	for _, tag := range closed {
		closedSet[tag] = true
	}
	return func(index int, tokens, tags []string, outcome string) bool {
		if !closedSet[outcome] {
			return true
		}
		return lexicon.Contains(tokens[index])
	}
}

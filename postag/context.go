package postag

import (
	"github.com/teatak/tag/ngram"
	"github.com/teatak/tag/util"
)

// Boundary markers used in place of out-of-range words and tags.
const (
	markerBOS = "*BOS*"
	markerEOS = "*EOS*"
)

// ContextGen produces the feature context for one tagging step: the current
// and surrounding words, the one and two previously assigned tags, and
// orthographic features (affixes and character shape) for words the lexicon
// has never seen. It is a pure function of its inputs, so the decoder can
// recompute it identically for every branch of the beam.
type ContextGen struct {
	// lexicon of known words; nil treats every word as unseen so that
	// orthographic features are always produced.
	lexicon *ngram.Model
}

// NewContextGen creates a context generator. lexicon may be nil.
func NewContextGen(lexicon *ngram.Model) *ContextGen {
	return &ContextGen{lexicon: lexicon}
}

// Context implements beam.ContextGenerator. tags holds the outcomes assigned
// to tokens[0:index]; extra is ignored.
func (g *ContextGen) Context(tokens, tags []string, index int, extra any) []string {
	word := tokens[index]

	feats := []string{"default", "w=" + word}

	if g.lexicon == nil || !g.lexicon.Contains(word) {
		feats = append(feats, affixFeats(word)...)
		if util.HasDigit(word) {
			feats = append(feats, "sh=d")
		}
		if util.HasHyphen(word) {
			feats = append(feats, "sh=h")
		}
		if util.HasUpper(word) {
			feats = append(feats, "sh=c")
		}
	}

	prev, prevPrev := markerBOS, markerBOS
	if index > 0 {
		prev = tokens[index-1]
	}
	if index > 1 {
		prevPrev = tokens[index-2]
	}
	next, nextNext := markerEOS, markerEOS
	if index+1 < len(tokens) {
		next = tokens[index+1]
	}
	if index+2 < len(tokens) {
		nextNext = tokens[index+2]
	}
	feats = append(feats, "p="+prev, "pp="+prevPrev, "n="+next, "nn="+nextNext)

	tagPrev, tagPrevPrev := markerBOS, markerBOS
	if index > 0 {
		tagPrev = tags[index-1]
	}
	if index > 1 {
		tagPrevPrev = tags[index-2]
	}
	feats = append(feats, "t="+tagPrev, "tt="+tagPrevPrev+","+tagPrev)

	return feats
}

// affixFeats produces prefix and suffix features up to four characters.
func affixFeats(word string) []string {
	runes := []rune(word)
	var feats []string
	for i := 1; i <= 4 && i <= len(runes); i++ {
		feats = append(feats, "pre="+string(runes[:i]))
		feats = append(feats, "suf="+string(runes[len(runes)-i:]))
	}
	return feats
}

package postag

import (
	"sort"
	"strings"

	"github.com/teatak/tag/beam"
	"github.com/teatak/tag/maxent"
	"github.com/teatak/tag/tokenizer"
)

// Tagger assigns part-of-speech tags to token sequences using beam search
// over a maximum entropy model. It holds no mutable state across Tag calls,
// so one Tagger can serve concurrent inputs.
type Tagger struct {
	model *maxent.Model
	cg    beam.ContextGenerator
	dec   *beam.Decoder
}

type options struct {
	size  int
	cg    beam.ContextGenerator
	valid beam.Validator
}

// Option configures a Tagger.
type Option func(*options)

// WithBeamSize sets the beam width. The default is beam.DefaultSize.
func WithBeamSize(size int) Option {
	return func(o *options) { o.size = size }
}

// WithContextGenerator replaces the default context generator.
func WithContextGenerator(cg beam.ContextGenerator) Option {
	return func(o *options) { o.cg = cg }
}

// WithValidator installs a validator that hard-excludes tag assignments
// before they enter the beam.
func WithValidator(v beam.Validator) Option {
	return func(o *options) { o.valid = v }
}

// New creates a Tagger for a trained model.
func New(model *maxent.Model, opts ...Option) (*Tagger, error) {
	o := options{size: beam.DefaultSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cg == nil {
		o.cg = NewContextGen(nil)
	}
	dec, err := beam.New(o.size, model, o.cg, o.valid)
	if err != nil {
		return nil, err
	}
	return &Tagger{model: model, cg: o.cg, dec: dec}, nil
}

// Tag returns one tag per token along the best-scoring sequence, together
// with the probability the model assigned each chosen tag.
func (t *Tagger) Tag(tokens []string) ([]string, []float64, error) {
	return t.TagWith(tokens, nil)
}

// TagWith is Tag with an opaque extra argument passed through to the context
// generator, for example output of an earlier pipeline stage.
func (t *Tagger) TagWith(tokens []string, extra any) ([]string, []float64, error) {
	seq, err := t.dec.Best(tokens, extra)
	if err != nil {
		return nil, nil, err
	}
	return seq.Outcomes(), seq.Probs(), nil
}

// TagSentence tokenizes a sentence and returns it tagged as
// "token/tag token/tag ...".
func (t *Tagger) TagSentence(sentence string) (string, error) {
	tokens := tokenizer.Tokenize(sentence)
	tags, _, err := t.Tag(tokens)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(token)
		sb.WriteByte('/')
		sb.WriteString(tags[i])
	}
	return sb.String(), nil
}

// OrderedTags returns every tag in the vocabulary ordered from most to least
// probable for the token at index, given the tags already assigned to
// tokens[0:index].
func (t *Tagger) OrderedTags(tokens, tags []string, index int) ([]string, error) {
	context := t.cg.Context(tokens, tags, index, nil)
	probs, err := t.model.Eval(context)
	if err != nil {
		return nil, err
	}
	ordered := make([]string, len(probs))
	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return probs[idx[a]] > probs[idx[b]]
	})
	for rank, i := range idx {
		ordered[rank] = t.model.Outcome(i)
	}
	return ordered, nil
}

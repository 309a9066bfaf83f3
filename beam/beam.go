package beam

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultSize is the beam width used when callers have no reason to pick
// another one.
const DefaultSize = 3

var (
	// ErrConfig reports an invalid Decoder configuration.
	ErrConfig = errors.New("beam: invalid configuration")
	// ErrNoValidSequence reports that every candidate was rejected by the
	// validator at some position, so no complete sequence could be formed.
	ErrNoValidSequence = errors.New("beam: no valid sequence")
)

// Scorer maps a feature context to a probability distribution over a fixed,
// ordered outcome vocabulary. Eval must be a pure function of its context and
// safe for concurrent use; the returned slice always has length NumOutcomes
// and is aligned to the Outcome index mapping.
type Scorer interface {
	Eval(context []string) ([]float64, error)
	NumOutcomes() int
	Outcome(i int) string
}

// ContextGenerator produces the feature context for one decoding step.
// It must be deterministic and side-effect free, may consult tags up to but
// not beyond index, and must not retain or modify the slices it is given.
type ContextGenerator interface {
	Context(tokens, tags []string, index int, extra any) []string
}

// ContextFunc adapts a plain function to the ContextGenerator interface.
type ContextFunc func(tokens, tags []string, index int, extra any) []string

func (f ContextFunc) Context(tokens, tags []string, index int, extra any) []string {
	return f(tokens, tags, index, extra)
}

// Validator approves or rejects assigning outcome at index before the
// candidate enters the next beam. A nil Validator accepts everything.
// Implementations must not modify the slices they are given.
type Validator func(index int, tokens, tags []string, outcome string) bool

// Decoder searches for the highest-scoring outcome sequence for an input,
// keeping only the best partial sequences at each position. It holds no
// state that outlives a single Best call, so one Decoder may serve many
// goroutines at once.
//
// Pruning is irreversible, so the result is an approximation: a partial
// sequence discarded early can never be revisited, even if it would have led
// to a better complete sequence. Width 1 reduces to a greedy per-step argmax.
type Decoder struct {
	size  int
	model Scorer
	cg    ContextGenerator
	valid Validator
}

// New creates a Decoder with the given beam width. The validator may be nil.
func New(size int, model Scorer, cg ContextGenerator, valid Validator) (*Decoder, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: beam size %d", ErrConfig, size)
	}
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", ErrConfig)
	}
	if model.NumOutcomes() == 0 {
		return nil, fmt.Errorf("%w: model has an empty outcome vocabulary", ErrConfig)
	}
	if cg == nil {
		return nil, fmt.Errorf("%w: nil context generator", ErrConfig)
	}
	return &Decoder{size: size, model: model, cg: cg, valid: valid}, nil
}

// Size returns the configured beam width.
func (d *Decoder) Size() int {
	return d.size
}

// Best returns the highest-scoring Sequence for tokens. extra is passed
// through untouched to the context generator. Empty input returns the empty
// Sequence without evaluating the model. If the validator rejects every
// candidate at some position, Best fails with ErrNoValidSequence and no
// partial result.
//
// Ties on cumulative score keep generation order: earlier beam entries first,
// then lower outcome indexes. Together with deterministic collaborators this
// makes the output reproducible for identical inputs.
func (d *Decoder) Best(tokens []string, extra any) (*Sequence, error) {
	prev := []*Sequence{emptySequence()}

	for i := range tokens {
		var next []*Sequence
		for _, s := range prev {
			context := d.cg.Context(tokens, s.outcomes, i, extra)
			probs, err := d.model.Eval(context)
			if err != nil {
				return nil, fmt.Errorf("beam: position %d: %w", i, err)
			}
			if len(probs) != d.model.NumOutcomes() {
				return nil, fmt.Errorf("beam: position %d: model returned %d probabilities, want %d",
					i, len(probs), d.model.NumOutcomes())
			}
			for j, p := range probs {
				outcome := d.model.Outcome(j)
				if d.valid != nil && !d.valid(i, tokens, s.outcomes, outcome) {
					continue
				}
				next = append(next, s.extend(outcome, p))
			}
		}
		if len(next) == 0 {
			return nil, fmt.Errorf("beam: position %d: %w", i, ErrNoValidSequence)
		}
		sort.SliceStable(next, func(a, b int) bool {
			return next[a].score > next[b].score
		})
		if len(next) > d.size {
			next = next[:d.size]
		}
		prev = next
	}

	return prev[0], nil
}

package beam

import "math"

// Sequence is an immutable record of the outcomes chosen so far, the
// probability assigned to each outcome at the step it was chosen, and the
// cumulative score of the whole history. The score is kept in log space so
// long inputs do not underflow; ordering by log sum is identical to ordering
// by the raw probability product.
type Sequence struct {
	outcomes []string
	probs    []float64
	score    float64
}

func emptySequence() *Sequence {
	return &Sequence{}
}

// extend returns a new Sequence with outcome appended at probability prob.
// The parent is never mutated; every branch of the beam owns its own history.
func (s *Sequence) extend(outcome string, prob float64) *Sequence {
	n := len(s.outcomes)
	next := &Sequence{
		outcomes: make([]string, n+1),
		probs:    make([]float64, n+1),
		score:    s.score + math.Log(prob),
	}
	copy(next.outcomes, s.outcomes)
	copy(next.probs, s.probs)
	next.outcomes[n] = outcome
	next.probs[n] = prob
	return next
}

// Len returns the number of steps decoded so far.
func (s *Sequence) Len() int {
	return len(s.outcomes)
}

// Outcomes returns a copy of the chosen outcome history.
func (s *Sequence) Outcomes() []string {
	out := make([]string, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}

// Probs returns a copy of the per-step probabilities along the history.
func (s *Sequence) Probs() []float64 {
	out := make([]float64, len(s.probs))
	copy(out, s.probs)
	return out
}

// Score returns the cumulative log probability of the history.
func (s *Sequence) Score() float64 {
	return s.score
}

package tokenizer

import "fmt"

// Span stores start and end offsets of a token within its source text.
// End is exclusive.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Compare orders spans by start offset, longer span first on equal starts.
func (s Span) Compare(o Span) int {
	switch {
	case s.Start < o.Start:
		return -1
	case s.Start > o.Start:
		return 1
	case s.End > o.End:
		return -1
	case s.End < o.End:
		return 1
	default:
		return 0
	}
}

// Of slices text to the span.
func (s Span) Of(text string) string {
	return text[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

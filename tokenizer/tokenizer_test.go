package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{"Mr. Smith gave a car", []string{"Mr.", "Smith", "gave", "a", "car"}},
		{"  padded\ttabs \n", []string{"padded", "tabs"}},
		{"", []string{}},
		{"ＡＢＣ １２３", []string{"ABC", "123"}}, // NFKC folds full-width forms
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Tokenize(tt.text), "Tokenize(%q)", tt.text)
	}
}

func TestTokenSpans(t *testing.T) {
	text := "time flies"
	spans := TokenSpans(text)
	assert.Equal(t, []Span{{Start: 0, End: 4}, {Start: 5, End: 10}}, spans)

	normed := Normalize(text)
	assert.Equal(t, "time", spans[0].Of(normed))
	assert.Equal(t, "flies", spans[1].Of(normed))
}

func TestSpan(t *testing.T) {
	outer := Span{Start: 0, End: 10}
	inner := Span{Start: 2, End: 5}

	assert.Equal(t, 10, outer.Len())
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))

	assert.Equal(t, -1, outer.Compare(inner))
	assert.Equal(t, 1, inner.Compare(outer))
	assert.Equal(t, 0, inner.Compare(inner))
	assert.Equal(t, -1, Span{Start: 2, End: 8}.Compare(inner), "longer span first on equal starts")

	assert.Equal(t, "2..5", inner.String())
}

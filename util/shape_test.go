package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPunctuation(t *testing.T) {
	assert.True(t, IsPunctuation(","))
	assert.True(t, IsPunctuation("..."))
	assert.True(t, IsPunctuation("$"))
	assert.False(t, IsPunctuation("word"))
	assert.False(t, IsPunctuation("can't"))
	assert.False(t, IsPunctuation(""))
}

func TestShapePredicates(t *testing.T) {
	assert.True(t, HasDigit("42nd"))
	assert.False(t, HasDigit("word"))

	assert.True(t, HasUpper("McDonald"))
	assert.False(t, HasUpper("lower"))

	assert.True(t, HasHyphen("well-known"))
	assert.False(t, HasHyphen("plain"))
}

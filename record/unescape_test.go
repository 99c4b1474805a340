package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescapeExpandsReservedSequences(t *testing.T) {
	d := DefaultDelimiters()
	assert.Equal(t, "a|b", string(Unescape([]byte("a&F&b"), d)))
	assert.Equal(t, "a\\b", string(Unescape([]byte("a&R&b"), d)))
	assert.Equal(t, "a^b", string(Unescape([]byte("a&S&b"), d)))
	assert.Equal(t, "a&b", string(Unescape([]byte("a&E&b"), d)))
}

func TestUnescapeExpandsHighlightAndHexByte(t *testing.T) {
	d := DefaultDelimiters()
	assert.Equal(t, "ab", string(Unescape([]byte("a&H&b"), d)))
	assert.Equal(t, "a\rb", string(Unescape([]byte("a&X0D&b"), d)))
	assert.Equal(t, "a\x00b", string(Unescape([]byte("a&X00&b"), d)))
}

func TestUnescapePassesThroughVendorSequences(t *testing.T) {
	d := DefaultDelimiters()
	assert.Equal(t, "a&Zqq&b", string(Unescape([]byte("a&Zqq&b"), d)))
	assert.Equal(t, "a&XGG&b", string(Unescape([]byte("a&XGG&b"), d)))
}

func TestUnescapeUnterminatedEscapePassesThroughLiterally(t *testing.T) {
	d := DefaultDelimiters()
	assert.Equal(t, "a&F", string(Unescape([]byte("a&F"), d)))
}

func TestUnescapeEmptyFieldReturnsEmpty(t *testing.T) {
	assert.Equal(t, []byte(nil), Unescape(nil, DefaultDelimiters()))
}

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDelimiters(t *testing.T) {
	d := DefaultDelimiters()
	assert.Equal(t, byte('|'), d.Field)
	assert.Equal(t, byte('\\'), d.Repeat)
	assert.Equal(t, byte('^'), d.Component)
	assert.Equal(t, byte('&'), d.Escape)
}

func TestIsAbsent(t *testing.T) {
	assert.True(t, IsAbsent(nil))
	assert.True(t, IsAbsent([]byte{}))
	assert.False(t, IsAbsent([]byte("x")))
}

func TestRepeatsSingleGroupWithoutDelimiter(t *testing.T) {
	d := DefaultDelimiters()
	groups := Repeats([]byte("onlyvalue"), d)
	assert.Equal(t, [][]byte{[]byte("onlyvalue")}, groups)
}

func TestRepeatsMultipleGroups(t *testing.T) {
	d := DefaultDelimiters()
	groups := Repeats([]byte("a\\b\\c"), d)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, groups)
}

func TestRepeatsAbsentFieldYieldsNoGroups(t *testing.T) {
	assert.Nil(t, Repeats(nil, DefaultDelimiters()))
}

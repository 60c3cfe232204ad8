package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_AddIsMostRecentFirst(t *testing.T) {
	b := NewBuffer("older", "oldest")

	assert.True(t, b.Add("newest"))
	assert.Equal(t, []string{"newest", "older", "oldest"}, b.Entries())
	assert.Equal(t, 3, b.Len())
}

func TestBuffer_AddSkipsBlankAndRepeats(t *testing.T) {
	b := NewBuffer()

	assert.False(t, b.Add(""))
	assert.False(t, b.Add("   "))
	assert.True(t, b.Add("hello"))
	assert.False(t, b.Add("hello"))
	assert.True(t, b.Add("world"))
	assert.True(t, b.Add("hello"))

	assert.Equal(t, []string{"hello", "world", "hello"}, b.Entries())
}

func TestBuffer_EntriesIsSnapshot(t *testing.T) {
	b := NewBuffer("a")

	snapshot := b.Entries()
	snapshot[0] = "mutated"
	b.Append("b")

	assert.Equal(t, []string{"a", "b"}, b.Entries())
	assert.Equal(t, []string{"mutated"}, snapshot)
}

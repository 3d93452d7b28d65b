package set_test

import (
	"testing"

	"github.com/SylphxAI/Pura/owner"
	"github.com/SylphxAI/Pura/set"
	"github.com/stretchr/testify/assert"
)

func TestAddHasRemove(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	s := set.Empty[string]()
	s = set.Add(s, o, "a")
	s = set.Add(s, o, "b")

	assert.True(s.Has("a"))
	assert.True(s.Has("b"))
	assert.False(s.Has("c"))
	assert.Equal(2, s.Size())

	s = set.Remove(s, o, "a")
	assert.False(s.Has("a"))
	assert.Equal(1, s.Size())
}

func TestAddDuplicateIsNoop(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	s := set.Add(set.Empty[int](), o, 1)
	s2 := set.Add(s, o, 1)
	assert.Equal(s, s2)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	s := set.Add(set.Empty[int](), o, 1)
	s2 := set.Remove(s, o, 99)
	assert.Equal(s, s2)
}

func TestFromSliceDedups(t *testing.T) {
	assert := assert.New(t)

	s := set.FromSlice([]int{1, 2, 2, 3, 1})
	assert.Equal(3, s.Size())
	assert.True(s.Has(1))
	assert.True(s.Has(2))
	assert.True(s.Has(3))
}

func TestForEach(t *testing.T) {
	assert := assert.New(t)

	s := set.FromSlice([]string{"x", "y", "z"})
	seen := map[string]bool{}
	s.ForEach(func(k string) { seen[k] = true })
	assert.Equal(map[string]bool{"x": true, "y": true, "z": true}, seen)
}

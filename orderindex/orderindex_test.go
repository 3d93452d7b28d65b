package orderindex_test

import (
	"testing"

	"github.com/SylphxAI/Pura/orderindex"
	"github.com/SylphxAI/Pura/owner"
	"github.com/stretchr/testify/assert"
)

func TestOrderedMapIterationAfterDeleteAndInsert(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	ix := orderindex.New[int, string](true)
	ix = orderindex.Set(ix, o, 2, "x")
	ix = orderindex.Set(ix, o, 1, "y")
	ix = orderindex.Set(ix, o, 3, "z")
	ix = orderindex.Delete(ix, o, 1)
	ix = orderindex.Set(ix, o, 4, "w")

	type pair struct {
		k int
		v string
	}
	var got []pair
	orderindex.ForEach(ix, func(k int, v string) { got = append(got, pair{k, v}) })

	assert.Equal([]pair{{2, "x"}, {3, "z"}, {4, "w"}}, got)
	assert.Equal(3, ix.Len())
	assert.False(ix.Has(1))
}

func TestOrderedSetKeysIteration(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	ix := orderindex.New[string, struct{}](false)
	ix = orderindex.Set(ix, o, "a", struct{}{})
	ix = orderindex.Set(ix, o, "b", struct{}{})
	ix = orderindex.Set(ix, o, "c", struct{}{})

	var got []string
	for k := range orderindex.Keys(ix) {
		got = append(got, k)
	}
	assert.Equal([]string{"a", "b", "c"}, got)
}

func TestReassignPreservesOrder(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	ix := orderindex.New[string, int](true)
	ix = orderindex.Set(ix, o, "a", 1)
	ix = orderindex.Set(ix, o, "b", 2)
	ix = orderindex.Set(ix, o, "a", 99)

	v, ok := ix.Get("a")
	assert.True(ok)
	assert.Equal(99, v)

	var keys []string
	orderindex.ForEach(ix, func(k string, _ int) { keys = append(keys, k) })
	assert.Equal([]string{"a", "b"}, keys)
}

func TestCompactionOnHeavyChurn(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	ix := orderindex.New[int, int](true)
	for i := 0; i < 100; i++ {
		ix = orderindex.Set(ix, o, i, i)
	}
	for i := 0; i < 80; i++ {
		ix = orderindex.Delete(ix, o, i)
	}
	assert.Equal(20, ix.Len())

	var got []int
	orderindex.ForEach(ix, func(k int, _ int) { got = append(got, k) })
	for i, k := range got {
		assert.Equal(80+i, k)
	}
}

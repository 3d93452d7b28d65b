package imm_test

import (
	"testing"

	imm "github.com/SylphxAI/Pura"
	"github.com/SylphxAI/Pura/draft"
	"github.com/SylphxAI/Pura/orderindex"
	"github.com/stretchr/testify/assert"
)

func TestVecOfAndProduce(t *testing.T) {
	assert := assert.New(t)

	v := imm.VecOf([]int{1, 2, 3})
	out, err := imm.Produce(v, func(d *draft.Draft) error {
		return d.Push(4)
	})
	assert.NoError(err)
	assert.Equal(4, out.Len())

	got, ok := out.Get(3)
	assert.True(ok)
	assert.Equal(4, got)
}

func TestMapAndSetConstructors(t *testing.T) {
	assert := assert.New(t)

	s := imm.SetOf([]string{"a", "b", "a"})
	assert.Equal(2, s.Size())
	assert.True(s.Has("a"))

	m := imm.NewMap[string, int]()
	assert.Equal(0, m.Size())
}

func TestOrderedMapConstructorTracksOrder(t *testing.T) {
	assert := assert.New(t)

	o := imm.NewToken()
	ix := imm.NewOrderedMap[string, int]()
	ix = orderindex.Set(ix, o, "x", 1)
	ix = orderindex.Set(ix, o, "y", 2)

	var keys []string
	orderindex.ForEach(ix, func(k string, _ int) { keys = append(keys, k) })
	assert.Equal([]string{"x", "y"}, keys)
}

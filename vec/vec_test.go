package vec_test

import (
	"testing"

	"github.com/SylphxAI/Pura/owner"
	"github.com/SylphxAI/Pura/vec"
	"github.com/stretchr/testify/assert"
)

func TestFromToSliceRoundTrip(t *testing.T) {
	assert := assert.New(t)

	xs := []int{1, 2, 3, 4, 5}
	v := vec.FromSlice(xs)
	assert.Equal(xs, vec.ToSlice(v))
	assert.Equal(len(xs), v.Len())
}

func TestFromToSliceLarge(t *testing.T) {
	assert := assert.New(t)

	xs := make([]int, 200)
	for i := range xs {
		xs[i] = i
	}
	v := vec.FromSlice(xs)
	assert.Equal(xs, vec.ToSlice(v))
}

func TestAssocIndependence(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	v := vec.FromSlice([]int{10, 20, 30, 40, 50})
	v2, err := v.Assoc(o, 2, 99)
	assert.NoError(err)

	got, ok := v2.Get(2)
	assert.True(ok)
	assert.Equal(99, got)

	for j, want := range []int{10, 20, 30, 40, 50} {
		if j == 2 {
			continue
		}
		got, ok := v2.Get(j)
		assert.True(ok)
		assert.Equal(want, got)
	}

	// original untouched
	orig, ok := v.Get(2)
	assert.True(ok)
	assert.Equal(30, orig)
}

func TestAssocOutOfRange(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	v := vec.FromSlice([]int{1, 2, 3})
	_, err := v.Assoc(o, 10, 1)
	assert.Error(err)

	_, err = v.Assoc(o, -1, 1)
	assert.Error(err)
}

func TestPushPopRoundTrip(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	v := vec.FromSlice([]int{1, 2, 3})
	v = v.Push(o, 4)
	v = v.Push(o, 5)
	assert.Equal([]int{1, 2, 3, 4, 5}, vec.ToSlice(v))

	v, popped, ok := v.Pop(o)
	assert.True(ok)
	assert.Equal(5, popped)

	v, popped, ok = v.Pop(o)
	assert.True(ok)
	assert.Equal(4, popped)

	assert.Equal([]int{1, 2, 3}, vec.ToSlice(v))
}

func TestPopEmpty(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	v := vec.Empty[int]()
	_, _, ok := v.Pop(o)
	assert.False(ok)
}

func TestPushAcrossManyLevels(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	v := vec.Empty[int]()
	for i := 0; i < 5000; i++ {
		v = v.Push(o, i)
	}
	assert.Equal(5000, v.Len())
	for i := 0; i < 5000; i++ {
		got, ok := v.Get(i)
		assert.True(ok)
		assert.Equal(i, got)
	}
}

func TestStructuralIndependenceAcrossProduceLikeEdits(t *testing.T) {
	assert := assert.New(t)

	a := vec.FromSlice([]int{1, 2})
	b := a.Push(owner.New(), 3)
	c := b.Push(owner.New(), 4)

	assert.Equal([]int{1, 2}, vec.ToSlice(a))
	assert.Equal([]int{1, 2, 3, 4}, vec.ToSlice(c))
}

func TestConcatMedium(t *testing.T) {
	assert := assert.New(t)

	xs := make([]int, 100)
	ys := make([]int, 100)
	for i := range xs {
		xs[i] = i
	}
	for i := range ys {
		ys[i] = i + 100
	}
	a := vec.FromSlice(xs)
	b := vec.FromSlice(ys)
	c := vec.Concat(a, b, owner.New())

	assert.Equal(200, c.Len())
	for i := 0; i < 200; i++ {
		got, ok := c.Get(i)
		assert.True(ok)
		assert.Equal(i, got)
	}
}

func TestSliceBeyondBounds(t *testing.T) {
	assert := assert.New(t)

	v := vec.FromSlice([]int{1, 2, 3})
	o := owner.New()

	assert.Equal([]int{1, 2, 3}, vec.ToSlice(vec.Slice(v, o, 0, 100)))
	assert.Equal([]int{}, vec.ToSlice(vec.Slice(v, o, 100, 200)))
}

func TestSliceMiddle(t *testing.T) {
	assert := assert.New(t)

	xs := make([]int, 80)
	for i := range xs {
		xs[i] = i
	}
	v := vec.FromSlice(xs)
	o := owner.New()

	got := vec.ToSlice(vec.Slice(v, o, 10, 70))
	assert.Equal(xs[10:70], got)
}

func TestForEachOrder(t *testing.T) {
	assert := assert.New(t)

	v := vec.FromSlice([]int{5, 4, 3, 2, 1})
	var out []int
	v.ForEach(func(x int) { out = append(out, x) })
	assert.Equal([]int{5, 4, 3, 2, 1}, out)
}

func TestIter(t *testing.T) {
	assert := assert.New(t)

	v := vec.FromSlice([]int{1, 2, 3})
	var out []int
	for x := range v.Iter() {
		out = append(out, x)
	}
	assert.Equal([]int{1, 2, 3}, out)
}

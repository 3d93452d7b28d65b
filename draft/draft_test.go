package draft_test

import (
	"errors"
	"testing"

	"github.com/SylphxAI/Pura/draft"
	"github.com/SylphxAI/Pura/hamt"
	"github.com/SylphxAI/Pura/owner"
	"github.com/SylphxAI/Pura/set"
	"github.com/SylphxAI/Pura/vec"
	"github.com/stretchr/testify/assert"
)

func TestProduceVecIdentityNoop(t *testing.T) {
	assert := assert.New(t)

	v := vec.FromSlice([]int{1, 2, 3})
	out, err := draft.ProduceTyped(v, func(d *draft.Draft) error { return nil })
	assert.NoError(err)
	assert.Equal(v, out)
}

func TestProduceVecPushAndSet(t *testing.T) {
	assert := assert.New(t)

	v := vec.FromSlice([]int{1, 2, 3})
	out, err := draft.ProduceTyped(v, func(d *draft.Draft) error {
		if err := d.Push(4); err != nil {
			return err
		}
		return d.Set(0, 99)
	})
	assert.NoError(err)
	assert.Equal([]int{99, 2, 3, 4}, vec.ToSlice(out))
	assert.Equal([]int{1, 2, 3}, vec.ToSlice(v))
}

func TestProduceVecPop(t *testing.T) {
	assert := assert.New(t)

	v := vec.FromSlice([]int{1, 2, 3})
	var popped any
	out, err := draft.ProduceTyped(v, func(d *draft.Draft) error {
		var ok bool
		var perr error
		popped, ok, perr = d.Pop()
		if perr != nil {
			return perr
		}
		if !ok {
			return errors.New("expected a value")
		}
		return nil
	})
	assert.NoError(err)
	assert.Equal(3, popped)
	assert.Equal([]int{1, 2}, vec.ToSlice(out))
}

func TestProduceMapSetAndDelete(t *testing.T) {
	assert := assert.New(t)

	o := owner.New()
	m := hamt.Set(hamt.Empty[string, int](), o, "a", 1)

	out, err := draft.ProduceTyped(m, func(d *draft.Draft) error {
		if err := d.Set("b", 2); err != nil {
			return err
		}
		return d.Delete("a")
	})
	assert.NoError(err)

	v, ok := out.Get("b")
	assert.True(ok)
	assert.Equal(2, v)
	assert.False(out.Has("a"))

	// original untouched
	assert.True(m.Has("a"))
}

func TestProduceSetAddRemoveHas(t *testing.T) {
	assert := assert.New(t)

	s := set.FromSlice([]string{"a", "b"})
	out, err := draft.ProduceTyped(s, func(d *draft.Draft) error {
		if err := d.Add("c"); err != nil {
			return err
		}
		present, herr := d.Has("a")
		if herr != nil {
			return herr
		}
		if !present {
			return errors.New("expected a present")
		}
		return d.Remove("a")
	})
	assert.NoError(err)
	assert.True(out.Has("b"))
	assert.True(out.Has("c"))
	assert.False(out.Has("a"))
	assert.False(s.Has("c"))
}

func TestProduceRecipeErrorDiscardsDraft(t *testing.T) {
	assert := assert.New(t)

	sentinel := errors.New("boom")
	v := vec.FromSlice([]int{1, 2, 3})
	_, err := draft.ProduceTyped(v, func(d *draft.Draft) error {
		if err := d.Push(99); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(err, sentinel)
	assert.Equal([]int{1, 2, 3}, vec.ToSlice(v))
}

type inner struct {
	X int
}

type outer struct {
	Name string
	In   *inner
}

func TestProduceNestedRecordDraft(t *testing.T) {
	assert := assert.New(t)

	base := &outer{Name: "orig", In: &inner{X: 1}}

	out, err := draft.ProduceTyped(base, func(d *draft.Draft) error {
		innerAny, gerr := d.Get("In")
		if gerr != nil {
			return gerr
		}
		nested := innerAny.(*draft.Draft)
		return nested.Set("X", 42)
	})
	assert.NoError(err)

	assert.Equal("orig", out.Name)
	assert.Equal(42, out.In.X)

	// original untouched by the nested edit
	assert.Equal(1, base.In.X)
}

func TestProduceRecordIdentityNoop(t *testing.T) {
	assert := assert.New(t)

	base := &outer{Name: "x", In: &inner{X: 1}}
	out, err := draft.ProduceTyped(base, func(d *draft.Draft) error { return nil })
	assert.NoError(err)
	assert.Same(base, out)
}

type withItems struct {
	Items vec.Vec[int]
}

func TestProduceRecordWithNestedVecField(t *testing.T) {
	assert := assert.New(t)

	base := &withItems{Items: vec.FromSlice([]int{1, 2, 3})}

	out, err := draft.ProduceTyped(base, func(d *draft.Draft) error {
		itemsAny, gerr := d.Get("Items")
		if gerr != nil {
			return gerr
		}
		nested := itemsAny.(*draft.Draft)
		return nested.Push(4)
	})
	assert.NoError(err)

	assert.Equal([]int{1, 2, 3, 4}, vec.ToSlice(out.Items))
	assert.Equal([]int{1, 2, 3}, vec.ToSlice(base.Items))
}

func TestProduceRecordDirectFieldWrite(t *testing.T) {
	assert := assert.New(t)

	base := &outer{Name: "x", In: &inner{X: 1}}
	out, err := draft.ProduceTyped(base, func(d *draft.Draft) error {
		return d.Set("Name", "y")
	})
	assert.NoError(err)
	assert.Equal("y", out.Name)
	assert.Equal("x", base.Name)
	assert.Same(base.In, out.In)
}

package vec

import (
	"github.com/SylphxAI/Pura/imkind"
	"github.com/SylphxAI/Pura/owner"
)

// AggregateKind reports vec as the draft engine's Vec kind.
func (v Vec[T]) AggregateKind() imkind.Kind { return imkind.KindVec }

// GetAny, AssocAny, PushAny, and PopAny implement imkind.VecLike,
// asserting the boxed `any` arguments back to T, which is always known
// inside a Vec[T] method body even though it is erased from the
// interface's method set.
func (v Vec[T]) GetAny(i int) (any, bool) {
	x, ok := v.Get(i)
	return x, ok
}

func (v Vec[T]) AssocAny(o *owner.Token, i int, val any) (any, error) {
	nv, err := v.Assoc(o, i, val.(T))
	return nv, err
}

func (v Vec[T]) PushAny(o *owner.Token, val any) any {
	return v.Push(o, val.(T))
}

func (v Vec[T]) PopAny(o *owner.Token) (any, any, bool) {
	nv, popped, ok := v.Pop(o)
	return nv, popped, ok
}

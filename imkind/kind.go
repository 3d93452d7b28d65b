// Package imkind implements the dispatcher's closed tagged variant
// {Vec, Map, Set, Record} and the narrow, non-generic interfaces the draft
// engine uses to operate on a boxed `any` without knowing its concrete
// element/key/value type parameters at compile time. vec.Vec[T],
// hamt.Map[K,V], and set.Set[K] each implement these by forwarding to
// their already-generic methods, performing the type assertion back to
// their own type parameter internally, where it is always known.
package imkind

import (
	"reflect"

	"github.com/SylphxAI/Pura/owner"
)

// Kind is the dispatcher's closed tagged variant.
type Kind int

const (
	KindScalar Kind = iota
	KindVec
	KindMap
	KindSet
	KindRecord
)

// Aggregate is implemented by every Vec/Map/Set so the draft engine can
// recognise one inside an `any` and read off its Kind.
type Aggregate interface {
	AggregateKind() Kind
}

// VecLike, MapLike, and SetLike are the erasure boundary: vec.Vec[T],
// hamt.Map[K,V], and set.Set[K] implement these directly, asserting the
// `any` argument back to their own T/K/V inside the method body, where it
// is always statically known.
type VecLike interface {
	Aggregate
	Len() int
	GetAny(i int) (any, bool)
	AssocAny(o *owner.Token, i int, val any) (any, error)
	PushAny(o *owner.Token, val any) any
	PopAny(o *owner.Token) (any, any, bool)
}

type MapLike interface {
	Aggregate
	Size() int
	GetAny(k any) (any, bool)
	HasAny(k any) bool
	SetAny(o *owner.Token, k, v any) any
	DeleteAny(o *owner.Token, k any) any
}

type SetLike interface {
	Aggregate
	Size() int
	HasAny(k any) bool
	AddAny(o *owner.Token, k any) any
	RemoveAny(o *owner.Token, k any) any
}

// KindOf classifies v for the dispatcher: an Aggregate reports its own
// Kind; a struct (or pointer to one) is a Record; everything else,
// including nil, is a Scalar that passes through the draft untouched.
func KindOf(v any) Kind {
	if v == nil {
		return KindScalar
	}
	if a, ok := v.(Aggregate); ok {
		return a.AggregateKind()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return KindScalar
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		return KindRecord
	}
	return KindScalar
}

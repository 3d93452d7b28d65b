package imm

import (
	"github.com/SylphxAI/Pura/draft"
	"github.com/SylphxAI/Pura/hamt"
	"github.com/SylphxAI/Pura/orderindex"
	"github.com/SylphxAI/Pura/owner"
	"github.com/SylphxAI/Pura/set"
	"github.com/SylphxAI/Pura/vec"
)

// Vec, Map, and Set are aliases onto the lower packages' persistent
// structures rather than distinct wrapper types: an alias carries over
// every method (Get, Assoc, Push, ForEach, ...) and, just as importantly,
// the imkind.Aggregate erasure methods that let Produce recognise and
// edit them without the facade needing its own dispatch layer.
type (
	Vec[T any]                      = vec.Vec[T]
	Map[K comparable, V any]        = hamt.Map[K, V]
	Set[K comparable]               = set.Set[K]
	OrderedMap[K comparable, V any] = orderindex.Index[K, V]
	OrderedSet[K comparable]        = orderindex.Index[K, struct{}]
)

// Token re-exports the owner package's edit-session identity for callers
// who only import the facade.
type Token = owner.Token

// NewToken allocates a fresh owner token for a manual (non-Produce) batch
// of transient edits.
func NewToken() *Token { return owner.New() }

// NewVec returns the empty Vec.
func NewVec[T any]() Vec[T] { return vec.Empty[T]() }

// VecOf builds a Vec holding the elements of xs, in order.
func VecOf[T any](xs []T) Vec[T] { return vec.FromSlice(xs) }

// NewMap returns the empty Map.
func NewMap[K comparable, V any]() Map[K, V] { return hamt.Empty[K, V]() }

// NewSet returns the empty Set.
func NewSet[K comparable]() Set[K] { return set.Empty[K]() }

// SetOf builds a Set holding the distinct elements of xs.
func SetOf[K comparable](xs []K) Set[K] { return set.FromSlice(xs) }

// NewOrderedMap returns an empty Map that additionally remembers
// insertion order for iteration.
func NewOrderedMap[K comparable, V any]() OrderedMap[K, V] {
	return orderindex.New[K, V](true)
}

// NewOrderedSet returns an empty Set that additionally remembers
// insertion order for iteration.
func NewOrderedSet[K comparable]() OrderedSet[K] {
	return orderindex.New[K, struct{}](false)
}

// Produce runs recipe against a draft of base exactly once and returns the
// resulting value: base itself, by identity, if recipe touched nothing
// observable; otherwise a new value with recipe's edits applied and
// everything untouched structurally shared with base. A recipe error
// discards the draft and is returned unchanged; no partial edit is ever
// published.
func Produce[T any](base T, recipe func(*draft.Draft) error) (T, error) {
	return draft.ProduceTyped(base, recipe)
}

// IsManaged reports whether v is a record pointer produced by any earlier
// Produce call, per the identity cache described in the core's design notes.
func IsManaged(v any) bool { return draft.IsManaged(v) }

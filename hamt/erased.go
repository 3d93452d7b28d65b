package hamt

import (
	"github.com/SylphxAI/Pura/imkind"
	"github.com/SylphxAI/Pura/owner"
)

// AggregateKind reports m as the draft engine's Map kind.
func (m Map[K, V]) AggregateKind() imkind.Kind { return imkind.KindMap }

// GetAny, HasAny, SetAny, and DeleteAny implement imkind.MapLike.
func (m Map[K, V]) GetAny(k any) (any, bool) {
	v, ok := m.Get(k.(K))
	return v, ok
}

func (m Map[K, V]) HasAny(k any) bool {
	return m.Has(k.(K))
}

func (m Map[K, V]) SetAny(o *owner.Token, k, v any) any {
	return Set(m, o, k.(K), v.(V))
}

func (m Map[K, V]) DeleteAny(o *owner.Token, k any) any {
	return Delete(m, o, k.(K))
}

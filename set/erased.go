package set

import (
	"github.com/SylphxAI/Pura/imkind"
	"github.com/SylphxAI/Pura/owner"
)

// AggregateKind reports s as the draft engine's Set kind.
func (s Set[K]) AggregateKind() imkind.Kind { return imkind.KindSet }

// HasAny, AddAny, and RemoveAny implement imkind.SetLike.
func (s Set[K]) HasAny(k any) bool {
	return s.Has(k.(K))
}

func (s Set[K]) AddAny(o *owner.Token, k any) any {
	return Add(s, o, k.(K))
}

func (s Set[K]) RemoveAny(o *owner.Token, k any) any {
	return Remove(s, o, k.(K))
}

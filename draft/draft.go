// Package draft implements the recipe engine's root and nested draft:
// a mutable facade that a recipe edits directly, backed by the
// persistent Vec/HAMT-map/HAMT-set operations for aggregate slots and by
// lazy shallow copies for plain records, as spec'd in sections 4.4-4.6.
package draft

import (
	"reflect"

	"github.com/SylphxAI/Pura/imkind"
	"github.com/SylphxAI/Pura/owner"
)

// Draft is the single type realising both the root draft and every nested
// draft a recipe reaches through it; which behaviour applies is chosen by
// kind. A Draft is valid only for the lifetime of one Produce call and
// must not be retained past the recipe that received it.
type Draft struct {
	owner *owner.Token
	kind  imkind.Kind

	// Aggregate kinds (Vec/Map/Set): aggCur is the live structure, updated
	// in place (by identity of the Go value, via reassignment) as the
	// recipe edits; aggBase is what it started as, retained so finalize
	// can fall back to it by identity when nothing changed.
	aggCur   any
	aggBase  any
	modified bool

	// children caches nested drafts handed out for touched slots, keyed
	// by index (Vec), key (Map/Set), or field name (Record). A direct
	// write to a slot invalidates any draft cached for it.
	children map[any]*Draft

	// Record kind: recBase is the dereferenced struct value; recOrig is
	// the exact base any passed in (pointer or value, as given), returned
	// by identity when nothing under this record was modified. recCopy
	// becomes valid on the first write anywhere under this record, per
	// the copy-on-write nested-draft rule in 4.5.
	recBase   reflect.Value
	recOrig   any
	recCopy   reflect.Value
	recIsPtr  bool
	scalarVal any
}

func newDraft(o *owner.Token, base any) *Draft {
	d := &Draft{owner: o, kind: imkind.KindOf(base)}
	switch d.kind {
	case imkind.KindVec, imkind.KindMap, imkind.KindSet:
		d.aggCur = base
		d.aggBase = base
		d.children = map[any]*Draft{}
	case imkind.KindRecord:
		rv := reflect.ValueOf(base)
		d.recIsPtr = rv.Kind() == reflect.Ptr
		if d.recIsPtr {
			rv = rv.Elem()
		}
		d.recBase = rv
		d.recOrig = base
		d.children = map[any]*Draft{}
	default:
		d.scalarVal = base
	}
	return d
}

func (d *Draft) kindName() string {
	switch d.kind {
	case imkind.KindVec:
		return "vec"
	case imkind.KindMap:
		return "map"
	case imkind.KindSet:
		return "set"
	case imkind.KindRecord:
		return "record"
	default:
		return "scalar"
	}
}

// wrapChild returns the cached draft for slot, creating one on first
// access if v is itself an aggregate or a record; scalars pass through
// untouched, per the read path in 4.4.
func (d *Draft) wrapChild(slot any, v any) any {
	if c, ok := d.children[slot]; ok {
		return c
	}
	if imkind.KindOf(v) == imkind.KindScalar {
		return v
	}
	c := newDraft(d.owner, v)
	d.children[slot] = c
	return c
}

// Get reads a Vec index, a Map key, or a Record field (by name), lazily
// wrapping the result in a nested draft when it is itself an aggregate or
// record. Sets have no addressable values and always report a
// KindMismatchError.
func (d *Draft) Get(key any) (any, error) {
	switch d.kind {
	case imkind.KindVec:
		v, ok := d.aggCur.(imkind.VecLike).GetAny(key.(int))
		if !ok {
			return nil, nil
		}
		return d.wrapChild(key, v), nil
	case imkind.KindMap:
		v, ok := d.aggCur.(imkind.MapLike).GetAny(key)
		if !ok {
			return nil, nil
		}
		return d.wrapChild(key, v), nil
	case imkind.KindRecord:
		fv, err := d.fieldValue(key.(string))
		if err != nil {
			return nil, err
		}
		return d.wrapChild(key, fv.Interface()), nil
	default:
		return nil, newKindMismatch("Get", "vec, map, or record", d.kindName())
	}
}

// Set writes a Vec index, a Map key, or a Record field directly, bypassing
// any cached nested draft for that slot (which is discarded, per the
// write path in 4.4).
func (d *Draft) Set(key any, val any) error {
	delete(d.children, key)
	switch d.kind {
	case imkind.KindVec:
		nv, err := d.aggCur.(imkind.VecLike).AssocAny(d.owner, key.(int), val)
		if err != nil {
			return err
		}
		d.aggCur, d.modified = nv, true
		return nil
	case imkind.KindMap:
		nv := d.aggCur.(imkind.MapLike).SetAny(d.owner, key, val)
		d.aggCur, d.modified = nv, true
		return nil
	case imkind.KindRecord:
		d.ensureRecordCopy()
		fv, err := d.fieldValueOf(d.recCopy, key.(string))
		if err != nil {
			return err
		}
		if !fv.CanSet() {
			return newKindMismatch("Set", "settable field", "unexported field "+key.(string))
		}
		fv.Set(reflect.ValueOf(val))
		d.modified = true
		return nil
	default:
		return newKindMismatch("Set", "vec, map, or record", d.kindName())
	}
}

// Push appends to a Vec draft.
func (d *Draft) Push(val any) error {
	if d.kind != imkind.KindVec {
		return newKindMismatch("Push", "vec", d.kindName())
	}
	d.aggCur = d.aggCur.(imkind.VecLike).PushAny(d.owner, val)
	d.modified = true
	return nil
}

// Pop removes and returns the last element of a Vec draft.
func (d *Draft) Pop() (any, bool, error) {
	if d.kind != imkind.KindVec {
		return nil, false, newKindMismatch("Pop", "vec", d.kindName())
	}
	nv, popped, ok := d.aggCur.(imkind.VecLike).PopAny(d.owner)
	if ok {
		delete(d.children, d.aggCur.(imkind.VecLike).Len()-1)
		d.aggCur, d.modified = nv, true
	}
	return popped, ok, nil
}

// Delete removes a key from a Map draft.
func (d *Draft) Delete(key any) error {
	if d.kind != imkind.KindMap {
		return newKindMismatch("Delete", "map", d.kindName())
	}
	delete(d.children, key)
	nv := d.aggCur.(imkind.MapLike).DeleteAny(d.owner, key)
	if nv != d.aggCur {
		d.aggCur, d.modified = nv, true
	}
	return nil
}

// Has reports membership on a Map or Set draft.
func (d *Draft) Has(key any) (bool, error) {
	switch d.kind {
	case imkind.KindMap:
		return d.aggCur.(imkind.MapLike).HasAny(key), nil
	case imkind.KindSet:
		return d.aggCur.(imkind.SetLike).HasAny(key), nil
	default:
		return false, newKindMismatch("Has", "map or set", d.kindName())
	}
}

// Add inserts a member into a Set draft.
func (d *Draft) Add(key any) error {
	if d.kind != imkind.KindSet {
		return newKindMismatch("Add", "set", d.kindName())
	}
	nv := d.aggCur.(imkind.SetLike).AddAny(d.owner, key)
	if nv != d.aggCur {
		d.aggCur, d.modified = nv, true
	}
	return nil
}

// Remove deletes a member from a Set draft.
func (d *Draft) Remove(key any) error {
	if d.kind != imkind.KindSet {
		return newKindMismatch("Remove", "set", d.kindName())
	}
	nv := d.aggCur.(imkind.SetLike).RemoveAny(d.owner, key)
	if nv != d.aggCur {
		d.aggCur, d.modified = nv, true
	}
	return nil
}

// Len reports the element count of a Vec draft.
func (d *Draft) Len() (int, error) {
	if d.kind != imkind.KindVec {
		return 0, newKindMismatch("Len", "vec", d.kindName())
	}
	return d.aggCur.(imkind.VecLike).Len(), nil
}

// Size reports the element count of a Map or Set draft.
func (d *Draft) Size() (int, error) {
	switch agg := d.aggCur.(type) {
	case imkind.MapLike:
		return agg.Size(), nil
	case imkind.SetLike:
		return agg.Size(), nil
	default:
		return 0, newKindMismatch("Size", "map or set", d.kindName())
	}
}

func (d *Draft) fieldValue(name string) (reflect.Value, error) {
	src := d.recBase
	if d.recCopy.IsValid() {
		src = d.recCopy
	}
	return d.fieldValueOf(src, name)
}

func (d *Draft) fieldValueOf(src reflect.Value, name string) (reflect.Value, error) {
	fv := src.FieldByName(name)
	if !fv.IsValid() {
		return reflect.Value{}, newKindMismatch("Get/Set", "known field", "no field "+name)
	}
	if !fv.CanInterface() {
		return reflect.Value{}, newKindMismatch("Get/Set", "exported field", "unexported field "+name)
	}
	return fv, nil
}

func (d *Draft) ensureRecordCopy() {
	if d.recCopy.IsValid() {
		return
	}
	cp := reflect.New(d.recBase.Type()).Elem()
	cp.Set(d.recBase)
	d.recCopy = cp
}

// observablyModified implements the modification oracle of 4.5: a draft
// is modified iff it holds a copy (or has recorded a direct write) or any
// cached child draft is itself observably modified.
func (d *Draft) observablyModified() bool {
	if d.modified {
		return true
	}
	for _, c := range d.children {
		if c.observablyModified() {
			return true
		}
	}
	return false
}

// finalize implements extraction (4.4 step 1-3 / 4.5 "Extraction"):
// cached children that were observably modified are spliced back into
// this draft's structure before the result is returned; an unmodified
// draft is returned by identity to its original base.
func (d *Draft) finalize() any {
	switch d.kind {
	case imkind.KindVec, imkind.KindMap, imkind.KindSet:
		for slot, c := range d.children {
			if !c.observablyModified() {
				continue
			}
			val := c.finalize()
			d.spliceSlot(slot, val)
		}
		if !d.modified {
			return d.aggBase
		}
		return d.aggCur
	case imkind.KindRecord:
		for name, c := range d.children {
			if !c.observablyModified() {
				continue
			}
			val := c.finalize()
			d.ensureRecordCopy()
			fv, _ := d.fieldValueOf(d.recCopy, name.(string))
			fv.Set(reflect.ValueOf(val))
		}
		if !d.recCopy.IsValid() {
			return d.originalRecordValue()
		}
		if d.recIsPtr {
			ptr := reflect.New(d.recCopy.Type())
			ptr.Elem().Set(d.recCopy)
			markManaged(ptr.Interface())
			return ptr.Interface()
		}
		return d.recCopy.Interface()
	default:
		return d.scalarVal
	}
}

func (d *Draft) originalRecordValue() any {
	return d.recOrig
}

// spliceSlot writes val into slot on an aggregate draft without
// disturbing the children cache (finalize owns iteration order, and the
// draft is discarded immediately after).
func (d *Draft) spliceSlot(slot any, val any) {
	switch d.kind {
	case imkind.KindVec:
		nv, err := d.aggCur.(imkind.VecLike).AssocAny(d.owner, slot.(int), val)
		if err == nil {
			d.aggCur, d.modified = nv, true
		}
	case imkind.KindMap:
		d.aggCur = d.aggCur.(imkind.MapLike).SetAny(d.owner, slot, val)
		d.modified = true
	}
}

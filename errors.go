package imm

import "github.com/pkg/errors"

// IndexError describes an out-of-range index. It is a separate type from
// the *vec.IndexError that Vec.Assoc returns; nothing in the core returns
// an *imm.IndexError, so errors.As with this type does not match Assoc's
// error.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return errors.Errorf("index %d out of range [0, %d)", e.Index, e.Len).Error()
}

// NewIndexError wraps an out-of-range index with a stack trace attached,
// for callers that want %+v diagnostics.
func NewIndexError(index, length int) error {
	return errors.WithStack(&IndexError{Index: index, Len: length})
}

// KindMismatchError describes an operation applied to the wrong kind of
// value, e.g. a Vec operation on a map draft. Drafts themselves return
// *draft.KindMismatchError, a separate type; nothing in the core returns
// an *imm.KindMismatchError.
type KindMismatchError struct {
	Op   string
	Want string
	Got  string
}

func (e *KindMismatchError) Error() string {
	return errors.Errorf("%s: expected %s, got %s", e.Op, e.Want, e.Got).Error()
}

// NewKindMismatchError wraps a kind mismatch with a stack trace attached.
func NewKindMismatchError(op, want, got string) error {
	return errors.WithStack(&KindMismatchError{Op: op, Want: want, Got: got})
}

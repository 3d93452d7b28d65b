package draft

import "github.com/pkg/errors"

// KindMismatchError reports that a draft operation was applied to the
// wrong kind of draft, e.g. Push on a map draft or Delete on a vec draft.
type KindMismatchError struct {
	Op   string
	Want string
	Got  string
}

func (e *KindMismatchError) Error() string {
	return errors.Errorf("%s: expected %s, got %s", e.Op, e.Want, e.Got).Error()
}

func newKindMismatch(op, want, got string) error {
	return errors.WithStack(&KindMismatchError{Op: op, Want: want, Got: got})
}

package vec

import "github.com/pkg/errors"

// IndexError reports an index outside [0, Len()) passed to Assoc.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return errors.Errorf("vec: index %d out of range [0, %d)", e.Index, e.Len).Error()
}

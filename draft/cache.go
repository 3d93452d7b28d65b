package draft

import (
	"reflect"
	"sync"
)

// managed tracks pointers this engine has produced, the process-global
// identity cache of 4.6/9. Go's persistent Vec/Map/Set are self-contained
// value types with no hidden internals to leak, so wrap/extract collapse
// to the identity function for them; only pointer-shaped record results
// need a registry to answer IsManaged.
var managed sync.Map

func markManaged(ptr any) {
	managed.Store(ptr, struct{}{})
}

// IsManaged reports whether v is a record pointer this engine produced.
// Non-pointer and non-record values are never "managed" in this sense
// and always report false.
func IsManaged(v any) bool {
	if v == nil || reflect.ValueOf(v).Kind() != reflect.Ptr {
		return false
	}
	_, ok := managed.Load(v)
	return ok
}

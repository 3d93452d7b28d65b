// Package hash computes the uniform 32-bit hash the HAMT needs for
// arbitrary keys. It must be stable for the lifetime of the process: two
// calls with an equal key always produce the same value.
package hash

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// identityTags assigns every object-like key (one for which there is no
// cheap deterministic byte encoding) a monotonically increasing tag the
// first time it is observed, then mixes the tag through a scramble. This
// mirrors how the core hashes symbols/objects whose value cannot be
// serialised: identity, not content, is hashed.
var (
	identityMu   sync.Mutex
	identityTags = map[any]uint64{}
	nextTag      uint64
)

func tagFor(key any) uint64 {
	identityMu.Lock()
	defer identityMu.Unlock()
	if t, ok := identityTags[key]; ok {
		return t
	}
	t := atomic.AddUint64(&nextTag, 1)
	identityTags[key] = t
	return t
}

// scramble32 is a 32-bit splitmix-style finisher used to spread identity
// tags uniformly across the hash space.
func scramble32(x uint64) uint32 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return uint32(x) ^ uint32(x>>32)
}

// Of returns the 32-bit hash of key. Equality is strict identity except
// that +0 and -0 compare and hash equal, per spec.
func Of(key any) uint32 {
	switch v := key.(type) {
	case string:
		return uint32(xxhash.Sum64String(v))
	case []byte:
		return uint32(xxhash.Sum64(v))
	case bool:
		if v {
			return scramble32(1)
		}
		return scramble32(0)
	case int:
		return hashInt64(int64(v))
	case int8:
		return hashInt64(int64(v))
	case int16:
		return hashInt64(int64(v))
	case int32:
		return hashInt64(int64(v))
	case int64:
		return hashInt64(v)
	case uint:
		return hashInt64(int64(v))
	case uint8:
		return hashInt64(int64(v))
	case uint16:
		return hashInt64(int64(v))
	case uint32:
		return hashInt64(int64(v))
	case uint64:
		return hashInt64(int64(v))
	case float32:
		return hashFloat64(float64(v))
	case float64:
		return hashFloat64(v)
	default:
		return scramble32(tagFor(key))
	}
}

func hashInt64(v int64) uint32 {
	return scramble32(uint64(v))
}

func hashFloat64(v float64) uint32 {
	if v == 0 {
		v = 0 // normalises -0 to +0 so they hash (and compare) equal
	}
	return scramble32(math.Float64bits(v))
}

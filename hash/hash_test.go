package hash_test

import (
	"math"
	"testing"

	"github.com/SylphxAI/Pura/hash"
	"github.com/stretchr/testify/assert"
)

func TestOfIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(hash.Of("hello"), hash.Of("hello"))
	assert.Equal(hash.Of(42), hash.Of(42))
	assert.Equal(hash.Of(3.14), hash.Of(3.14))
	assert.Equal(hash.Of(true), hash.Of(true))
}

func TestOfDistinguishesDistinctValues(t *testing.T) {
	assert := assert.New(t)

	assert.NotEqual(hash.Of("hello"), hash.Of("world"))
	assert.NotEqual(hash.Of(1), hash.Of(2))
}

func TestOfNegativeZeroEqualsPositiveZero(t *testing.T) {
	assert := assert.New(t)

	negZero := math.Copysign(0, -1)
	assert.Equal(hash.Of(0.0), hash.Of(negZero))
}

func TestOfObjectIdentityStable(t *testing.T) {
	assert := assert.New(t)

	type key struct{ n int }
	k := &key{n: 1}
	assert.Equal(hash.Of(k), hash.Of(k))
}

func TestOfDistinctObjectsDiffer(t *testing.T) {
	assert := assert.New(t)

	type key struct{ n int }
	a, b := &key{n: 1}, &key{n: 1}
	assert.NotEqual(hash.Of(a), hash.Of(b))
}

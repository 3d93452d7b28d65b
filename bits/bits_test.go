package bits_test

import (
	"testing"

	"github.com/SylphxAI/Pura/bits"
	"github.com/stretchr/testify/assert"
)

func TestChildIndex(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0), bits.ChildIndex(0, 0))
	assert.Equal(uint32(1), bits.ChildIndex(1, 0))
	assert.Equal(uint32(31), bits.ChildIndex(31, 0))
	assert.Equal(uint32(0), bits.ChildIndex(32, 0))
	assert.Equal(uint32(1), bits.ChildIndex(32, 5))
}

func TestPopCount32(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, bits.PopCount32(0))
	assert.Equal(1, bits.PopCount32(1))
	assert.Equal(32, bits.PopCount32(0xFFFFFFFF))
}

func TestPopCountBelow(t *testing.T) {
	assert := assert.New(t)

	bitmap := uint32(0b10110)
	assert.Equal(0, bits.PopCountBelow(bitmap, 0))
	assert.Equal(0, bits.PopCountBelow(bitmap, 1))
	assert.Equal(1, bits.PopCountBelow(bitmap, 2))
	assert.Equal(2, bits.PopCountBelow(bitmap, 4))
	assert.Equal(3, bits.PopCountBelow(bitmap, 5))
}

package owner_test

import (
	"testing"

	"github.com/SylphxAI/Pura/owner"
	"github.com/stretchr/testify/assert"
)

func TestTokenIsMatchesOnlySelf(t *testing.T) {
	assert := assert.New(t)

	a := owner.New()
	b := owner.New()

	assert.True(a.Is(a))
	assert.False(a.Is(b))
	assert.False(a.Is(nil))
}

func TestNilTokenNeverMatches(t *testing.T) {
	assert := assert.New(t)

	var nilToken *owner.Token
	other := owner.New()
	assert.False(nilToken.Is(other))
}

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/ward/internal/auth"
)

var _ auth.TokenGenerator = (*FixedSessionGenerator)(nil)

func TestFixedSessionGenerator_ReturnsSameToken(t *testing.T) {
	gen := NewFixedSessionGenerator("session-123")
	assert.Equal(t, "session-123", gen.Generate())
	assert.Equal(t, "session-123", gen.Generate())
}

func TestFixedSessionGenerator_EmptyTokenDefault(t *testing.T) {
	assert.Equal(t, "test-session-default", NewFixedSessionGenerator("").Generate())
}

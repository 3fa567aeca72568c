package testutil

// FixedSessionGenerator returns the same session token every time.
//
// Every login in a scenario then carries an identical token, so traces
// and golden files do not depend on UUIDv7 randomness.
//
// Thread-safety: FixedSessionGenerator is stateless and safe for concurrent use.
type FixedSessionGenerator struct {
	token string
}

// NewFixedSessionGenerator creates a generator for token.
// If token is empty, Generate returns "test-session-default".
func NewFixedSessionGenerator(token string) *FixedSessionGenerator {
	if token == "" {
		token = "test-session-default"
	}
	return &FixedSessionGenerator{token: token}
}

// Generate returns the fixed token. Implements auth.TokenGenerator.
func (g *FixedSessionGenerator) Generate() string {
	return g.token
}

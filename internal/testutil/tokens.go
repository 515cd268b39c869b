// Package testutil provides deterministic helpers for harness tests:
// a fixed-sequence transaction token generator and stub components.
package testutil

import "sync"

// FixedTokenGenerator returns predetermined transaction tokens.
//
// This enables deterministic test execution: tests provide a known
// sequence of tokens and assert exact handle identities.
//
// Thread-safety: safe for concurrent use via internal mutex, since test
// frameworks may share a generator across subtests.
type FixedTokenGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedTokenGenerator creates a generator that returns tokens in order.
//
// Example:
//
//	gen := NewFixedTokenGenerator("tx-1", "tx-2")
//	gen.Generate() // "tx-1"
//	gen.Generate() // "tx-2"
//	gen.Generate() // panic: all tokens exhausted
func NewFixedTokenGenerator(tokens ...string) *FixedTokenGenerator {
	return &FixedTokenGenerator{tokens: tokens}
}

// Generate returns the next predetermined token.
//
// Panics if all tokens have been consumed. This is a fail-fast approach
// to catch test misconfiguration (the test enabled more transactions
// than it expected to).
func (g *FixedTokenGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("FixedTokenGenerator: all tokens exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}

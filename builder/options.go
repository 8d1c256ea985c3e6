// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes BuildGraph by mutating a builderConfig before graph
// construction begins.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacity sets the initial capacity of the graph BuildGraph creates.
// Panics on n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("builder: WithCapacity(n < 1)")
	}

	return func(c *builderConfig) {
		c.capacity = n
	}
}

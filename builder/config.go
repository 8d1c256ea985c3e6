// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • capacity = core.DefaultCapacity

package builder

import (
	"math/rand"

	"github.com/katalvlaran/degrees/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Initial neighbor-list slots of the graph created by BuildGraph.
	capacity int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		capacity: core.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

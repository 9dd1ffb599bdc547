// SPDX-License-Identifier: MIT
// Package: wavefront/proximity
//
// options.go — functional options and the internal build configuration.
//
// Contract (strict):
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Build itself never panics at runtime.
//   • Determinism is explicit: seeding happens only through WithSeed or
//     WithRand. No hidden globals; everything flows through buildConfig.

package proximity

import (
	"math/rand"
)

// buildConfig aggregates all builder knobs. It is passed by VALUE to the
// construction routine (immutable to callers).
type buildConfig struct {
	// RNG for position sampling; nil means "no randomness available",
	// which Build rejects for n > 0.
	rng *rand.Rand
}

// Option customizes Build by mutating a buildConfig before construction
// begins. Applying N options costs O(N) time, O(1) space.
type Option func(*buildConfig)

// newBuildConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		rng: nil, // no RNG unless explicitly set
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for position sampling.
// Panics on nil to surface programmer error early; prefer WithSeed for
// reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("proximity: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		// Seeded source → reproducible positions and edge sets.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

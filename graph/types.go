// Package graph defines the graph types, sentinel errors, functional options
// and weight-distribution helpers used by the generators.
package graph

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidSize indicates a generator was asked for fewer than one vertex.
	ErrInvalidSize = errors.New("graph: vertex count must be at least 1")

	// ErrVertexNotFound indicates a vertex index outside the range 0..n-1.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrBadWeight indicates a negative edge weight; the MST and shortest-path
	// drivers require non-negative weights.
	ErrBadWeight = errors.New("graph: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop; benchmark graphs are simple.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Edge is one directed half of an undirected edge as seen from its source
// vertex: the neighbor it reaches and the weight of the connection.
type Edge struct {
	// To is the neighbor vertex index.
	To int

	// Weight is the cost of the edge.
	Weight float64
}

// WeightFn produces an edge weight from the generator's RNG stream. It must
// be deterministic for a fixed *rand.Rand state; panics in WeightFn
// constructors indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// Complexity: O(1) per draw.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 <= min <= max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			// Degenerate interval: constant.
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
// Complexity: O(1) per draw.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be >= 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev), clipped
// below at 0 so weights stay non-negative.
// Panics if stddev < 0.
// Complexity: O(1) per draw.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be >= 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// ExponentialWeightFn returns a WeightFn sampling from Exp(rate).
// Panics if rate <= 0.
// Complexity: O(1) per draw.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		return rng.ExpFloat64() / rate
	}
}

// Deterministic generator defaults (named, no magic numbers).
const (
	// defaultSeed keeps unseeded generators reproducible rather than
	// time-dependent; pass WithSeed to vary trials.
	defaultSeed int64 = 1

	// Default uniform range matches the classic experiment's weights in [0,1).
	defaultUniformMin float64 = 0
	defaultUniformMax float64 = 1
)

// Options configures graph generation.
//
//	Rng      — RNG stream for weight draws; built from Seed when nil.
//	Seed     — rand.NewSource seed used when Rng is nil.
//	WeightFn — weight distribution; UniformWeightFn(0, 1) when nil.
type Options struct {
	Rng      *rand.Rand
	Seed     int64
	WeightFn WeightFn
}

// Option is a functional option for graph generation.
type Option func(*Options)

// WithSeed fixes the RNG seed so generated weights are reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a caller-owned RNG stream, taking precedence over WithSeed.
// Panics on nil; a generator without randomness is a configuration error.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("WithRand: rng must be non-nil")
	}

	return func(o *Options) { o.Rng = rng }
}

// WithWeightFn selects the weight distribution for generated edges.
// Panics on nil; use ConstantWeightFn for fixed weights instead.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("WithWeightFn: fn must be non-nil")
	}

	return func(o *Options) { o.WeightFn = fn }
}

// DefaultOptions returns the deterministic generator defaults: seed 1 and
// uniform weights in [0, 1).
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Seed:     defaultSeed,
		WeightFn: UniformWeightFn(defaultUniformMin, defaultUniformMax),
	}
}

// resolve applies opts over the defaults and materializes the RNG stream.
func resolve(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rng == nil {
		cfg.Rng = rand.New(rand.NewSource(cfg.Seed))
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package: streetpath/builder
//
// options.go - functional options for Build.
//
// Option constructors validate and panic on meaningless input.
// Build itself never panics.

package builder

import (
	"github.com/katalvlaran/streetpath/core"
	"github.com/katalvlaran/streetpath/geo"
)

// DistanceFunc measures the length in meters of the segment a-b.
type DistanceFunc func(a, b geo.Coordinate) float64

// Option customizes Build.
type Option func(*config)

// config aggregates the knobs resolved from Options.
type config struct {
	defaultLabel string
	distance     DistanceFunc
	validate     bool
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		defaultLabel: core.DefaultLabel,
		distance:     geo.Haversine,
		validate:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDefaultLabel sets the label given to edges of unnamed polylines.
// Panics on an empty label.
func WithDefaultLabel(label string) Option {
	if label == "" {
		panic("builder: WithDefaultLabel(\"\")")
	}

	return func(c *config) { c.defaultLabel = label }
}

// WithDistanceFunc replaces the haversine distance. Panics on nil.
func WithDistanceFunc(fn DistanceFunc) Option {
	if fn == nil {
		panic("builder: WithDistanceFunc(nil)")
	}

	return func(c *config) { c.distance = fn }
}

// WithValidation toggles the adjacency check run after construction.
// It is enabled by default.
func WithValidation(enabled bool) Option {
	return func(c *config) { c.validate = enabled }
}

package scene

import (
	"fmt"
	"math/rand"
)

// Options controls scene construction.
type Options struct {
	MaxStars   int
	StarExtent int
}

// Scene is the fixed content of the demo: bodies, texture table and stars.
// It is built once and only read afterwards.
type Scene struct {
	Bodies       []CelestialBody
	TextureFiles []string
	Stars        StarField
}

// New builds the default body table and a star field drawn from rng.
func New(opts Options, rng *rand.Rand) (*Scene, error) {
	s := &Scene{
		Bodies:       DefaultBodies(),
		TextureFiles: DefaultTextureFiles(),
		Stars:        GenerateStars(rng, opts.MaxStars, opts.StarExtent),
	}
	if err := validateBodies(s.Bodies, s.TextureFiles); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return s, nil
}

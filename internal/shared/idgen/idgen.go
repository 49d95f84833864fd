// Package idgen produces identifiers for new aggregates.
package idgen

import "github.com/google/uuid"

// Generator returns a new unique string identifier on each call.
type Generator interface {
	Generate() string
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewUUID returns the default generator.
func NewUUID() UUID {
	return UUID{}
}

func (UUID) Generate() string {
	return uuid.NewString()
}

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) Generate() string {
	return f()
}

// Fixed always returns the same id. Handy in tests.
func Fixed(id string) Generator {
	return Func(func() string { return id })
}

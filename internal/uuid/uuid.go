// Package uuid wraps ID generation behind an interface so repositories can
// be tested with deterministic IDs.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator interface {
	New() string
}

type googleGenerator struct{}

func (g *googleGenerator) New() string {
	return uuid.New().String()
}

// NewGenerator returns a Generator backed by google/uuid v4 IDs.
func NewGenerator() Generator {
	return &googleGenerator{}
}

package ids

import "github.com/google/uuid"

// Generator assigns identifiers to feed entities (posts and comments).
// Identifiers are random UUIDv4 strings, so uniqueness holds across the
// process lifetime without coordination between stores.
type Generator struct{}

// NewGenerator creates a new identifier generator
func NewGenerator() *Generator {
	return &Generator{}
}

// NewID returns a new identifier, unique for the life of the process
func (g *Generator) NewID() string {
	return uuid.NewString()
}

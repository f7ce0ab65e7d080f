package schema

import (
	"fmt"
	"strings"
)

// ArtifactSchema defines one tabular artifact type: its name (also the
// output filename stem), the exact header row, and the generation
// instructions passed through to the backend verbatim.
type ArtifactSchema struct {
	Name         string   `json:"name"`
	Headers      []string `json:"headers"`
	Instructions string   `json:"instructions"`
}

// HeaderLine renders the expected CSV header row.
func (s ArtifactSchema) HeaderLine() string {
	return strings.Join(s.Headers, ",")
}

// Registry is the ordered, read-only catalog of artifact schemas.
// Initialized once at startup and never mutated afterwards.
type Registry struct {
	schemas []ArtifactSchema
	byName  map[string]int
}

// NewRegistry builds a registry from an ordered schema list. Names must be
// unique and every schema needs at least one header column.
func NewRegistry(schemas []ArtifactSchema) (*Registry, error) {
	if len(schemas) == 0 {
		return nil, fmt.Errorf("registry: no schemas given")
	}
	byName := make(map[string]int, len(schemas))
	for i, s := range schemas {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("registry: schema %d has no name", i)
		}
		if len(s.Headers) == 0 {
			return nil, fmt.Errorf("registry: schema %q has no headers", s.Name)
		}
		if _, dup := byName[s.Name]; dup {
			return nil, fmt.Errorf("registry: duplicate schema name %q", s.Name)
		}
		byName[s.Name] = i
	}
	return &Registry{schemas: schemas, byName: byName}, nil
}

// Schemas returns the catalog in registration order. Callers must not
// modify the returned slice.
func (r *Registry) Schemas() []ArtifactSchema {
	return r.schemas
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return len(r.schemas)
}

// Lookup finds a schema by name.
func (r *Registry) Lookup(name string) (ArtifactSchema, bool) {
	i, ok := r.byName[name]
	if !ok {
		return ArtifactSchema{}, false
	}
	return r.schemas[i], true
}

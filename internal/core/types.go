package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownMap is returned by Generate for names that were never registered.
var ErrUnknownMap = errors.New("unknown map")

// Size describes the dimensions of a map or image.
type Size struct {
	W int
	H int
}

// Generator builds a map of the requested size using optional key/value
// options. Generators stamp walls into a fresh map and return it; the map is
// not modified afterwards.
type Generator func(size Size, cfg map[string]string) (*Map, error)

var generators = map[string]Generator{}

// Register adds a map generator under the provided name.
func Register(name string, g Generator) {
	if name == "" || g == nil {
		return
	}
	generators[name] = g
}

// Generators exposes the registry of available map generators.
func Generators() map[string]Generator {
	return generators
}

// GeneratorNames returns the registered generator names in sorted order.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate looks up the named generator and runs it.
func Generate(name string, size Size, cfg map[string]string) (*Map, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMap, name)
	}
	m, err := g(size, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", name, err)
	}
	return m, nil
}

package config

import (
	"fmt"
	"sort"

	"github.com/cfoust/geom/pkg/geom"
)

// Operation is one step of a demo scenario. Operands are either the name
// of a vector in the scenario or a numeric literal.
type Operation struct {
	Op  string `json:"op" yaml:"op"`
	LHS any    `json:"lhs" yaml:"lhs"`
	RHS any    `json:"rhs,omitempty" yaml:"rhs,omitempty"`
}

type Demo struct {
	Vectors    map[string][]float64 `json:"vectors" yaml:"vectors"`
	Operations []Operation          `json:"operations" yaml:"operations"`
}

type Output struct {
	// Repr prints vectors as Vector(x, y) instead of (x, y).
	Repr bool `json:"repr" yaml:"repr"`
}

type Config struct {
	Demo   Demo   `json:"demo" yaml:"demo"`
	Output Output `json:"output" yaml:"output"`
}

// VectorNames returns the names of the scenario's vectors in sorted order.
func (d *Demo) VectorNames() []string {
	names := make([]string, 0, len(d.Vectors))
	for name := range d.Vectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Demo) Vector(name string) (geom.Vector, error) {
	components, ok := d.Vectors[name]
	if !ok {
		return geom.Vector{}, fmt.Errorf("no vector named %q", name)
	}

	vector, err := geom.FromSlice(components)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("vector %q: %w", name, err)
	}

	return vector, nil
}

// Resolve turns a configured operand into a value geom.Apply understands.
// Names become vectors; numbers are passed through.
func (d *Demo) Resolve(operand any) (any, error) {
	switch operand := operand.(type) {
	case nil:
		return nil, nil
	case string:
		return d.Vector(operand)
	case float64:
		return operand, nil
	case int:
		return float64(operand), nil
	}

	return nil, fmt.Errorf("unsupported operand %v (%T)", operand, operand)
}

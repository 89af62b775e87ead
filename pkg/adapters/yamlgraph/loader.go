// Package yamlgraph loads declarative scene-graph definitions from YAML.
//
// Graph files name their actions and guards; the host registers the real
// implementations in a registry.Registry before building. Edges may be given
// as a bare destination string (noop action) or as a mapping:
//
//	initial: Home
//	scenes:
//	  - name: Home
//	    edges:
//	      - to: Settings
//	        action: tap_gear
//	  - name: Settings
//	    edges:
//	      - About
//	    back: tap_back
//	  - name: Confirm
//	    dismiss_on_use: true
//	    guard: confirm_visible
package yamlgraph

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/scenic"
	"github.com/aretw0/scenic/pkg/domain"
	"github.com/aretw0/scenic/pkg/dsl"
	"github.com/aretw0/scenic/pkg/registry"
)

// Definition mirrors the YAML document structure.
type Definition struct {
	Initial string      `yaml:"initial"`
	Scenes  []SceneSpec `yaml:"scenes"`
}

// SceneSpec is one scene entry in a graph file.
type SceneSpec struct {
	Name         string `yaml:"name"`
	Edges        []any  `yaml:"edges"`
	Back         string `yaml:"back"`
	Guard        string `yaml:"guard"`
	DismissOnUse bool   `yaml:"dismiss_on_use"`
}

// EdgeSpec is the expanded edge form.
type EdgeSpec struct {
	To     string         `mapstructure:"to"`
	Action string         `mapstructure:"action"`
	Args   map[string]any `mapstructure:"args"`
}

// Load parses a graph definition from r.
func Load(r io.Reader) (*Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("decode graph definition: %w", err)
	}
	return &def, nil
}

// LoadFile parses a graph definition from a file.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Build turns a definition into a scene graph, resolving action and guard
// names through reg. Resolution is eager so a bad reference surfaces at load
// time, not mid-navigation.
func Build(def *Definition, reg *registry.Registry, opts ...scenic.Option) (*scenic.Graph, error) {
	if def.Initial != "" {
		opts = append(opts, scenic.WithInitialScene(def.Initial))
	}
	g := scenic.New(opts...)

	for _, spec := range def.Scenes {
		if spec.Name == "" {
			return nil, fmt.Errorf("scene missing name")
		}

		edges, err := expandEdges(spec.Edges)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", spec.Name, err)
		}

		actions := make(map[string]domain.Action, len(edges))
		for _, e := range edges {
			action, err := reg.Resolve(e.Action, e.Args)
			if err != nil {
				return nil, fmt.Errorf("scene %q, edge to %q: %w", spec.Name, e.To, err)
			}
			actions[e.To] = action
		}

		var back domain.Action
		if spec.Back != "" {
			if back, err = reg.Resolve(spec.Back, nil); err != nil {
				return nil, fmt.Errorf("scene %q back action: %w", spec.Name, err)
			}
		}

		var guard domain.Guard
		if spec.Guard != "" {
			if guard, err = reg.ResolveGuard(spec.Guard); err != nil {
				return nil, fmt.Errorf("scene %q guard: %w", spec.Name, err)
			}
		}

		dismiss := spec.DismissOnUse
		g.CreateScene(spec.Name, func(s *dsl.SceneBuilder) {
			for dest, action := range actions {
				s.Gesture(dest, action)
			}
			if back != nil {
				s.Back(back)
			}
			if guard != nil {
				s.ExistsWhenFunc(guard)
			}
			if dismiss {
				s.DismissOnUse()
			}
		})
	}
	return g, nil
}

// expandEdges normalizes the two YAML edge forms. A bare string is shorthand
// for a noop edge to that destination.
func expandEdges(raw []any) ([]EdgeSpec, error) {
	out := make([]EdgeSpec, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			out = append(out, EdgeSpec{To: v, Action: "noop"})
		default:
			var e EdgeSpec
			if err := mapstructure.Decode(item, &e); err != nil {
				return nil, fmt.Errorf("invalid edge %v: %w", item, err)
			}
			if e.To == "" {
				return nil, fmt.Errorf("edge %v missing destination", item)
			}
			if e.Action == "" {
				e.Action = "noop"
			}
			out = append(out, e)
		}
	}
	return out, nil
}

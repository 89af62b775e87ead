package runtime

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/aretw0/scenic/internal/pathfind"
	"github.com/aretw0/scenic/pkg/domain"
)

// Graph owns the declared scenes and lazily compiles them into a routable
// directed graph. Declaration is eager, edge collection is lazy: builders run
// once, when the first navigator is requested.
type Graph struct {
	scenes   map[string]*domain.Scene
	builders map[string]func(*domain.Scene)
	order    []string
	initial  string
	routes   *pathfind.Digraph
	compiled bool
	logger   *slog.Logger
}

// NewGraph creates an empty scene graph.
func NewGraph(logger *slog.Logger) *Graph {
	return &Graph{
		scenes:   make(map[string]*domain.Scene),
		builders: make(map[string]func(*domain.Scene)),
		logger:   logger,
	}
}

// AddScene registers a scene under a unique name. The builder is invoked
// against the scene at compile time to collect its edges. Declaring the same
// name twice is a graph-definition bug and fails fast.
func (g *Graph) AddScene(name string, build func(*domain.Scene), site domain.CallSite) {
	if _, exists := g.scenes[name]; exists {
		panic(fmt.Sprintf("scenic: scene %q declared twice (second declaration at %s)", name, site))
	}
	g.scenes[name] = domain.NewScene(name, site)
	g.builders[name] = build
	g.order = append(g.order, name)
}

// SetInitial designates the starting scene used when a navigator is created
// without an explicit position, and the target of Revert.
func (g *Graph) SetInitial(name string) {
	g.initial = name
}

// Initial returns the designated starting scene name, or "".
func (g *Graph) Initial() string {
	return g.initial
}

// Scene resolves a name to its scene.
func (g *Graph) Scene(name string) (*domain.Scene, bool) {
	sc, ok := g.scenes[name]
	return sc, ok
}

// Names returns all declared scene names, sorted for determinism.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.scenes))
	for name := range g.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Routes returns the underlying route graph. Nil until compiled.
func (g *Graph) Routes() *pathfind.Digraph {
	return g.routes
}

// Validate compiles the graph if it has not been compiled yet, collecting
// declaration errors instead of failing fast. Tooling uses it to lint
// declarative graph files; Compile is the fatal variant the engine uses.
func (g *Graph) Validate() []error {
	var errs []error

	if !g.compiled {
		// One-shot flag, not a lock: the graph is owned by a single test
		// goroutine. Set before running builders so re-entrant calls no-op.
		g.compiled = true
		g.routes = pathfind.New()
		for _, name := range g.order {
			g.routes.AddVertex(name)
		}
		for _, name := range g.order {
			if build := g.builders[name]; build != nil {
				build(g.scenes[name])
			}
		}
		g.logger.Debug("scene graph compiled", "scenes", len(g.scenes))
	}

	for _, name := range g.order {
		sc := g.scenes[name]
		for _, dest := range sortedEdges(sc) {
			if _, ok := g.scenes[dest]; !ok {
				errs = append(errs, fmt.Errorf("scene %q (declared at %s) has an edge to undeclared scene %q", name, sc.DeclaredAt, dest))
				continue
			}
			g.routes.AddArc(name, dest)
		}
	}
	return errs
}

// Compile materializes the route graph from the declared scenes. Idempotent;
// an edge referencing an undeclared scene is a graph-definition bug and
// fails fast.
func (g *Graph) Compile() {
	if errs := g.Validate(); len(errs) > 0 {
		panic("scenic: " + errs[0].Error())
	}
}

// Inspect returns the serializable view of every declared scene, sorted by
// name. It compiles the graph if necessary and surfaces declaration errors
// instead of panicking.
func (g *Graph) Inspect() ([]domain.SceneInfo, error) {
	if errs := g.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid scene graph: %w", errs[0])
	}

	infos := make([]domain.SceneInfo, 0, len(g.scenes))
	for _, name := range g.Names() {
		sc := g.scenes[name]
		infos = append(infos, domain.SceneInfo{
			Name:         sc.Name,
			Edges:        sortedEdges(sc),
			HasBack:      sc.BackAction != nil,
			DismissOnUse: sc.DismissOnUse,
			Guarded:      sc.ExistsWhen != nil,
			Initial:      sc.Name == g.initial,
		})
	}
	return infos, nil
}

// sortedEdges keeps arc insertion (and therefore path tie-breaking)
// independent of map iteration order.
func sortedEdges(sc *domain.Scene) []string {
	dests := make([]string, 0, len(sc.Edges))
	for dest := range sc.Edges {
		dests = append(dests, dest)
	}
	sort.Strings(dests)
	return dests
}

// Package pathfind holds the route graph and the default shortest-path
// primitive. The graph is an explicit mutable adjacency structure keyed by
// scene name: traversal grafts and prunes arcs on it mid-run, so it is never
// frozen into a compiled form. Single-threaded use is a precondition; the
// engine mutates it only from the one test-execution goroutine that owns it.
package pathfind

// Digraph is a mutable directed graph with unit edge weights.
type Digraph struct {
	arcs map[string][]string
}

// New creates an empty digraph.
func New() *Digraph {
	return &Digraph{arcs: make(map[string][]string)}
}

// AddVertex registers a vertex with no outbound arcs. Adding an existing
// vertex is a no-op.
func (g *Digraph) AddVertex(name string) {
	if _, ok := g.arcs[name]; !ok {
		g.arcs[name] = nil
	}
}

// AddArc adds the directed arc from -> to. Duplicate arcs collapse.
func (g *Digraph) AddArc(from, to string) {
	for _, n := range g.arcs[from] {
		if n == to {
			return
		}
	}
	g.arcs[from] = append(g.arcs[from], to)
}

// RemoveArc deletes the directed arc from -> to, if present.
func (g *Digraph) RemoveArc(from, to string) {
	out := g.arcs[from]
	for i, n := range out {
		if n == to {
			g.arcs[from] = append(out[:i:i], out[i+1:]...)
			return
		}
	}
}

// Contains implements ports.Routes.
func (g *Digraph) Contains(name string) bool {
	_, ok := g.arcs[name]
	return ok
}

// Neighbors implements ports.Routes. The returned slice is owned by the
// graph; callers must not mutate it.
func (g *Digraph) Neighbors(name string) []string {
	return g.arcs[name]
}

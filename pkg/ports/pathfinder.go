package ports

// Routes is the read surface of the compiled route graph a PathFinder
// searches over.
type Routes interface {
	// Contains reports whether the named vertex exists.
	Contains(name string) bool

	// Neighbors returns the destinations reachable from name in one hop.
	Neighbors(name string) []string
}

// PathFinder computes a shortest path over a directed unweighted graph. It
// returns the full vertex sequence including the start vertex, or nil when
// the destination is unreachable. Tie-breaking among equal-length paths is
// implementation-defined; callers must not rely on a particular choice.
type PathFinder interface {
	FindPath(r Routes, from, to string) []string
}

package pathfind

import "github.com/aretw0/scenic/pkg/ports"

// BFS is the default ports.PathFinder: breadth-first search over the route
// graph, O(V+E). Neighbors are expanded in arc-insertion order, so among
// multiple shortest paths the earliest-added arcs win; that choice is an
// implementation detail, not a guarantee.
type BFS struct{}

// FindPath implements ports.PathFinder. The returned path starts with from
// and ends with to; nil means to is unreachable (or either vertex is unknown).
func (BFS) FindPath(r ports.Routes, from, to string) []string {
	if !r.Contains(from) || !r.Contains(to) {
		return nil
	}
	if from == to {
		return []string{from}
	}

	parent := map[string]string{from: from}
	queue := []string{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, next := range r.Neighbors(curr) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = curr
			if next == to {
				return rebuild(parent, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func rebuild(parent map[string]string, from, to string) []string {
	var rev []string
	for at := to; ; at = parent[at] {
		rev = append(rev, at)
		if at == from {
			break
		}
	}
	path := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

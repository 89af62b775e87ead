package runtime

import (
	"context"

	"github.com/aretw0/scenic/pkg/domain"
)

// VisitScenes navigates to each requested scene in order, invoking the
// visitor exactly once per distinct requested name. Every scene departed
// along the way is marked visited, so one route can satisfy several pending
// requests at once and nothing is re-traversed; intermediate scenes that were
// not requested are marked without invoking the visitor. A requested scene
// that cannot be reached is reported by GoTo and skipped.
func (n *Navigator) VisitScenes(ctx context.Context, site domain.CallSite, names []string, visit domain.Visitor) {
	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}
	visited := make(map[string]bool, len(names))

	mark := func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		if requested[name] && visit != nil {
			visit(name)
		}
	}

	for _, name := range names {
		if visited[name] {
			continue
		}
		if err := n.GoTo(ctx, site, name, mark); err != nil {
			continue
		}
		// Departures along the route marked everything but the destination
		// itself; count the arrival so the visitor runs once for it too.
		mark(name)
	}
}

// VisitAll is VisitScenes over every declared scene. Traversal order over
// "all scenes" is unspecified; callers must not depend on it.
func (n *Navigator) VisitAll(ctx context.Context, site domain.CallSite, visit domain.Visitor) {
	n.VisitScenes(ctx, site, n.graph.Names(), visit)
}

package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/scenic/internal/logging"
	"github.com/aretw0/scenic/internal/pathfind"
	"github.com/aretw0/scenic/pkg/domain"
	"github.com/aretw0/scenic/pkg/ports"
)

const (
	defaultGuardTimeout = 3 * time.Second
	defaultGuardPoll    = 50 * time.Millisecond
)

// Config carries the collaborators a navigator is bound to for the lifetime
// of one test.
type Config struct {
	Reporter     ports.Reporter
	Finder       ports.PathFinder
	Journey      ports.JourneyLog
	Hooks        domain.LifecycleHooks
	Logger       *slog.Logger
	GuardTimeout time.Duration
	GuardPoll    time.Duration
	StartingAt   string
}

// Navigator drives the application under test through the scene graph. It
// holds the current position and the most recent resumable position, and owns
// the back-edge grafting/pruning protocol. One navigator serves one test; it
// is not safe for concurrent use.
type Navigator struct {
	graph        *Graph
	reporter     ports.Reporter
	finder       ports.PathFinder
	journey      ports.JourneyLog
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	guardTimeout time.Duration
	guardPoll    time.Duration

	runID   string
	current *domain.Scene
	// anchor is the most recently departed non-dismissible scene, the target
	// of any back-edge synthesized from here on.
	anchor string
	grafts map[string]graft
}

// graft remembers what a synthesized back-edge displaced, so pruning can
// restore a shadowed static edge.
type graft struct {
	displaced domain.Action
	hadStatic bool
}

// NewNavigator compiles the graph (first call only) and returns a navigator
// positioned at cfg.StartingAt, falling back to the graph's initial scene.
// No resolvable starting scene is fatal to the test: the navigator cannot be
// constructed.
func NewNavigator(g *Graph, cfg Config) (*Navigator, error) {
	g.Compile()

	start := cfg.StartingAt
	if start == "" {
		start = g.Initial()
	}
	if start == "" {
		return nil, domain.ErrNoInitialScene
	}
	sc, ok := g.Scene(start)
	if !ok {
		return nil, fmt.Errorf("starting scene %q: %w", start, domain.ErrUnknownScene)
	}

	n := &Navigator{
		graph:        g,
		reporter:     cfg.Reporter,
		finder:       cfg.Finder,
		journey:      cfg.Journey,
		hooks:        cfg.Hooks,
		logger:       cfg.Logger,
		guardTimeout: cfg.GuardTimeout,
		guardPoll:    cfg.GuardPoll,
		runID:        uuid.NewString(),
		current:      sc,
		grafts:       make(map[string]graft),
	}
	if n.logger == nil {
		n.logger = logging.NewNop()
	}
	if n.reporter == nil {
		n.reporter = logReporter{logger: n.logger}
	}
	if n.finder == nil {
		n.finder = pathfind.BFS{}
	}
	if n.guardTimeout <= 0 {
		n.guardTimeout = defaultGuardTimeout
	}
	if n.guardPoll <= 0 {
		n.guardPoll = defaultGuardPoll
	}

	n.logger.Debug("navigator created", "run_id", n.runID, "starting_at", start)
	return n, nil
}

// Current returns the name of the scene the test believes the app is in.
func (n *Navigator) Current() string {
	return n.current.Name
}

// RunID identifies this navigator's traversal run in journey logs and events.
func (n *Navigator) RunID() string {
	return n.runID
}

// GoTo navigates from the current scene to the named destination, replaying
// one UI action per hop along a shortest route. Visitors observe the scene
// departed by each hop. On an unknown destination or a missing route the
// failure is reported once, attributed to site, and the position is left
// unchanged.
func (n *Navigator) GoTo(ctx context.Context, site domain.CallSite, name string, visitors ...domain.Visitor) error {
	dest, ok := n.graph.Scene(name)
	if !ok {
		n.reporter.Fail(fmt.Sprintf("unknown destination %q", name), site)
		return fmt.Errorf("goto %q: %w", name, domain.ErrUnknownScene)
	}

	path := n.finder.FindPath(n.graph.Routes(), n.current.Name, dest.Name)
	if path == nil {
		n.reporter.Fail(fmt.Sprintf("no route from %q to %q", n.current.Name, name), site)
		return fmt.Errorf("goto %q from %q: %w", name, n.current.Name, domain.ErrNoRoute)
	}

	// path[0] is the current scene, not a hop.
	for _, next := range path[1:] {
		n.hop(ctx, next, visitors)
	}
	return nil
}

// NowAt forcibly resyncs the current position without executing any action or
// touching anchors and back-edges, for when the app's real state was changed
// outside the navigator's control.
func (n *Navigator) NowAt(site domain.CallSite, name string) error {
	sc, ok := n.graph.Scene(name)
	if !ok {
		n.reporter.Fail(fmt.Sprintf("cannot resync to unknown scene %q", name), site)
		return fmt.Errorf("now at %q: %w", name, domain.ErrUnknownScene)
	}
	n.logger.Debug("resync", "from", n.current.Name, "to", name)
	n.current = sc
	return nil
}

// Revert returns to the designated initial scene. No-op when the graph has
// none.
func (n *Navigator) Revert(ctx context.Context, site domain.CallSite) error {
	if n.graph.Initial() == "" {
		return nil
	}
	return n.GoTo(ctx, site, n.graph.Initial())
}

// hop executes the single transition from the current scene to the named
// neighbor: runs the edge action, waits for the destination's guard, grafts
// or prunes back-edges, notifies visitors of the departure and advances the
// position. Route mutations made here are visible to the next path query.
func (n *Navigator) hop(ctx context.Context, name string, visitors []domain.Visitor) {
	from := n.current
	to, ok := n.graph.Scene(name)
	if !ok {
		// The route graph only ever contains declared scenes.
		panic(fmt.Sprintf("scenic: route table names undeclared scene %q", name))
	}

	if !from.DismissOnUse {
		n.anchor = from.Name
	}

	action, ok := from.Edges[to.Name]
	if !ok {
		panic(fmt.Sprintf("scenic: no edge %q -> %q despite a routed arc", from.Name, to.Name))
	}
	action()

	if to.ExistsWhen != nil {
		n.awaitGuard(ctx, to)
	}

	n.graftBackEdge(ctx, to)
	n.pruneBackEdge(ctx, from, to)

	now := time.Now().UTC()
	ev := &domain.HopEvent{Timestamp: now, RunID: n.runID, From: from.Name, To: to.Name}
	if n.hooks.OnDepart != nil {
		n.hooks.OnDepart(ctx, ev)
	}
	for _, visit := range visitors {
		if visit != nil {
			visit(from.Name)
		}
	}

	n.current = to
	if n.hooks.OnArrive != nil {
		n.hooks.OnArrive(ctx, ev)
	}

	if n.journey != nil {
		hop := domain.Hop{RunID: n.runID, From: from.Name, To: to.Name, At: now}
		if err := n.journey.Record(ctx, hop); err != nil {
			n.logger.Warn("journey record failed", "err", err, "from", from.Name, "to", to.Name)
		}
	}
	n.logger.Debug("hop", "from", from.Name, "to", to.Name)
}

// awaitGuard blocks until the scene's guard is observable or the bounded wait
// expires. Expiry is reported against the scene's declaration site and
// traversal continues; this is the one soft failure in the model.
func (n *Navigator) awaitGuard(ctx context.Context, sc *domain.Scene) {
	deadline := time.Now().Add(n.guardTimeout)
	for {
		if sc.ExistsWhen() {
			return
		}
		if !time.Now().Before(deadline) {
			break
		}
		time.Sleep(n.guardPoll)
	}

	n.reporter.Fail(fmt.Sprintf("scene %q did not become observable within %s", sc.Name, n.guardTimeout), sc.DeclaredAt)
	if n.hooks.OnGuardTimeout != nil {
		n.hooks.OnGuardTimeout(ctx, &domain.GuardEvent{
			Timestamp: time.Now().UTC(),
			RunID:     n.runID,
			Scene:     sc.Name,
			Waited:    n.guardTimeout,
		})
	}
}

// graftBackEdge synthesizes a temporary return edge from the entered scene to
// the current anchor. A scene reachable from multiple parents gets its "back"
// target from how it was reached, not from its declaration, so the edge is
// grafted per traversal and lives only until consumed.
func (n *Navigator) graftBackEdge(ctx context.Context, to *domain.Scene) {
	if to.BackAction == nil || to.ReturnAnchor != "" || n.anchor == "" {
		return
	}

	displaced, hadStatic := to.Edges[n.anchor]
	to.ReturnAnchor = n.anchor
	to.Edges[n.anchor] = to.BackAction
	n.graph.Routes().AddArc(to.Name, n.anchor)
	n.grafts[to.Name] = graft{displaced: displaced, hadStatic: hadStatic}

	n.logger.Debug("back-edge grafted", "scene", to.Name, "anchor", n.anchor)
	if n.hooks.OnBackEdge != nil {
		n.hooks.OnBackEdge(ctx, &domain.BackEdgeEvent{
			Timestamp: time.Now().UTC(),
			RunID:     n.runID,
			Scene:     to.Name,
			Anchor:    n.anchor,
		})
	}
}

// pruneBackEdge removes a back-edge once traversed back across, i.e. when the
// hop landed exactly on the departed scene's return anchor. This keeps the
// route graph a function of actual navigation history instead of a growing
// superset of every back ever taken.
func (n *Navigator) pruneBackEdge(ctx context.Context, from, to *domain.Scene) {
	if from.ReturnAnchor == "" || from.ReturnAnchor != to.Name {
		return
	}

	g := n.grafts[from.Name]
	from.ReturnAnchor = ""
	if g.hadStatic {
		// A declared edge to the anchor was shadowed by the graft; put it
		// back and leave its arc in place.
		from.Edges[to.Name] = g.displaced
	} else {
		delete(from.Edges, to.Name)
		n.graph.Routes().RemoveArc(from.Name, to.Name)
	}
	delete(n.grafts, from.Name)

	n.logger.Debug("back-edge pruned", "scene", from.Name, "anchor", to.Name)
	if n.hooks.OnBackEdge != nil {
		n.hooks.OnBackEdge(ctx, &domain.BackEdgeEvent{
			Timestamp: time.Now().UTC(),
			RunID:     n.runID,
			Scene:     from.Name,
			Anchor:    to.Name,
			Pruned:    true,
		})
	}
}

// logReporter is the fallback failure collaborator when a host does not
// supply one: failures land in the structured log.
type logReporter struct {
	logger *slog.Logger
}

func (r logReporter) Fail(message string, site domain.CallSite) {
	r.logger.Error("navigation failure", "err", message, "site", site.String())
}

package scenic

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/scenic/internal/logging"
	"github.com/aretw0/scenic/internal/runtime"
	"github.com/aretw0/scenic/pkg/domain"
	"github.com/aretw0/scenic/pkg/dsl"
	"github.com/aretw0/scenic/pkg/ports"
)

// Graph is the high-level entry point for the scenic library. It owns the
// declared scenes and hands out navigators bound to them.
type Graph struct {
	graph        *runtime.Graph
	reporter     ports.Reporter
	finder       ports.PathFinder
	journey      ports.JourneyLog
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	guardTimeout time.Duration
	guardPoll    time.Duration
	initial      string
}

// Option defines a functional option for configuring the Graph.
type Option func(*Graph)

// WithLogger injects a structured logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithReporter sets the failure-reporting collaborator navigators report
// through. Defaults to logging failures.
func WithReporter(r ports.Reporter) Option {
	return func(g *Graph) {
		g.reporter = r
	}
}

// WithPathFinder swaps the shortest-path primitive. Defaults to breadth-first
// search.
func WithPathFinder(f ports.PathFinder) Option {
	return func(g *Graph) {
		g.finder = f
	}
}

// WithJourneyLog records every completed hop to the given log.
func WithJourneyLog(j ports.JourneyLog) Option {
	return func(g *Graph) {
		g.journey = j
	}
}

// WithHooks registers observability hooks.
func WithHooks(h domain.LifecycleHooks) Option {
	return func(g *Graph) {
		g.hooks = h
	}
}

// WithGuardTimeout bounds the wait for a scene's ExistsWhen guard.
func WithGuardTimeout(d time.Duration) Option {
	return func(g *Graph) {
		g.guardTimeout = d
	}
}

// WithGuardPoll sets the polling interval while waiting on a guard.
func WithGuardPoll(d time.Duration) Option {
	return func(g *Graph) {
		g.guardPoll = d
	}
}

// WithInitialScene designates the starting scene used when a navigator is
// created without an explicit position, and the target of Revert.
func WithInitialScene(name string) Option {
	return func(g *Graph) {
		g.initial = name
	}
}

// New creates an empty scene graph.
func New(opts ...Option) *Graph {
	g := &Graph{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	g.graph = runtime.NewGraph(g.logger)
	if g.initial != "" {
		g.graph.SetInitial(g.initial)
	}
	return g
}

// CreateScene registers a scene under a unique name. The builder runs lazily,
// once, when the graph compiles on the first Navigator call; edges it
// declares must reference scenes that exist by then. A dangling destination
// is a graph-definition bug and fails fast.
func (g *Graph) CreateScene(name string, build dsl.BuildFunc) {
	site := domain.Here(1)
	g.graph.AddScene(name, func(s *domain.Scene) {
		if build != nil {
			build(dsl.Wrap(s))
		}
	}, site)
}

// Navigator compiles the graph (first call only) and returns a navigator
// positioned at startingAt, or at the graph's initial scene when startingAt
// is empty. One navigator serves one test.
func (g *Graph) Navigator(startingAt string) (*Navigator, error) {
	nav, err := runtime.NewNavigator(g.graph, runtime.Config{
		Reporter:     g.reporter,
		Finder:       g.finder,
		Journey:      g.journey,
		Hooks:        g.hooks,
		Logger:       g.logger,
		GuardTimeout: g.guardTimeout,
		GuardPoll:    g.guardPoll,
		StartingAt:   startingAt,
	})
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	return &Navigator{nav: nav}, nil
}

// Validate compiles the graph if needed and returns every declaration error
// found, instead of failing fast like Navigator does. Tooling uses it to lint
// declarative graph files.
func (g *Graph) Validate() []error {
	return g.graph.Validate()
}

// Inspect returns the serializable view of every declared scene, sorted by
// name, for visualization and introspection.
func (g *Graph) Inspect() ([]domain.SceneInfo, error) {
	return g.graph.Inspect()
}

// Navigator drives the application under test through the declared scenes.
// It is bound to one graph and one failure reporter, lives for one test and
// is not safe for concurrent use.
type Navigator struct {
	nav *runtime.Navigator
}

// GoTo navigates to the named scene along a shortest route, replaying one UI
// action per hop. Visitors observe the scene departed by each hop. Failures
// (unknown destination, no route) are reported once and leave the position
// unchanged; the returned error wraps domain.ErrUnknownScene or
// domain.ErrNoRoute.
func (n *Navigator) GoTo(ctx context.Context, name string, visitors ...domain.Visitor) error {
	return n.nav.GoTo(ctx, domain.Here(1), name, visitors...)
}

// NowAt forcibly resyncs the navigator's position without executing any
// action, for when the app's state was changed by means outside the
// navigator's control.
func (n *Navigator) NowAt(name string) error {
	return n.nav.NowAt(domain.Here(1), name)
}

// VisitScenes navigates to each requested scene, invoking the visitor exactly
// once per distinct requested name regardless of duplicates or how many hops
// each target needs. Scenes crossed on the way to another target are not
// re-traversed.
func (n *Navigator) VisitScenes(ctx context.Context, names []string, visit domain.Visitor) {
	n.nav.VisitScenes(ctx, domain.Here(1), names, visit)
}

// VisitAll visits every declared scene once. Order is unspecified.
func (n *Navigator) VisitAll(ctx context.Context, visit domain.Visitor) {
	n.nav.VisitAll(ctx, domain.Here(1), visit)
}

// Revert returns to the graph's initial scene, if one was designated.
func (n *Navigator) Revert(ctx context.Context) error {
	return n.nav.Revert(ctx, domain.Here(1))
}

// Current returns the name of the scene the test believes the app is in.
func (n *Navigator) Current() string {
	return n.nav.Current()
}

// RunID identifies this navigator's traversal run in journey logs.
func (n *Navigator) RunID() string {
	return n.nav.RunID()
}

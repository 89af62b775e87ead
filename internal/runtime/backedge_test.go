package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/scenic/internal/logging"
	"github.com/aretw0/scenic/internal/runtime"
	"github.com/aretw0/scenic/pkg/domain"
)

func TestBackEdge_GraftAndPrune(t *testing.T) {
	ctx := context.Background()

	g := runtime.NewGraph(logging.NewNop())
	g.SetInitial("Home")

	taps := make(map[string]int)
	tap := func(name string) domain.Action {
		return func() { taps[name]++ }
	}

	g.AddScene("Home", func(s *domain.Scene) {
		s.Edges["Settings"] = tap("forward Home->Settings")
	}, domain.Here(0))
	g.AddScene("Settings", func(s *domain.Scene) {
		s.Edges["About"] = tap("forward Settings->About")
		s.BackAction = tap("back from Settings")
	}, domain.Here(0))
	g.AddScene("About", func(s *domain.Scene) {
		s.BackAction = tap("back from About")
	}, domain.Here(0))

	var events []domain.BackEdgeEvent
	nav, err := runtime.NewNavigator(g, runtime.Config{
		Hooks: domain.LifecycleHooks{
			OnBackEdge: func(_ context.Context, e *domain.BackEdgeEvent) {
				events = append(events, *e)
			},
		},
	})
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}

	// Forward walk grafts a return edge at each back-capable arrival.
	if err := nav.GoTo(ctx, domain.Here(0), "About"); err != nil {
		t.Fatalf("GoTo About failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 graft events, got %d: %v", len(events), events)
	}
	if events[0].Scene != "Settings" || events[0].Anchor != "Home" || events[0].Pruned {
		t.Errorf("Unexpected first graft: %+v", events[0])
	}
	if events[1].Scene != "About" || events[1].Anchor != "Settings" || events[1].Pruned {
		t.Errorf("Unexpected second graft: %+v", events[1])
	}

	// The return trip rides the grafted edges and consumes them.
	if err := nav.GoTo(ctx, domain.Here(0), "Home"); err != nil {
		t.Fatalf("GoTo Home failed: %v", err)
	}
	if nav.Current() != "Home" {
		t.Fatalf("Expected to be back at Home, got %s", nav.Current())
	}
	if taps["back from About"] != 1 || taps["back from Settings"] != 1 {
		t.Errorf("Expected each back action once, got %v", taps)
	}

	if len(events) != 4 {
		t.Fatalf("Expected 2 prune events after return, got %d total", len(events))
	}
	if !events[2].Pruned || events[2].Scene != "About" {
		t.Errorf("Unexpected first prune: %+v", events[2])
	}
	if !events[3].Pruned || events[3].Scene != "Settings" {
		t.Errorf("Unexpected second prune: %+v", events[3])
	}

	// Consumed edges are gone: About is a dead end again.
	if err := nav.NowAt(domain.Here(0), "About"); err != nil {
		t.Fatalf("NowAt failed: %v", err)
	}
	if err := nav.GoTo(ctx, domain.Here(0), "Home"); !errors.Is(err, domain.ErrNoRoute) {
		t.Errorf("Expected ErrNoRoute after prune, got %v", err)
	}
}

func TestBackEdge_RequiresTraversal(t *testing.T) {
	// Back edges are synthesized by navigation history, never by declaration:
	// starting directly at a back-capable scene leaves it a dead end.
	ctx := context.Background()

	g := runtime.NewGraph(logging.NewNop())
	g.AddScene("Home", func(s *domain.Scene) {
		s.Edges["Wizard"] = func() {}
	}, domain.Here(0))
	g.AddScene("Wizard", func(s *domain.Scene) {
		s.BackAction = func() {}
	}, domain.Here(0))

	reporter := &recordingReporter{}
	nav, err := runtime.NewNavigator(g, runtime.Config{Reporter: reporter, StartingAt: "Wizard"})
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}

	if err := nav.GoTo(ctx, domain.Here(0), "Home"); !errors.Is(err, domain.ErrNoRoute) {
		t.Fatalf("Expected ErrNoRoute, got %v", err)
	}
	if len(reporter.failures) != 1 {
		t.Errorf("Expected 1 failure, got %d", len(reporter.failures))
	}
}

func TestBackEdge_SkipsDismissedScenes(t *testing.T) {
	// A dismiss-on-use scene never becomes a return anchor: backing out of a
	// scene reached through a dialog goes to the last stable scene instead.
	ctx := context.Background()

	g := runtime.NewGraph(logging.NewNop())
	g.SetInitial("Home")

	taps := make(map[string]int)
	tap := func(name string) domain.Action {
		return func() { taps[name]++ }
	}

	g.AddScene("Home", func(s *domain.Scene) {
		s.Edges["Consent"] = tap("open consent")
	}, domain.Here(0))
	g.AddScene("Consent", func(s *domain.Scene) {
		s.DismissOnUse = true
		s.Edges["Details"] = tap("accept consent")
	}, domain.Here(0))
	g.AddScene("Details", func(s *domain.Scene) {
		s.BackAction = tap("back from Details")
	}, domain.Here(0))

	nav, err := runtime.NewNavigator(g, runtime.Config{})
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}

	if err := nav.GoTo(ctx, domain.Here(0), "Details"); err != nil {
		t.Fatalf("GoTo Details failed: %v", err)
	}

	// The graft targets Home, not the dismissed Consent dialog, so the
	// return trip is a single hop.
	hops := 0
	if err := nav.GoTo(ctx, domain.Here(0), "Home", func(string) { hops++ }); err != nil {
		t.Fatalf("GoTo Home failed: %v", err)
	}
	if hops != 1 {
		t.Errorf("Expected a single-hop return, got %d hops", hops)
	}
	if taps["back from Details"] != 1 {
		t.Errorf("Expected back action once, got %v", taps)
	}
	if nav.Current() != "Home" {
		t.Errorf("Expected to be at Home, got %s", nav.Current())
	}
}

func TestBackEdge_RestoresShadowedStaticEdge(t *testing.T) {
	// A grafted return edge may displace a declared edge to the same
	// destination. Pruning must put the declared edge back.
	ctx := context.Background()

	g := runtime.NewGraph(logging.NewNop())
	g.SetInitial("Home")

	var forward, back int
	g.AddScene("Home", func(s *domain.Scene) {
		s.Edges["Profile"] = func() {}
	}, domain.Here(0))
	g.AddScene("Profile", func(s *domain.Scene) {
		s.Edges["Home"] = func() { forward++ }
		s.BackAction = func() { back++ }
	}, domain.Here(0))

	nav, err := runtime.NewNavigator(g, runtime.Config{})
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}

	// Round trip: the graft shadows the declared Profile->Home edge, so the
	// back action runs instead of the declared one.
	if err := nav.GoTo(ctx, domain.Here(0), "Profile"); err != nil {
		t.Fatalf("GoTo Profile failed: %v", err)
	}
	if err := nav.GoTo(ctx, domain.Here(0), "Home"); err != nil {
		t.Fatalf("GoTo Home failed: %v", err)
	}
	if back != 1 || forward != 0 {
		t.Fatalf("Expected the back action to shadow the declared edge, got back=%d forward=%d", back, forward)
	}

	// The prune restored the declared edge.
	sc, ok := g.Scene("Profile")
	if !ok {
		t.Fatal("Profile disappeared")
	}
	action, ok := sc.Edges["Home"]
	if !ok {
		t.Fatal("Declared Profile->Home edge not restored after prune")
	}
	action()
	if forward != 1 {
		t.Errorf("Restored edge is not the declared action (forward=%d)", forward)
	}
	if sc.ReturnAnchor != "" {
		t.Errorf("Expected return anchor cleared, got %q", sc.ReturnAnchor)
	}
}

func TestBackEdge_ReGraftsOnNextVisit(t *testing.T) {
	// Grafting is per traversal: a pruned edge comes back the next time the
	// scene is entered.
	ctx := context.Background()

	g := runtime.NewGraph(logging.NewNop())
	g.SetInitial("Home")

	var back int
	g.AddScene("Home", func(s *domain.Scene) {
		s.Edges["Settings"] = func() {}
	}, domain.Here(0))
	g.AddScene("Settings", func(s *domain.Scene) {
		s.BackAction = func() { back++ }
	}, domain.Here(0))

	nav, err := runtime.NewNavigator(g, runtime.Config{})
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := nav.GoTo(ctx, domain.Here(0), "Settings"); err != nil {
			t.Fatalf("Round %d: GoTo Settings failed: %v", i, err)
		}
		if err := nav.GoTo(ctx, domain.Here(0), "Home"); err != nil {
			t.Fatalf("Round %d: GoTo Home failed: %v", i, err)
		}
	}
	if back != 3 {
		t.Errorf("Expected 3 back actions across 3 round trips, got %d", back)
	}
}

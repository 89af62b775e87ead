package scenic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/scenic"
	"github.com/aretw0/scenic/pkg/adapters/memory"
	"github.com/aretw0/scenic/pkg/domain"
	"github.com/aretw0/scenic/pkg/dsl"
	"github.com/aretw0/scenic/pkg/ports"
)

// stubElement is a driver element that is always observable and counts its
// interactions.
type stubElement struct {
	taps  int
	typed []string
}

func (e *stubElement) Exists() bool { return true }
func (e *stubElement) Tap()         { e.taps++ }

func (e *stubElement) TypeText(text string) { e.typed = append(e.typed, text) }

func (e *stubElement) Swipe(d ports.Direction) {}

type failureSink struct {
	failures []string
}

func (f *failureSink) Fail(message string, site domain.CallSite) {
	f.failures = append(f.failures, message)
}

func TestFacade_Integration(t *testing.T) {
	ctx := context.Background()

	gear := &stubElement{}
	aboutRow := &stubElement{}
	backChevron := &stubElement{}

	journey := memory.NewLog()
	sink := &failureSink{}

	// 1. Declare the app
	g := scenic.New(
		scenic.WithInitialScene("Home"),
		scenic.WithReporter(sink),
		scenic.WithJourneyLog(journey),
	)

	g.CreateScene("Home", func(s *dsl.SceneBuilder) {
		s.Tap("Settings", gear)
	})
	g.CreateScene("Settings", func(s *dsl.SceneBuilder) {
		s.Tap("About", aboutRow)
		s.BackTap(backChevron)
	})
	g.CreateScene("About", func(s *dsl.SceneBuilder) {
		s.BackTap(backChevron)
	})

	// 2. Test Initialization
	nav, err := g.Navigator("")
	if err != nil {
		t.Fatalf("Failed to create navigator: %v", err)
	}
	if nav.Current() != "Home" {
		t.Errorf("Expected initial scene 'Home', got '%s'", nav.Current())
	}

	// 3. Forward navigation replays one interaction per hop
	if err := nav.GoTo(ctx, "About"); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}
	if gear.taps != 1 || aboutRow.taps != 1 {
		t.Errorf("Expected one tap per edge, got gear=%d about=%d", gear.taps, aboutRow.taps)
	}

	// 4. Return rides the back-edges grafted on the way in
	if err := nav.Revert(ctx); err != nil {
		t.Fatalf("Revert failed: %v", err)
	}
	if nav.Current() != "Home" {
		t.Errorf("Expected to be back at Home, got '%s'", nav.Current())
	}
	if backChevron.taps != 2 {
		t.Errorf("Expected 2 back taps, got %d", backChevron.taps)
	}

	// 5. The whole round trip landed in the journey log
	hops, err := journey.History(ctx, nav.RunID())
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(hops) != 4 {
		t.Errorf("Expected 4 recorded hops, got %d", len(hops))
	}

	if len(sink.failures) != 0 {
		t.Errorf("Unexpected failures: %v", sink.failures)
	}
}

func TestFacade_Failures(t *testing.T) {
	ctx := context.Background()

	sink := &failureSink{}
	g := scenic.New(
		scenic.WithInitialScene("Home"),
		scenic.WithReporter(sink),
	)
	g.CreateScene("Home", nil)
	g.CreateScene("Island", nil)

	nav, err := g.Navigator("")
	if err != nil {
		t.Fatalf("Failed to create navigator: %v", err)
	}

	if err := nav.GoTo(ctx, "Ghost"); !errors.Is(err, domain.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if err := nav.GoTo(ctx, "Island"); !errors.Is(err, domain.ErrNoRoute) {
		t.Errorf("Expected ErrNoRoute, got %v", err)
	}
	if len(sink.failures) != 2 {
		t.Errorf("Expected 2 reported failures, got %d", len(sink.failures))
	}
	if nav.Current() != "Home" {
		t.Errorf("Expected position unchanged, got '%s'", nav.Current())
	}
}

func TestFacade_NavigatorWithoutInitial(t *testing.T) {
	g := scenic.New()
	g.CreateScene("Only", nil)

	if _, err := g.Navigator(""); !errors.Is(err, domain.ErrNoInitialScene) {
		t.Errorf("Expected ErrNoInitialScene, got %v", err)
	}

	nav, err := g.Navigator("Only")
	if err != nil {
		t.Fatalf("Explicit starting scene failed: %v", err)
	}
	if nav.Current() != "Only" {
		t.Errorf("Expected to start at Only, got '%s'", nav.Current())
	}
}

func TestFacade_Inspect(t *testing.T) {
	g := scenic.New(scenic.WithInitialScene("Home"))
	g.CreateScene("Home", func(s *dsl.SceneBuilder) {
		s.Noop("Splash")
	})
	g.CreateScene("Splash", func(s *dsl.SceneBuilder) {
		s.DismissOnUse()
	})

	infos, err := g.Inspect()
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(infos))
	}
	if !infos[0].Initial || infos[0].Name != "Home" {
		t.Errorf("Unexpected first scene: %+v", infos[0])
	}
	if !infos[1].DismissOnUse {
		t.Errorf("Expected Splash marked dismiss-on-use: %+v", infos[1])
	}
}

func TestFacade_ValidateCollectsErrors(t *testing.T) {
	g := scenic.New()
	g.CreateScene("Home", func(s *dsl.SceneBuilder) {
		s.Noop("Ghost")
	})

	errs := g.Validate()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
}

/*
Package scenic is a navigation-graph engine for driving an interactive
application through a declared set of states ("scenes") during automated
end-to-end testing.

Tests declare the app's reachable scenes and transitions once; a navigator
then computes how to get from the current scene to any target and replays the
minimal sequence of UI actions. The engine owns the graph and routing only:
real taps, swipes and assertions are performed by host-supplied actions and
elements, following Hexagonal Architecture principles.

# Concept

Each scene names one distinct application state. Edges are one-directional,
backed by opaque actions, and compiled lazily into a routable directed graph
on the first navigator request. During traversal the engine grafts temporary
"back" edges onto scenes that declare a back action, targeting the most
recently departed non-dismissible scene, and prunes them once consumed - so a
screen reachable from several parents returns to wherever it was actually
reached from.

# Usage

	g := scenic.New(scenic.WithInitialScene("Home"))

	g.CreateScene("Home", func(s *dsl.SceneBuilder) {
		s.Tap("Settings", gearButton)
	})
	g.CreateScene("Settings", func(s *dsl.SceneBuilder) {
		s.Tap("About", aboutRow).
			BackTap(backButton)
	})
	g.CreateScene("About", func(s *dsl.SceneBuilder) {
		s.BackTap(backButton).
			ExistsWhen(aboutTitle)
	})

	nav, err := g.Navigator("")
	if err != nil {
		t.Fatal(err)
	}

	// Replays the tap on gearButton, then on aboutRow.
	_ = nav.GoTo(ctx, "About")

	// Exhaustive walk, e.g. for screenshot generation.
	nav.VisitAll(ctx, func(name string) { shoot(name) })
*/
package scenic

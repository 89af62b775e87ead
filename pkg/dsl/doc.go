/*
Package dsl provides the fluent builder scene declarations are written
against.

A scene's builder function receives a SceneBuilder and registers the scene's
outbound edges and arrival behavior. Builders run lazily, once, when the graph
compiles, so edges may freely reference scenes declared later.

Example usage:

	g := scenic.New(scenic.WithInitialScene("Home"))

	g.CreateScene("Home", func(s *dsl.SceneBuilder) {
		s.Tap("Settings", gearButton)
	})

	g.CreateScene("Settings", func(s *dsl.SceneBuilder) {
		s.Tap("About", aboutRow).
			ExistsWhen(settingsTitle)
	})

	g.CreateScene("About", func(s *dsl.SceneBuilder) {
		s.BackTap(backButton)
	})
*/
package dsl

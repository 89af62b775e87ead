package dsl

import (
	"github.com/aretw0/scenic/pkg/domain"
	"github.com/aretw0/scenic/pkg/ports"
)

// BuildFunc declares a scene's edges against its builder handle. Builders run
// once, when the graph compiles.
type BuildFunc func(*SceneBuilder)

// SceneBuilder is the mutable handle a scene builder receives. It provides a
// fluent API for declaring the scene's outbound edges, back action, guard and
// dismissal semantics.
type SceneBuilder struct {
	scene *domain.Scene
}

// Wrap exposes a domain scene through the fluent API. The engine calls this
// when running builders at compile time.
func Wrap(scene *domain.Scene) *SceneBuilder {
	return &SceneBuilder{scene: scene}
}

// Gesture declares an edge to dest performed by an arbitrary interaction.
// fn must not be nil.
func (b *SceneBuilder) Gesture(dest string, fn domain.Action) *SceneBuilder {
	b.scene.Edges[dest] = fn
	return b
}

// Tap declares an edge to dest performed by tapping el.
func (b *SceneBuilder) Tap(dest string, el ports.Element) *SceneBuilder {
	return b.Gesture(dest, el.Tap)
}

// TypeText declares an edge to dest performed by typing text into el.
func (b *SceneBuilder) TypeText(dest string, el ports.Element, text string) *SceneBuilder {
	return b.Gesture(dest, func() { el.TypeText(text) })
}

// SwipeUp declares an edge to dest performed by swiping up on el.
func (b *SceneBuilder) SwipeUp(dest string, el ports.Element) *SceneBuilder {
	return b.swipe(dest, el, ports.SwipeUp)
}

// SwipeDown declares an edge to dest performed by swiping down on el.
func (b *SceneBuilder) SwipeDown(dest string, el ports.Element) *SceneBuilder {
	return b.swipe(dest, el, ports.SwipeDown)
}

// SwipeLeft declares an edge to dest performed by swiping left on el.
func (b *SceneBuilder) SwipeLeft(dest string, el ports.Element) *SceneBuilder {
	return b.swipe(dest, el, ports.SwipeLeft)
}

// SwipeRight declares an edge to dest performed by swiping right on el.
func (b *SceneBuilder) SwipeRight(dest string, el ports.Element) *SceneBuilder {
	return b.swipe(dest, el, ports.SwipeRight)
}

func (b *SceneBuilder) swipe(dest string, el ports.Element, d ports.Direction) *SceneBuilder {
	return b.Gesture(dest, func() { el.Swipe(d) })
}

// Noop declares an edge to dest with no UI interaction, for transitions the
// app performs on its own (splash screens, redirects).
func (b *SceneBuilder) Noop(dest string) *SceneBuilder {
	return b.Gesture(dest, func() {})
}

// Back sets the action used to synthesize a temporary return edge to the most
// recently departed non-dismissible scene.
func (b *SceneBuilder) Back(fn domain.Action) *SceneBuilder {
	b.scene.BackAction = fn
	return b
}

// BackTap is Back with a tap on el.
func (b *SceneBuilder) BackTap(el ports.Element) *SceneBuilder {
	return b.Back(el.Tap)
}

// DismissOnUse marks the scene as one-shot: once departed it is never chosen
// as a return anchor for any descendant's back-edge.
func (b *SceneBuilder) DismissOnUse() *SceneBuilder {
	b.scene.DismissOnUse = true
	return b
}

// ExistsWhen requires el to become observable after arriving at this scene,
// within the navigator's guard timeout.
func (b *SceneBuilder) ExistsWhen(el ports.Element) *SceneBuilder {
	return b.ExistsWhenFunc(el.Exists)
}

// ExistsWhenFunc is ExistsWhen with an arbitrary predicate.
func (b *SceneBuilder) ExistsWhenFunc(guard domain.Guard) *SceneBuilder {
	b.scene.ExistsWhen = guard
	return b
}

// Scene returns the underlying domain scene. This is primarily used by the
// engine, but exposed for advanced usage.
func (b *SceneBuilder) Scene() *domain.Scene {
	return b.scene
}

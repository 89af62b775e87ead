package domain

// Action is an opaque, no-argument procedure that performs one real UI
// interaction (a tap, a swipe, text entry). The engine never inspects it and
// never calls it more than once per hop.
type Action func()

// Guard is an opaque predicate polled after arriving at a scene. It typically
// observes element existence, enabledness or hittability through the UI
// driver; the engine does not know or care what it observes.
type Guard func() bool

// Visitor observes scene departures during navigation. Bulk visit operations
// use it to run per-scene work (screenshots, assertions) exactly once per
// requested scene.
type Visitor func(name string)

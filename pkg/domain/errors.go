package domain

import "errors"

// ErrUnknownScene is returned when a navigation call names a scene that was
// never declared in the graph.
var ErrUnknownScene = errors.New("unknown scene")

// ErrNoRoute is returned when no directed path exists from the current scene
// to the requested destination.
var ErrNoRoute = errors.New("no route to scene")

// ErrNoInitialScene is returned when a navigator is requested but no starting
// scene is resolvable.
var ErrNoInitialScene = errors.New("no initial scene")

// ErrRunNotFound is returned when fetching the journey of a run ID that has
// no recorded hops.
var ErrRunNotFound = errors.New("run not found")

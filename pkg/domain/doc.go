/*
Package domain contains the core domain models for the scenic engine.

It defines the fundamental entities of the navigation graph, such as Scenes,
Actions and arrival Guards, plus the call-site and lifecycle-event types the
rest of the engine reports through. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Scene: a named, distinct state of the application under test.
  - Action: an opaque procedure backing a directed transition (edge).
  - Guard: a predicate that must become observable after entering a scene.
  - CallSite: the source position failures are attributed to.
  - LifecycleHooks: observability callbacks fired per hop.
*/
package domain

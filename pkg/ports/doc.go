/*
Package ports defines the driven ports (interfaces) for the scenic engine.

These interfaces decouple the core navigation logic from external
collaborators, allowing the engine to work with any UI-automation driver,
failure reporter, path-search algorithm or journey store.

# Key Interfaces

  - Reporter: receives failure conditions without halting execution.
  - Element: the UI-driver handle the engine taps, types into and polls.
  - PathFinder: the injected unweighted shortest-path primitive.
  - JourneyLog: persists the hops of a traversal run (Memory or Redis).
*/
package ports

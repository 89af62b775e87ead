package domain

// Scene represents a single named application state: its outbound edges,
// optional back action and arrival guard. Scenes are owned by their graph and
// reference each other only by name.
type Scene struct {
	// Name uniquely identifies the scene within its graph.
	Name string

	// Edges maps a destination scene name to the action that performs the
	// transition. One edge per distinct destination; edges are one-directional.
	Edges map[string]Action

	// BackAction, when set, is used to synthesize a temporary return edge to
	// the most recently departed non-dismissible scene.
	BackAction Action

	// DismissOnUse marks a one-shot scene (a dialog, a toast): once departed
	// it is never recorded as a return anchor.
	DismissOnUse bool

	// ExistsWhen must become observable within a bounded wait after arriving.
	ExistsWhen Guard

	// ReturnAnchor names the scene the live back-edge currently targets.
	// Empty while no back-edge is grafted.
	ReturnAnchor string

	// DeclaredAt is the source position of the CreateScene call, used for
	// failure attribution.
	DeclaredAt CallSite
}

// NewScene creates an empty scene declared at the given site.
func NewScene(name string, at CallSite) *Scene {
	return &Scene{
		Name:       name,
		Edges:      make(map[string]Action),
		DeclaredAt: at,
	}
}

// SceneInfo is the serializable, action-free view of a scene used for
// introspection and visualization.
type SceneInfo struct {
	Name         string   `json:"name"`
	Edges        []string `json:"edges"`
	HasBack      bool     `json:"has_back"`
	DismissOnUse bool     `json:"dismiss_on_use"`
	Guarded      bool     `json:"guarded"`
	Initial      bool     `json:"initial"`
}

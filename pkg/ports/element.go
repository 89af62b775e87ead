package ports

// Direction of a swipe gesture.
type Direction string

const (
	SwipeUp    Direction = "up"
	SwipeDown  Direction = "down"
	SwipeLeft  Direction = "left"
	SwipeRight Direction = "right"
)

// Element is the UI-driver collaborator: a handle to an on-screen element the
// engine can interact with and poll. What an element actually observes or
// touches is entirely the driver's business.
type Element interface {
	// Exists reports whether the element is currently observable.
	Exists() bool

	// Tap performs a tap on the element.
	Tap()

	// TypeText focuses the element and enters text.
	TypeText(text string)

	// Swipe performs a directional swipe starting on the element.
	Swipe(d Direction)
}

// Package input converts window backend events into viewer events.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Key is a backend-independent key code. Only the keys the viewer reacts
// to are mapped; everything else arrives as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyR
	KeyF12
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX float64
	MouseY float64
	Button MouseButton

	// LeftHeld reports whether the left button was down when a
	// mouse event was produced.
	LeftHeld bool
}

// Source produces pending events from a window backend.
type Source interface {
	// PollEvents appends all pending events to dst and returns it.
	PollEvents(dst []Event) []Event
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls src and stores the events for this frame.
// Returns true if the viewer should quit.
func (i *Input) Update(src Source) bool {
	i.events = src.PollEvents(i.events[:0])

	for _, e := range i.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

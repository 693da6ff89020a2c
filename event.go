package vxpage

// Event is an empty interface used to pass data to widgets. Layout widgets
// which have no interaction pass every event through
type Event interface{}

// Resize is delivered whenever the size of the display changes
type Resize struct {
	Cols int
	Rows int
}

// Redraw is a generic event which can be sent to tell widgets some update has
// occurred it may not know about otherwise and it must redraw
type Redraw struct{}

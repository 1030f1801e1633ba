package graphics

import "sync/atomic"

var lastContextID uint32

// Allocate a process-unique context id. Ids start at 0 and are never reused.
func NewContextID() uint32 {
	return atomic.AddUint32(&lastContextID, 1) - 1
}

// State holds per-context render state. The context id lets render objects
// correlate GPU resources (textures, display lists) with the context they were
// created in.
type State struct {
	ContextID uint32

	// The context that owns this state.
	Context Context

	// Set to true once the GL function pointers have been loaded for the
	// context.
	GLInitialized bool
}

// Create a state for the given context and assign it a fresh context id.
func NewState(ctx Context) *State {
	return &State{
		ContextID: NewContextID(),
		Context:   ctx,
	}
}

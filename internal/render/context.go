// Package render implements the per-run render context: the mutable
// delta-path cursor, the active script hash, and the output sink every
// element writes its wire deltas through.
package render

import (
	"sync/atomic"

	"github.com/streamgo-dev/streamgo/internal/wire"
)

// Context is the cursor a script run renders its element tree under.
// It is not safe for concurrent use: at most one render is ever in
// flight per session, all on one task.
type Context struct {
	// ActiveScriptHash identifies the user entrypoint.
	ActiveScriptHash string
	// SessionID is carried for forward-message metadata convenience.
	SessionID string
	// Sink is the connection's outbound handle, owned by the
	// orchestrator rather than by the context.
	Sink wire.Sink

	path      []uint32
	cancelled atomic.Bool
}

// New builds a context positioned at the given starting path. The
// orchestrator starts every run at [0] to reach the main block.
func New(sessionID, activeScriptHash string, sink wire.Sink, startPath []uint32) *Context {
	path := make([]uint32, len(startPath))
	copy(path, startPath)
	return &Context{
		ActiveScriptHash: activeScriptHash,
		SessionID:        sessionID,
		Sink:             sink,
		path:             path,
	}
}

// PathSnapshot returns a copy of the current delta-path. A copy is
// required: elements hold onto the path in their emitted DeltaPayload,
// and the cursor keeps mutating after render returns.
func (c *Context) PathSnapshot() []uint32 {
	out := make([]uint32, len(c.path))
	copy(out, c.path)
	return out
}

// Advance increments the last path component, moving the cursor to
// the next sibling slot.
func (c *Context) Advance() {
	if len(c.path) == 0 {
		return
	}
	c.path[len(c.path)-1]++
}

// Descend pushes a fresh 0 onto the path, entering a just-emitted
// block's first child slot.
func (c *Context) Descend() {
	c.path = append(c.path, 0)
}

// Ascend pops the last path component, leaving a container.
func (c *Context) Ascend() {
	if len(c.path) == 0 {
		return
	}
	c.path = c.path[:len(c.path)-1]
}

// Cancel marks the context so subsequent sibling renders stop. The
// flag is checked between sibling renders.
func (c *Context) Cancel() { c.cancelled.Store(true) }

// Cancelled reports whether Cancel has been called.
func (c *Context) Cancelled() bool { return c.cancelled.Load() }

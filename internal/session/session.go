// Package session implements the per-connection widget-state map: the
// values widgets read back between script runs.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/streamgo-dev/streamgo/internal/wire"
)

// Session owns the state spanning any number of script runs for one
// connection.
type Session struct {
	ID               string
	ActiveScriptHash string

	mu     sync.Mutex
	states map[string]wire.Value

	scriptRunSeq uint64
}

// New creates a session with a fresh, random session id.
func New(activeScriptHash string) *Session {
	return &Session{
		ID:               uuid.NewString(),
		ActiveScriptHash: activeScriptHash,
		states:           make(map[string]wire.Value),
	}
}

// NextScriptRunID regenerates script_run_id for a new run.
func (s *Session) NextScriptRunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scriptRunSeq++
	return uuid.NewString()
}

// Put records (or overwrites) widget_id's last-known value.
func (s *Session) Put(widgetID string, v wire.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[widgetID] = v
}

// Get is non-destructive for every value kind; trigger values are read
// destructively only through ConsumeTrigger.
func (s *Session) Get(widgetID string) (wire.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.states[widgetID]
	return v, ok
}

// Clear removes widgetID's stored value.
func (s *Session) Clear(widgetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, widgetID)
}

// ClearAll wipes all widget state, used by the ClearCache back-message.
func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = make(map[string]wire.Value)
}

// Ingest merges RerunScript.widget_states into the session map. It
// must run before the next render starts and never while one is in
// flight: no widget-state lock is held across the user function
// invocation.
func (s *Session) Ingest(states []wire.WidgetState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ws := range states {
		s.states[ws.WidgetID] = ws.Value
	}
}

// Resolve returns the value a widget keyed by id should see this run:
// the stored value if present and type-compatible with want, else
// deflt.
func (s *Session) Resolve(id string, want wire.ValueKind, deflt wire.Value) wire.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.states[id]
	if !ok || v.Kind != want {
		return deflt
	}
	return v
}

// ConsumeTrigger performs the atomic read-and-clear read of a trigger
// value: true is returned at most once per press, then the stored
// value flips back to false.
func (s *Session) ConsumeTrigger(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.states[id]
	if !ok || v.Kind != wire.KindTrigger {
		return false
	}
	fired := v.Bool
	if fired {
		s.states[id] = wire.Trigger(false)
	}
	return fired
}

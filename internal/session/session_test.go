package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamgo-dev/streamgo/internal/session"
	"github.com/streamgo-dev/streamgo/internal/wire"
)

// TestTriggerRoundTrip asserts trigger semantics directly against
// Session: a trigger observed true fires exactly once, then reads
// false on every later run until resubmitted.
func TestTriggerRoundTrip(t *testing.T) {
	sess := session.New("hash-1")

	// Run 1: no widget state ingested yet.
	require.False(t, sess.ConsumeTrigger("go"))

	// Run 2: client reports the button was pressed.
	sess.Ingest([]wire.WidgetState{{WidgetID: "go", Value: wire.Trigger(true)}})
	require.True(t, sess.ConsumeTrigger("go"))

	// Run 3: no new widget state; the trigger already consumed itself.
	require.False(t, sess.ConsumeTrigger("go"))
}

// TestResolveFallsBackToDefault covers non-trigger widget resolution
// when nothing has been ingested yet.
func TestResolveFallsBackToDefault(t *testing.T) {
	sess := session.New("hash")
	v := sess.Resolve("name", wire.KindString, wire.String("world"))
	require.True(t, v.Equal(wire.String("world")))
}

// TestResolveUsesIngestedValue covers the common widget round-trip:
// the value submitted via RerunScript is what the next run observes.
func TestResolveUsesIngestedValue(t *testing.T) {
	sess := session.New("hash")
	sess.Ingest([]wire.WidgetState{{WidgetID: "name", Value: wire.String("ada")}})
	v := sess.Resolve("name", wire.KindString, wire.String("world"))
	require.True(t, v.Equal(wire.String("ada")))
}

// TestResolveIgnoresTypeMismatch guards against a widget id being
// reused at a different kind across a script edit.
func TestResolveIgnoresTypeMismatch(t *testing.T) {
	sess := session.New("hash")
	sess.Ingest([]wire.WidgetState{{WidgetID: "x", Value: wire.Int(7)}})
	v := sess.Resolve("x", wire.KindString, wire.String("fallback"))
	require.True(t, v.Equal(wire.String("fallback")))
}

func TestClearAllWipesState(t *testing.T) {
	sess := session.New("hash")
	sess.Ingest([]wire.WidgetState{{WidgetID: "x", Value: wire.String("y")}})
	sess.ClearAll()
	v := sess.Resolve("x", wire.KindString, wire.String("fallback"))
	require.True(t, v.Equal(wire.String("fallback")))
}

func TestNextScriptRunIDChangesEveryCall(t *testing.T) {
	sess := session.New("hash")
	a := sess.NextScriptRunID()
	b := sess.NextScriptRunID()
	require.NotEqual(t, a, b)
}

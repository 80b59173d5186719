package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwardMessageRoundTrip(t *testing.T) {
	cases := []*ForwardMessage{
		{
			Kind: ForwardNewSession,
			NewSession: &NewSessionPayload{
				SessionID:      "sess-1",
				ScriptRunID:    "run-1",
				MainScriptPath: "app.py",
				PageScriptHash: "hash-1",
				ScriptRunning:  true,
			},
		},
		{
			Kind: ForwardSessionStatusChanged,
			SessionStatusChanged: &SessionStatusChangedPayload{
				ScriptIsRunning: true,
				RunOnSave:       false,
			},
		},
		{
			Kind: ForwardDelta,
			Delta: &DeltaPayload{
				DeltaPath:        []uint32{0, 0, 1},
				ActiveScriptHash: "hash-2",
				Cacheable:        false,
				NewElement: &ElementPayload{
					Kind:   "markdown",
					Fields: map[string]string{"body": "world"},
				},
			},
			Hash: "abc123",
		},
		{
			Kind:           ForwardScriptFinished,
			ScriptFinished: FinishedWithCompileError,
		},
	}

	for _, want := range cases {
		data, err := EncodeForward(want)
		require.NoError(t, err)

		got, err := DecodeForward(data)
		require.NoError(t, err)

		require.Equal(t, want.Kind, got.Kind)
		require.Equal(t, want.Hash, got.Hash)
		switch want.Kind {
		case ForwardNewSession:
			require.Equal(t, want.NewSession, got.NewSession)
		case ForwardSessionStatusChanged:
			require.Equal(t, want.SessionStatusChanged, got.SessionStatusChanged)
		case ForwardDelta:
			require.Equal(t, want.Delta, got.Delta)
		case ForwardScriptFinished:
			require.Equal(t, want.ScriptFinished, got.ScriptFinished)
		}
	}
}

func TestBackMessageRoundTrip(t *testing.T) {
	cases := []*BackMessage{
		{
			Kind: BackRerunScript,
			WidgetStates: []WidgetState{
				{WidgetID: "go", Value: Trigger(true)},
				{WidgetID: "name", Value: String("ada")},
				{WidgetID: "age", Value: Int(-7)},
				{WidgetID: "pi", Value: Float(3.14159)},
				{WidgetID: "flags", Value: BytesValue([]byte{1, 2, 3})},
				{WidgetID: "tags", Value: StringList([]string{"a", "b", "c"})},
				{WidgetID: "nums", Value: IntList([]int64{-1, 2, -3})},
				{WidgetID: "weights", Value: FloatList([]float64{1.5, -2.5})},
			},
		},
		{Kind: BackClearCache},
		{Kind: BackStopScript},
		{Kind: BackAppHeartbeat},
		{Kind: BackDebugDisconnectWebsocket},
		{Kind: BackDebugShutdownRuntime},
	}

	for _, want := range cases {
		data, err := EncodeBack(want)
		require.NoError(t, err)

		got, err := DecodeBack(data)
		require.NoError(t, err)

		require.Equal(t, want.Kind, got.Kind)
		require.Equal(t, len(want.WidgetStates), len(got.WidgetStates))
		for i, ws := range want.WidgetStates {
			require.Equal(t, ws.WidgetID, got.WidgetStates[i].WidgetID)
			require.True(t, ws.Value.Equal(got.WidgetStates[i].Value))
		}
	}
}

func TestDecodeBackRejectsGarbage(t *testing.T) {
	_, err := DecodeBack([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	require.Error(t, err)
}

func TestContentHashStable(t *testing.T) {
	h1 := ContentHash("markdown", map[string]string{"body": "x"})
	h2 := ContentHash("markdown", map[string]string{"body": "x"})
	require.Equal(t, h1, h2)

	h3 := ContentHash("markdown", map[string]string{"body": "y"})
	require.NotEqual(t, h1, h3)
}

func TestContentHashFieldOrderIndependent(t *testing.T) {
	h1 := ContentHash("slider", map[string]string{"min": "0", "max": "10"})
	h2 := ContentHash("slider", map[string]string{"max": "10", "min": "0"})
	require.Equal(t, h1, h2)
}

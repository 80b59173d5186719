// Package wire implements the binary framing contract between server
// and client: forward-messages (server -> client) and back-messages
// (client -> server), plus a content-addressed hash used to dedupe
// repeated element payloads.
//
// The concrete field numbers in codec.go stand in for the real client
// schema; this package does not compile them from a .proto file. They
// are encoded with the same length-delimited varint/tag wire format a
// real protobuf-generated encoder would use, via
// google.golang.org/protobuf/encoding/protowire, so a future swap to a
// generated schema only touches codec.go's field-number table.
package wire

// ScriptFinishedStatus enumerates the outcomes of a script run.
type ScriptFinishedStatus int32

const (
	FinishedSuccessfully ScriptFinishedStatus = iota
	FinishedWithCompileError
	FinishedEarlyForRerun
	FinishedFragmentRunSuccessfully
)

// ForwardKind tags which variant a ForwardMessage carries.
type ForwardKind int32

const (
	ForwardNewSession ForwardKind = iota
	ForwardSessionStatusChanged
	ForwardDelta
	ForwardScriptFinished
)

// NewSessionPayload initializes a client connection.
type NewSessionPayload struct {
	SessionID      string
	ScriptRunID    string
	MainScriptPath string
	PageScriptHash string
	Environment    string
	UserInfo       string
	ScriptRunning  bool
	RunOnSave      bool
}

// SessionStatusChangedPayload reports whether a script is running and
// whether the server will auto-rerun it on file save.
type SessionStatusChangedPayload struct {
	ScriptIsRunning bool
	RunOnSave       bool
}

// ElementPayload is a leaf or block's wire configuration: a kind label
// plus a flat field bag. Encoding the concrete fields of each widget
// kind is delegated to a schema inherited from the client; this generic
// bag is the contract every widget kind plugs into.
type ElementPayload struct {
	Kind   string
	Fields map[string]string
}

// DeltaPayload carries one wire delta: a new element or a new block,
// addressed at DeltaPath.
type DeltaPayload struct {
	DeltaPath        []uint32
	ActiveScriptHash string
	Cacheable        bool

	// Exactly one of NewElement / AddBlock is set.
	NewElement *ElementPayload
	AddBlock   *ElementPayload
}

// ForwardMessage is one server -> client wire message.
type ForwardMessage struct {
	Kind ForwardKind

	NewSession           *NewSessionPayload
	SessionStatusChanged *SessionStatusChangedPayload
	Delta                *DeltaPayload
	ScriptFinished       ScriptFinishedStatus

	// Hash is the content-addressed digest of the payload. Set to "" on
	// variants that don't carry a cacheable payload.
	Hash string
}

// BackKind tags which variant a BackMessage carries.
type BackKind int32

const (
	BackRerunScript BackKind = iota
	BackClearCache
	BackStopScript
	BackAppHeartbeat
	BackDebugDisconnectWebsocket
	BackDebugShutdownRuntime
)

// WidgetState is one (widget_id, value) pair from a RerunScript message.
type WidgetState struct {
	WidgetID string
	Value    Value
}

// BackMessage is one client -> server wire message.
type BackMessage struct {
	Kind BackKind

	// WidgetStates is populated only when Kind == BackRerunScript.
	WidgetStates []WidgetState
}

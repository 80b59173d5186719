package wire

import (
	"fmt"
	"math"
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers for ForwardMessage. One per oneof variant, matching how a
// real protobuf schema expresses "exactly one of these is set."
const (
	fnFwdNewSession           = 1
	fnFwdSessionStatusChanged = 2
	fnFwdDelta                = 3
	fnFwdScriptFinished       = 4
	fnFwdHash                 = 5
)

const (
	fnSessSessionID      = 1
	fnSessScriptRunID    = 2
	fnSessMainScriptPath = 3
	fnSessPageScriptHash = 4
	fnSessEnvironment    = 5
	fnSessUserInfo       = 6
	fnSessScriptRunning  = 7
	fnSessRunOnSave      = 8
)

const (
	fnStatusScriptRunning = 1
	fnStatusRunOnSave     = 2
)

const (
	fnElemKind   = 1
	fnElemFields = 2
)

const (
	fnKVKey   = 1
	fnKVValue = 2
)

const (
	fnDeltaPath             = 1
	fnDeltaActiveScriptHash = 2
	fnDeltaCacheable        = 3
	fnDeltaNewElement       = 4
	fnDeltaAddBlock         = 5
)

const (
	fnBackRerunScript          = 1
	fnBackClearCache           = 2
	fnBackStopScript           = 3
	fnBackAppHeartbeat         = 4
	fnBackDebugDisconnectWS    = 5
	fnBackDebugShutdownRuntime = 6
)

const fnRerunWidgetStates = 1

const (
	fnWSWidgetID    = 1
	fnWSValueKind   = 2
	fnWSStringValue = 3
	fnWSIntValue    = 4
	fnWSFloatValue  = 5
	fnWSBoolValue   = 6
	fnWSStringList  = 7
	fnWSIntList     = 8
	fnWSFloatList   = 9
	fnWSBytesValue  = 10
)

// EncodeForward serializes a ForwardMessage to its wire bytes.
func EncodeForward(m *ForwardMessage) ([]byte, error) {
	var b []byte

	switch m.Kind {
	case ForwardNewSession:
		if m.NewSession == nil {
			return nil, fmt.Errorf("wire: NewSession payload missing")
		}
		b = protowire.AppendTag(b, fnFwdNewSession, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeNewSession(m.NewSession))
	case ForwardSessionStatusChanged:
		if m.SessionStatusChanged == nil {
			return nil, fmt.Errorf("wire: SessionStatusChanged payload missing")
		}
		b = protowire.AppendTag(b, fnFwdSessionStatusChanged, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeStatus(m.SessionStatusChanged))
	case ForwardDelta:
		if m.Delta == nil {
			return nil, fmt.Errorf("wire: Delta payload missing")
		}
		encoded, err := encodeDelta(m.Delta)
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, fnFwdDelta, protowire.BytesType)
		b = protowire.AppendBytes(b, encoded)
	case ForwardScriptFinished:
		b = protowire.AppendTag(b, fnFwdScriptFinished, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.ScriptFinished))
	default:
		return nil, fmt.Errorf("wire: unknown forward kind %d", m.Kind)
	}

	if m.Hash != "" {
		b = protowire.AppendTag(b, fnFwdHash, protowire.BytesType)
		b = protowire.AppendString(b, m.Hash)
	}
	return b, nil
}

// DecodeForward parses wire bytes produced by EncodeForward.
func DecodeForward(data []byte) (*ForwardMessage, error) {
	m := &ForwardMessage{}
	seenKind := false

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch num {
		case fnFwdNewSession:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			ns, err := decodeNewSession(v)
			if err != nil {
				return nil, err
			}
			m.Kind, m.NewSession, seenKind = ForwardNewSession, ns, true
		case fnFwdSessionStatusChanged:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			st, err := decodeStatus(v)
			if err != nil {
				return nil, err
			}
			m.Kind, m.SessionStatusChanged, seenKind = ForwardSessionStatusChanged, st, true
		case fnFwdDelta:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			d, err := decodeDelta(v)
			if err != nil {
				return nil, err
			}
			m.Kind, m.Delta, seenKind = ForwardDelta, d, true
		case fnFwdScriptFinished:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad script_finished varint")
			}
			data = data[n:]
			m.Kind, m.ScriptFinished, seenKind = ForwardScriptFinished, ScriptFinishedStatus(v), true
		case fnFwdHash:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			m.Hash = string(v)
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field %d", num)
			}
			data = data[n:]
		}
	}

	if !seenKind {
		return nil, fmt.Errorf("wire: forward message has no recognized variant")
	}
	return m, nil
}

func encodeNewSession(p *NewSessionPayload) []byte {
	var b []byte
	b = appendStringField(b, fnSessSessionID, p.SessionID)
	b = appendStringField(b, fnSessScriptRunID, p.ScriptRunID)
	b = appendStringField(b, fnSessMainScriptPath, p.MainScriptPath)
	b = appendStringField(b, fnSessPageScriptHash, p.PageScriptHash)
	b = appendStringField(b, fnSessEnvironment, p.Environment)
	b = appendStringField(b, fnSessUserInfo, p.UserInfo)
	b = protowire.AppendTag(b, fnSessScriptRunning, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(p.ScriptRunning))
	b = protowire.AppendTag(b, fnSessRunOnSave, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(p.RunOnSave))
	return b
}

func decodeNewSession(data []byte) (*NewSessionPayload, error) {
	p := &NewSessionPayload{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad new_session tag")
		}
		data = data[n:]
		switch num {
		case fnSessSessionID:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data, p.SessionID = data[n:], string(v)
		case fnSessScriptRunID:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data, p.ScriptRunID = data[n:], string(v)
		case fnSessMainScriptPath:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data, p.MainScriptPath = data[n:], string(v)
		case fnSessPageScriptHash:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data, p.PageScriptHash = data[n:], string(v)
		case fnSessEnvironment:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data, p.Environment = data[n:], string(v)
		case fnSessUserInfo:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data, p.UserInfo = data[n:], string(v)
		case fnSessScriptRunning:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad script_running varint")
			}
			data, p.ScriptRunning = data[n:], v != 0
		case fnSessRunOnSave:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad run_on_save varint")
			}
			data, p.RunOnSave = data[n:], v != 0
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field in new_session")
			}
			data = data[n:]
		}
	}
	return p, nil
}

func encodeStatus(p *SessionStatusChangedPayload) []byte {
	var b []byte
	b = protowire.AppendTag(b, fnStatusScriptRunning, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(p.ScriptIsRunning))
	b = protowire.AppendTag(b, fnStatusRunOnSave, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(p.RunOnSave))
	return b
}

func decodeStatus(data []byte) (*SessionStatusChangedPayload, error) {
	p := &SessionStatusChangedPayload{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad status tag")
		}
		data = data[n:]
		switch num {
		case fnStatusScriptRunning:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad status varint")
			}
			data, p.ScriptIsRunning = data[n:], v != 0
		case fnStatusRunOnSave:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad status varint")
			}
			data, p.RunOnSave = data[n:], v != 0
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field in status")
			}
			data = data[n:]
		}
	}
	return p, nil
}

func encodeElement(e *ElementPayload) []byte {
	var b []byte
	b = appendStringField(b, fnElemKind, e.Kind)
	for _, k := range sortedKeys(e.Fields) {
		var kv []byte
		kv = appendStringField(kv, fnKVKey, k)
		kv = appendStringField(kv, fnKVValue, e.Fields[k])
		b = protowire.AppendTag(b, fnElemFields, protowire.BytesType)
		b = protowire.AppendBytes(b, kv)
	}
	return b
}

func decodeElement(data []byte) (*ElementPayload, error) {
	e := &ElementPayload{Fields: map[string]string{}}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad element tag")
		}
		data = data[n:]
		switch num {
		case fnElemKind:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data, e.Kind = data[n:], string(v)
		case fnElemFields:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			key, val, err := decodeKV(v)
			if err != nil {
				return nil, err
			}
			e.Fields[key] = val
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field in element")
			}
			data = data[n:]
		}
	}
	return e, nil
}

func decodeKV(data []byte) (key, value string, err error) {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", "", fmt.Errorf("wire: bad kv tag")
		}
		data = data[n:]
		switch num {
		case fnKVKey:
			v, n, e := consumeBytes(data, typ)
			if e != nil {
				return "", "", e
			}
			data, key = data[n:], string(v)
		case fnKVValue:
			v, n, e := consumeBytes(data, typ)
			if e != nil {
				return "", "", e
			}
			data, value = data[n:], string(v)
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return "", "", fmt.Errorf("wire: bad unknown field in kv")
			}
			data = data[n:]
		}
	}
	return key, value, nil
}

func encodeDelta(d *DeltaPayload) ([]byte, error) {
	var b []byte
	if len(d.DeltaPath) > 0 {
		var packed []byte
		for _, p := range d.DeltaPath {
			packed = protowire.AppendVarint(packed, uint64(p))
		}
		b = protowire.AppendTag(b, fnDeltaPath, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	b = appendStringField(b, fnDeltaActiveScriptHash, d.ActiveScriptHash)
	b = protowire.AppendTag(b, fnDeltaCacheable, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(d.Cacheable))

	switch {
	case d.NewElement != nil:
		b = protowire.AppendTag(b, fnDeltaNewElement, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeElement(d.NewElement))
	case d.AddBlock != nil:
		b = protowire.AppendTag(b, fnDeltaAddBlock, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeElement(d.AddBlock))
	default:
		return nil, fmt.Errorf("wire: delta has neither new_element nor add_block")
	}
	return b, nil
}

func decodeDelta(data []byte) (*DeltaPayload, error) {
	d := &DeltaPayload{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad delta tag")
		}
		data = data[n:]
		switch num {
		case fnDeltaPath:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			for len(v) > 0 {
				p, pn := protowire.ConsumeVarint(v)
				if pn < 0 {
					return nil, fmt.Errorf("wire: bad delta_path entry")
				}
				d.DeltaPath = append(d.DeltaPath, uint32(p))
				v = v[pn:]
			}
		case fnDeltaActiveScriptHash:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data, d.ActiveScriptHash = data[n:], string(v)
		case fnDeltaCacheable:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad cacheable varint")
			}
			data, d.Cacheable = data[n:], v != 0
		case fnDeltaNewElement:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			elem, err := decodeElement(v)
			if err != nil {
				return nil, err
			}
			d.NewElement = elem
		case fnDeltaAddBlock:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			elem, err := decodeElement(v)
			if err != nil {
				return nil, err
			}
			d.AddBlock = elem
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field in delta")
			}
			data = data[n:]
		}
	}
	return d, nil
}

// EncodeBack serializes a BackMessage to its wire bytes.
func EncodeBack(m *BackMessage) ([]byte, error) {
	var b []byte
	switch m.Kind {
	case BackRerunScript:
		var rs []byte
		for _, ws := range m.WidgetStates {
			enc, err := encodeWidgetState(ws)
			if err != nil {
				return nil, err
			}
			rs = protowire.AppendTag(rs, fnRerunWidgetStates, protowire.BytesType)
			rs = protowire.AppendBytes(rs, enc)
		}
		b = protowire.AppendTag(b, fnBackRerunScript, protowire.BytesType)
		b = protowire.AppendBytes(b, rs)
	case BackClearCache:
		b = protowire.AppendTag(b, fnBackClearCache, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	case BackStopScript:
		b = protowire.AppendTag(b, fnBackStopScript, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	case BackAppHeartbeat:
		b = protowire.AppendTag(b, fnBackAppHeartbeat, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	case BackDebugDisconnectWebsocket:
		b = protowire.AppendTag(b, fnBackDebugDisconnectWS, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	case BackDebugShutdownRuntime:
		b = protowire.AppendTag(b, fnBackDebugShutdownRuntime, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	default:
		return nil, fmt.Errorf("wire: unknown back kind %d", m.Kind)
	}
	return b, nil
}

// DecodeBack parses wire bytes produced by EncodeBack. Malformed input
// surfaces as an error; the caller should log it and drop the message
// rather than closing the connection.
func DecodeBack(data []byte) (*BackMessage, error) {
	m := &BackMessage{}
	seen := false
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad back-message tag")
		}
		data = data[n:]
		switch num {
		case fnBackRerunScript:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			states, err := decodeRerun(v)
			if err != nil {
				return nil, err
			}
			m.Kind, m.WidgetStates, seen = BackRerunScript, states, true
		case fnBackClearCache:
			if n := protowire.ConsumeFieldValue(num, typ, data); n >= 0 {
				data = data[n:]
			}
			m.Kind, seen = BackClearCache, true
		case fnBackStopScript:
			if n := protowire.ConsumeFieldValue(num, typ, data); n >= 0 {
				data = data[n:]
			}
			m.Kind, seen = BackStopScript, true
		case fnBackAppHeartbeat:
			if n := protowire.ConsumeFieldValue(num, typ, data); n >= 0 {
				data = data[n:]
			}
			m.Kind, seen = BackAppHeartbeat, true
		case fnBackDebugDisconnectWS:
			if n := protowire.ConsumeFieldValue(num, typ, data); n >= 0 {
				data = data[n:]
			}
			m.Kind, seen = BackDebugDisconnectWebsocket, true
		case fnBackDebugShutdownRuntime:
			if n := protowire.ConsumeFieldValue(num, typ, data); n >= 0 {
				data = data[n:]
			}
			m.Kind, seen = BackDebugShutdownRuntime, true
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field in back-message")
			}
			data = data[n:]
		}
	}
	if !seen {
		return nil, fmt.Errorf("wire: back-message has no recognized variant")
	}
	return m, nil
}

func decodeRerun(data []byte) ([]WidgetState, error) {
	var states []WidgetState
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad rerun tag")
		}
		data = data[n:]
		if num != fnRerunWidgetStates {
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field in rerun_script")
			}
			data = data[n:]
			continue
		}
		v, n, err := consumeBytes(data, typ)
		if err != nil {
			return nil, err
		}
		data = data[n:]
		ws, err := decodeWidgetState(v)
		if err != nil {
			return nil, err
		}
		states = append(states, ws)
	}
	return states, nil
}

func encodeWidgetState(ws WidgetState) ([]byte, error) {
	var b []byte
	b = appendStringField(b, fnWSWidgetID, ws.WidgetID)
	b = protowire.AppendTag(b, fnWSValueKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(ws.Value.Kind))

	switch ws.Value.Kind {
	case KindString:
		b = appendStringField(b, fnWSStringValue, ws.Value.Str)
	case KindInt:
		b = protowire.AppendTag(b, fnWSIntValue, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(ws.Value.Int))
	case KindFloat:
		b = protowire.AppendTag(b, fnWSFloatValue, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(ws.Value.Float))
	case KindBool, KindTrigger:
		b = protowire.AppendTag(b, fnWSBoolValue, protowire.VarintType)
		b = protowire.AppendVarint(b, boolToVarint(ws.Value.Bool))
	case KindStringList:
		for _, s := range ws.Value.Strs {
			b = appendStringField(b, fnWSStringList, s)
		}
	case KindIntList:
		var packed []byte
		for _, i := range ws.Value.Ints {
			packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(i))
		}
		b = protowire.AppendTag(b, fnWSIntList, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	case KindFloatList:
		var packed []byte
		for _, f := range ws.Value.Floats {
			packed = protowire.AppendFixed64(packed, math.Float64bits(f))
		}
		b = protowire.AppendTag(b, fnWSFloatList, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	case KindBytes:
		b = protowire.AppendTag(b, fnWSBytesValue, protowire.BytesType)
		b = protowire.AppendBytes(b, ws.Value.Bytes)
	default:
		return nil, fmt.Errorf("wire: unknown value kind %d", ws.Value.Kind)
	}
	return b, nil
}

func decodeWidgetState(data []byte) (WidgetState, error) {
	ws := WidgetState{}
	var strs []string
	var ints []int64
	var floats []float64

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return ws, fmt.Errorf("wire: bad widget_state tag")
		}
		data = data[n:]
		switch num {
		case fnWSWidgetID:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return ws, err
			}
			data, ws.WidgetID = data[n:], string(v)
		case fnWSValueKind:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return ws, fmt.Errorf("wire: bad value_kind varint")
			}
			data, ws.Value.Kind = data[n:], ValueKind(v)
		case fnWSStringValue:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return ws, err
			}
			data, ws.Value.Str = data[n:], string(v)
		case fnWSIntValue:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return ws, fmt.Errorf("wire: bad int_value varint")
			}
			data, ws.Value.Int = data[n:], protowire.DecodeZigZag(v)
		case fnWSFloatValue:
			v, n := protowire.ConsumeFixed64(data)
			if n < 0 {
				return ws, fmt.Errorf("wire: bad float_value")
			}
			data, ws.Value.Float = data[n:], math.Float64frombits(v)
		case fnWSBoolValue:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return ws, fmt.Errorf("wire: bad bool_value varint")
			}
			data, ws.Value.Bool = data[n:], v != 0
		case fnWSStringList:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return ws, err
			}
			data = data[n:]
			strs = append(strs, string(v))
		case fnWSIntList:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return ws, err
			}
			data = data[n:]
			for len(v) > 0 {
				iv, in := protowire.ConsumeVarint(v)
				if in < 0 {
					return ws, fmt.Errorf("wire: bad int_list entry")
				}
				ints = append(ints, protowire.DecodeZigZag(iv))
				v = v[in:]
			}
		case fnWSFloatList:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return ws, err
			}
			data = data[n:]
			for len(v) >= 8 {
				fv, fn := protowire.ConsumeFixed64(v)
				if fn < 0 {
					return ws, fmt.Errorf("wire: bad float_list entry")
				}
				floats = append(floats, math.Float64frombits(fv))
				v = v[fn:]
			}
		case fnWSBytesValue:
			v, n, err := consumeBytes(data, typ)
			if err != nil {
				return ws, err
			}
			data, ws.Value.Bytes = data[n:], append([]byte(nil), v...)
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return ws, fmt.Errorf("wire: bad unknown field in widget_state")
			}
			data = data[n:]
		}
	}
	ws.Value.Strs = strs
	ws.Value.Ints = ints
	ws.Value.Floats = floats
	return ws, nil
}

func appendStringField(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func consumeBytes(data []byte, typ protowire.Type) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("wire: expected bytes-typed field, got wire type %d", typ)
	}
	v, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return nil, 0, fmt.Errorf("wire: truncated bytes field")
	}
	return v, n, nil
}

func boolToVarint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

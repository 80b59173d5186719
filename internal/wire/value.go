package wire

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindTrigger
	KindStringList
	KindIntList
	KindFloatList
	KindBytes
)

// Value is the tagged union over widget-state values a client can send
// back to the server or a widget can resolve from session state.
type Value struct {
	Kind ValueKind

	Str    string
	Int    int64
	Float  float64
	Bool   bool
	Strs   []string
	Ints   []int64
	Floats []float64
	Bytes  []byte
}

func String(s string) Value       { return Value{Kind: KindString, Str: s} }
func Int(i int64) Value           { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value       { return Value{Kind: KindFloat, Float: f} }
func Bool(b bool) Value           { return Value{Kind: KindBool, Bool: b} }
func Trigger(b bool) Value        { return Value{Kind: KindTrigger, Bool: b} }
func StringList(s []string) Value { return Value{Kind: KindStringList, Strs: s} }
func IntList(i []int64) Value     { return Value{Kind: KindIntList, Ints: i} }
func FloatList(f []float64) Value { return Value{Kind: KindFloatList, Floats: f} }
func BytesValue(b []byte) Value   { return Value{Kind: KindBytes, Bytes: b} }

// Equal reports whether two values carry the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindBool, KindTrigger:
		return v.Bool == o.Bool
	case KindBytes:
		return string(v.Bytes) == string(o.Bytes)
	case KindStringList:
		if len(v.Strs) != len(o.Strs) {
			return false
		}
		for i := range v.Strs {
			if v.Strs[i] != o.Strs[i] {
				return false
			}
		}
		return true
	case KindIntList:
		if len(v.Ints) != len(o.Ints) {
			return false
		}
		for i := range v.Ints {
			if v.Ints[i] != o.Ints[i] {
				return false
			}
		}
		return true
	case KindFloatList:
		if len(v.Floats) != len(o.Floats) {
			return false
		}
		for i := range v.Floats {
			if v.Floats[i] != o.Floats[i] {
				return false
			}
		}
		return true
	}
	return false
}

package wire

import "fmt"

// Kind enumerates the classes of failure a session can hit, each with
// its own recovery policy (decode failures drop the frame, transport
// failures tear down the connection, and so on).
type Kind int

const (
	KindDecodeErr Kind = iota
	KindUserFunction
	KindWidgetCollision
	KindTransport
	KindInternalEncode
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindDecodeErr:
		return "Decode"
	case KindUserFunction:
		return "UserFunction"
	case KindWidgetCollision:
		return "WidgetCollision"
	case KindTransport:
		return "Transport"
	case KindInternalEncode:
		return "InternalEncode"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error wraps a taxonomy Kind around an underlying cause. The Kind lets
// callers branch on error.Is / errors.As style policy without string
// matching, while Cause still carries whatever %w wrapping produced it.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Wrap builds an *Error with the given Kind.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

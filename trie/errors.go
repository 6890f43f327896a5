package trie

import "errors"

// Kind classifies the error conditions the engine can raise. It mirrors the
// error taxonomy of the underlying library: kinds, not a type per failure.
type Kind int

const (
	// KindInvalidArgument marks a rejected empty key, an over-length key,
	// or a disallowed nil key/value.
	KindInvalidArgument Kind = iota
	// KindOutOfRange marks a mutation attempted through a bounded view
	// (sub-map, prefix-map) at a key outside that view's bounds.
	KindOutOfRange
	// KindConcurrentModification marks an iterator or view observing a
	// structural change to the engine since its modification snapshot.
	KindConcurrentModification
	// KindNotFound marks first/last-key queries on an empty map, or an
	// iterator advanced past its end.
	KindNotFound
	// KindCodec marks a codec implementation bug (bit_at index out of
	// its own key's range) and must abort the operation.
	KindCodec
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindOutOfRange:
		return "out of range"
	case KindConcurrentModification:
		return "concurrent modification"
	case KindNotFound:
		return "not found"
	case KindCodec:
		return "codec error"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by this package. Use errors.Is
// against the sentinel Err* values to test for a particular Kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Msg }

// Is makes Error participate in errors.Is against the package's sentinels,
// which are themselves *Error values distinguished only by Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrInvalidArgument        = &Error{Kind: KindInvalidArgument, Msg: "invalid argument"}
	ErrOutOfRange             = &Error{Kind: KindOutOfRange, Msg: "out of range"}
	ErrConcurrentModification = &Error{Kind: KindConcurrentModification, Msg: "concurrent modification"}
	ErrNotFound               = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrCodec                  = &Error{Kind: KindCodec, Msg: "codec error"}
)

func errInvalidArgument(msg string) error { return &Error{Kind: KindInvalidArgument, Msg: msg} }
func errOutOfRange(msg string) error      { return &Error{Kind: KindOutOfRange, Msg: msg} }
func errConcurrentMod(msg string) error {
	return &Error{Kind: KindConcurrentModification, Msg: msg}
}
func errNotFound(msg string) error { return &Error{Kind: KindNotFound, Msg: msg} }
func errCodec(msg string) error    { return &Error{Kind: KindCodec, Msg: msg} }

// unwrapKind reports the Kind of err if it (or something it wraps) is an
// *Error, which is how callers distinguish our sentinels from errors.Is.
func unwrapKind(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

package identicon

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind rather than matching error strings; Error()
// text is for humans and may evolve.
type Kind string

const (
	// KindUnderflow marks a precondition violation: a digest or retained
	// chunk shorter than the minimum a stage requires. Unreachable under the
	// fixed 16-byte/3-chunk configuration, but guarded for arbitrary digests.
	KindUnderflow Kind = "Underflow"
	// KindRender marks a failure surfaced by the rasterizer collaborator.
	KindRender Kind = "Render"
	// KindPersist marks a failure surfaced unchanged from the persistence
	// collaborator.
	KindPersist Kind = "Persist"
)

// Error is the package's structured error type.
//
// Stage names the pipeline stage that failed. Use errors.As to extract
// *Error for structured handling; Cause is preserved for errors.Is checks
// against collaborator errors.
type Error struct {
	Kind    Kind
	Stage   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Stage == "" {
		return e.Message
	}
	return e.Stage + ": " + e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, stage, msg string) error {
	return &Error{Kind: kind, Stage: stage, Message: msg}
}

func wrapError(kind Kind, stage, msg string, cause error) error {
	if cause == nil {
		return newError(kind, stage, msg)
	}
	return &Error{Kind: kind, Stage: stage, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

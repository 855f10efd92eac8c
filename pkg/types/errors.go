package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindLookup       ErrKind = iota // label or compound key absent at some depth
	ErrKindConstruction                // duplicate label, ragged tree, zero depth, bad label shape
	ErrKindUsage                       // malformed selector, bad order, depth out of range
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindLookup:
		return "lookup"
	case ErrKindConstruction:
		return "construction"
	case ErrKindUsage:
		return "usage"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
//
// Lookup errors also record the depth and the label that could not be
// resolved; Depth is -1 when the error is not tied to a single depth.
type Error struct {
	Kind  ErrKind
	Msg   string
	Depth int
	Label Label
	Err   error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations. Errors built by the
// helpers below wrap one of these, so errors.Is works against them.
var (
	// ErrNotFound indicates a label absent from a level.
	ErrNotFound = &Error{Kind: ErrKindLookup, Msg: "label not found", Depth: -1}

	// ErrDuplicateLabel indicates a compound label that occurs twice.
	ErrDuplicateLabel = &Error{Kind: ErrKindConstruction, Msg: "duplicate label", Depth: -1}
	// ErrNotContiguous indicates labels not grouped contiguously by prefix.
	ErrNotContiguous = &Error{Kind: ErrKindConstruction, Msg: "labels not contiguous by hierarchy", Depth: -1}
	// ErrDepthMismatch indicates a compound label of the wrong depth.
	ErrDepthMismatch = &Error{Kind: ErrKindConstruction, Msg: "label depth mismatch", Depth: -1}
	// ErrRaggedTree indicates leaves reachable at different depths.
	ErrRaggedTree = &Error{Kind: ErrKindConstruction, Msg: "ragged tree", Depth: -1}
	// ErrZeroDepth indicates a hierarchy without any depth.
	ErrZeroDepth = &Error{Kind: ErrKindConstruction, Msg: "zero depth", Depth: -1}
	// ErrUnsupportedLabel indicates a label value that cannot be indexed.
	ErrUnsupportedLabel = &Error{Kind: ErrKindConstruction, Msg: "unsupported label", Depth: -1}
	// ErrInvalidTree indicates a hand-built tree with broken offsets or targets.
	ErrInvalidTree = &Error{Kind: ErrKindConstruction, Msg: "invalid tree", Depth: -1}

	// ErrBadSelector indicates a malformed selector.
	ErrBadSelector = &Error{Kind: ErrKindUsage, Msg: "malformed selector", Depth: -1}
	// ErrBadOrder indicates a depth order that is not a permutation.
	ErrBadOrder = &Error{Kind: ErrKindUsage, Msg: "order is not a permutation of depths", Depth: -1}
	// ErrDepthRange indicates a depth index outside the hierarchy.
	ErrDepthRange = &Error{Kind: ErrKindUsage, Msg: "depth out of range", Depth: -1}
	// ErrInvalidArgument indicates any other misuse of an operation.
	ErrInvalidArgument = &Error{Kind: ErrKindUsage, Msg: "invalid argument", Depth: -1}
)

// NewLookupError reports that label could not be found at depth.
func NewLookupError(depth int, label Label) error {
	return &Error{
		Kind:  ErrKindLookup,
		Msg:   fmt.Sprintf("depth %d: label %s", depth, FormatLabel(label)),
		Depth: depth,
		Label: label,
		Err:   ErrNotFound,
	}
}

// Construction wraps a construction sentinel with a formatted detail.
func Construction(sentinel *Error, format string, args ...any) error {
	return &Error{
		Kind:  ErrKindConstruction,
		Msg:   fmt.Sprintf(format, args...),
		Depth: -1,
		Err:   sentinel,
	}
}

// Usage wraps a usage sentinel with a formatted detail.
func Usage(sentinel *Error, format string, args ...any) error {
	return &Error{
		Kind:  ErrKindUsage,
		Msg:   fmt.Sprintf(format, args...),
		Depth: -1,
		Err:   sentinel,
	}
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind.
func IsKind(err error, kind ErrKind) bool {
	var te *Error
	if !errors.As(err, &te) {
		return false
	}
	return te.Kind == kind
}

// LookupDetail returns the depth and label of the first lookup error in err's
// chain. ok is false when err holds no lookup error.
func LookupDetail(err error) (depth int, label Label, ok bool) {
	for err != nil {
		var te *Error
		if !errors.As(err, &te) {
			return -1, nil, false
		}
		if te.Kind == ErrKindLookup && te.Depth >= 0 {
			return te.Depth, te.Label, true
		}
		err = te.Err
	}
	return -1, nil, false
}

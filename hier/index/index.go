package index

import (
	"fmt"

	"github.com/joshuapare/hierkit/pkg/types"
)

// Kind names the implementation family of a single-level index. Levels at the
// same depth may use different kinds.
type Kind int

const (
	KindLabels Kind = iota // map-backed arbitrary labels
	KindRange              // arithmetic integer progression
	KindDate               // calendar dates
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindLabels:
		return "Labels"
	case KindRange:
		return "Range"
	case KindDate:
		return "Dates"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Index is the read-only contract of a single-level index: an ordered set of
// unique labels, each at one position.
//
// Implementations are immutable once constructed, so a single Index may be
// shared by any number of tree nodes.
type Index interface {
	// Len returns the number of labels.
	Len() int

	// Position returns the position of label, or false when absent.
	Position(label types.Label) (int, bool)

	// Label returns the label at pos. pos must be in [0, Len()).
	Label(pos int) types.Label

	// Labels returns a copy of all labels in order.
	Labels() []types.Label

	// Kind returns the implementation family.
	Kind() Kind

	// Name returns the optional index name.
	Name() types.Label

	// Stats returns index statistics (size, implementation).
	Stats() Stats
}

// Growable is a grow-only Index: labels can be appended but never removed or
// reordered.
type Growable interface {
	Index

	// Append adds label at position Len(). A duplicate label returns a
	// construction error and leaves the index unchanged.
	Append(label types.Label) error
}

// Constructor builds an Index from an ordered sequence of unique labels.
// Constructors are supplied per depth when building a hierarchy.
type Constructor func(labels []types.Label, name types.Label) (Index, error)

// Stats reports index metrics.
type Stats struct {
	Count       int    // Number of labels
	BytesApprox int    // Approximate memory usage (best effort)
	Impl        string // Implementation name
}

// Default is the Constructor used when none is given for a depth.
func Default(labels []types.Label, name types.Label) (Index, error) {
	return NewLabels(labels, name)
}

// Lookup resolves label through idx, returning a lookup error tagged with
// depth on failure.
func Lookup(idx Index, depth int, label types.Label) (int, error) {
	pos, ok := idx.Position(label)
	if !ok {
		return 0, types.NewLookupError(depth, label)
	}
	return pos, nil
}

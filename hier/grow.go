package hier

import (
	"context"
	"iter"

	"github.com/joshuapare/hierkit/hier/dirty"
	"github.com/joshuapare/hierkit/hier/hloc"
	"github.com/joshuapare/hierkit/internal/logger"
	"github.com/joshuapare/hierkit/pkg/types"
)

// IndexHierarchyGO is a grow-only hierarchical index. Appended compound
// labels are buffered and merged into the tree on the next read; nothing is
// validated at append time.
//
// Every read goes through Snapshot, which rebuilds the tree from the last
// valid hierarchy plus the pending labels. If the rebuild fails, the previous
// hierarchy is kept, the labels stay pending, and every read fails with the
// same error until Discard drops them.
//
// NOT thread-safe. A single goroutine must own appends and reads.
type IndexHierarchyGO struct {
	h       *IndexHierarchy
	pending *dirty.Tracker
}

// NewGO returns a grow-only hierarchy starting from h.
func NewGO(h *IndexHierarchy) *IndexHierarchyGO {
	return &IndexHierarchyGO{h: h, pending: dirty.NewTracker()}
}

// ToGO returns a grow-only hierarchy starting from h's labels.
func (h *IndexHierarchy) ToGO() *IndexHierarchyGO { return NewGO(h) }

// FromLabelsGO is FromLabels returning a grow-only hierarchy.
func FromLabelsGO(rows [][]types.Label, opts ...Option) (*IndexHierarchyGO, error) {
	h, err := FromLabels(rows, opts...)
	if err != nil {
		return nil, err
	}
	return NewGO(h), nil
}

// Append buffers one compound label. Duplicates and depth mismatches are
// reported by the next read.
func (g *IndexHierarchyGO) Append(row []types.Label) {
	g.pending.Add(row)
}

// Extend buffers every compound label of other, in order.
func (g *IndexHierarchyGO) Extend(other *IndexHierarchy) {
	g.pending.AddAll(other.rows())
}

// Dirty reports whether appended labels are waiting to be merged.
func (g *IndexHierarchyGO) Dirty() bool { return g.pending.Dirty() }

// Pending returns the number of labels waiting to be merged.
func (g *IndexHierarchyGO) Pending() int { return g.pending.Len() }

// Discard drops every pending label, returning to the last valid state.
func (g *IndexHierarchyGO) Discard() { g.pending.Reset() }

// Snapshot merges pending labels and returns the current immutable
// hierarchy. The result is not affected by later appends.
func (g *IndexHierarchyGO) Snapshot() (*IndexHierarchy, error) {
	err := g.pending.Reconcile(context.Background(), func(rows [][]types.Label) error {
		all := make([][]types.Label, 0, g.h.Len()+len(rows))
		all = append(all, g.h.rows()...)
		all = append(all, rows...)
		depth := g.h.depth
		if g.h.Len() == 0 {
			// An empty start takes its depth from the first appended row.
			depth = 0
		}
		next, err := rebuild(all, depth, g.h.constructors(), g.h.name, false)
		if err != nil {
			logger.Debug("grow-only reconcile failed", "pending", len(rows), "err", err)
			return err
		}
		logger.Debug("grow-only reconciled", "pending", len(rows), "len", next.Len())
		g.h = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g.h, nil
}

// Copy returns an independent grow-only hierarchy with the same labels and
// pending appends.
func (g *IndexHierarchyGO) Copy() *IndexHierarchyGO {
	return &IndexHierarchyGO{h: g.h.Copy(), pending: g.pending.Clone()}
}

// Len returns the number of compound labels.
func (g *IndexHierarchyGO) Len() (int, error) {
	h, err := g.Snapshot()
	if err != nil {
		return 0, err
	}
	return h.Len(), nil
}

// Depth returns the depth.
func (g *IndexHierarchyGO) Depth() (int, error) {
	h, err := g.Snapshot()
	if err != nil {
		return 0, err
	}
	return h.Depth(), nil
}

// Name returns the hierarchy name. It does not require a merge.
func (g *IndexHierarchyGO) Name() any { return g.h.name }

// Names returns the per-depth display names.
func (g *IndexHierarchyGO) Names() ([]string, error) {
	h, err := g.Snapshot()
	if err != nil {
		return nil, err
	}
	return h.Names(), nil
}

// Flat returns every compound label in position order.
func (g *IndexHierarchyGO) Flat() ([][]types.Label, error) {
	h, err := g.Snapshot()
	if err != nil {
		return nil, err
	}
	return h.Flat(), nil
}

// LocToILoc resolves a selector.
func (g *IndexHierarchyGO) LocToILoc(sel hloc.HLoc) (hloc.ILoc, error) {
	h, err := g.Snapshot()
	if err != nil {
		return hloc.ILoc{}, err
	}
	return h.LocToILoc(sel)
}

// ILocOf returns the position of one compound label.
func (g *IndexHierarchyGO) ILocOf(key ...types.Label) (int, error) {
	h, err := g.Snapshot()
	if err != nil {
		return 0, err
	}
	return h.ILocOf(key...)
}

// Contains reports whether key is one of the compound labels.
func (g *IndexHierarchyGO) Contains(key []types.Label) (bool, error) {
	h, err := g.Snapshot()
	if err != nil {
		return false, err
	}
	return h.Contains(key), nil
}

// ValuesAtDepth returns the label of every position at one depth.
func (g *IndexHierarchyGO) ValuesAtDepth(depth int) ([]types.Label, error) {
	h, err := g.Snapshot()
	if err != nil {
		return nil, err
	}
	return h.ValuesAtDepth(depth)
}

// transform applies fn to the merged hierarchy and wraps the result as a new
// grow-only hierarchy.
func (g *IndexHierarchyGO) transform(fn func(*IndexHierarchy) (*IndexHierarchy, error)) (*IndexHierarchyGO, error) {
	h, err := g.Snapshot()
	if err != nil {
		return nil, err
	}
	out, err := fn(h)
	if err != nil {
		return nil, err
	}
	return NewGO(out), nil
}

// Rename returns a grow-only copy with a new name.
func (g *IndexHierarchyGO) Rename(name any) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.Rename(name), nil })
}

// Rehierarch is IndexHierarchy.Rehierarch for a grow-only hierarchy.
func (g *IndexHierarchyGO) Rehierarch(order []int) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.Rehierarch(order) })
}

// AddLevel is IndexHierarchy.AddLevel for a grow-only hierarchy.
func (g *IndexHierarchyGO) AddLevel(label types.Label) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.AddLevel(label) })
}

// DropLevel is IndexHierarchy.DropLevel for a grow-only hierarchy.
func (g *IndexHierarchyGO) DropLevel(depth int) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.DropLevel(depth) })
}

// Relabel is IndexHierarchy.Relabel for a grow-only hierarchy.
func (g *IndexHierarchyGO) Relabel(m *LabelMap) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.Relabel(m) })
}

// Union is IndexHierarchy.Union for a grow-only hierarchy.
func (g *IndexHierarchyGO) Union(others ...*IndexHierarchy) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.Union(others...) })
}

// Intersection is IndexHierarchy.Intersection for a grow-only hierarchy.
func (g *IndexHierarchyGO) Intersection(others ...*IndexHierarchy) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.Intersection(others...) })
}

// Difference is IndexHierarchy.Difference for a grow-only hierarchy.
func (g *IndexHierarchyGO) Difference(others ...*IndexHierarchy) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.Difference(others...) })
}

// DropLevels is IndexHierarchy.DropLevels for a grow-only hierarchy.
func (g *IndexHierarchyGO) DropLevels(count int) (*IndexHierarchyGO, error) {
	return g.transform(func(h *IndexHierarchy) (*IndexHierarchy, error) { return h.DropLevels(count) })
}

// All iterates over the merged hierarchy. Appends made during iteration are
// not visited.
func (g *IndexHierarchyGO) All() (iter.Seq2[int, []types.Label], error) {
	h, err := g.Snapshot()
	if err != nil {
		return nil, err
	}
	return h.All(), nil
}

// IsIn reports, for every position, whether its compound label is among keys.
func (g *IndexHierarchyGO) IsIn(keys [][]types.Label) ([]bool, error) {
	h, err := g.Snapshot()
	if err != nil {
		return nil, err
	}
	return h.IsIn(keys), nil
}

// LocsToILocs returns the positions of the given compound labels.
func (g *IndexHierarchyGO) LocsToILocs(keys [][]types.Label) ([]int, error) {
	h, err := g.Snapshot()
	if err != nil {
		return nil, err
	}
	return h.LocsToILocs(keys)
}

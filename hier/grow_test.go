package hier_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hierkit/hier"
	"github.com/joshuapare/hierkit/hier/hloc"
	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/pkg/types"
)

func TestIndexHierarchyGO_Append(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows())
	require.NoError(t, err)

	g.Append([]types.Label{"III", "A"})
	g.Append([]types.Label{"III", "B"})
	require.True(t, g.Dirty())
	require.Equal(t, 2, g.Pending())

	n, err := g.Len()
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.False(t, g.Dirty())

	pos, err := g.ILocOf("III", "A")
	require.NoError(t, err)
	require.Equal(t, 4, pos)

	loc, err := g.LocToILoc(hloc.New("III"))
	require.NoError(t, err)
	require.Equal(t, []int{4, 5}, loc.Ints())

	ok, err := g.Contains([]types.Label{"II", "B"})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIndexHierarchyGO_FailedMergeStaysDirty(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows())
	require.NoError(t, err)

	g.Append([]types.Label{"I", "A"})
	_, err = g.Len()
	require.ErrorIs(t, err, types.ErrDuplicateLabel)

	// Every read reports the same failure until the appends are dropped.
	require.True(t, g.Dirty())
	_, err = g.Flat()
	require.ErrorIs(t, err, types.ErrDuplicateLabel)
	_, err = g.Names()
	require.Error(t, err)

	g.Discard()
	require.False(t, g.Dirty())
	n, err := g.Len()
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestIndexHierarchyGO_DepthMismatch(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows())
	require.NoError(t, err)

	g.Append([]types.Label{"III", "A", 1})
	_, err = g.Depth()
	require.ErrorIs(t, err, types.ErrDepthMismatch)
}

func TestIndexHierarchyGO_NonContiguousAppend(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows())
	require.NoError(t, err)

	g.Append([]types.Label{"I", "C"})
	_, err = g.Len()
	require.ErrorIs(t, err, types.ErrNotContiguous)
}

func TestIndexHierarchyGO_EmptyStart(t *testing.T) {
	g := mustLabels(t, nil).ToGO()
	g.Append([]types.Label{"a", 1, "x"})
	g.Append([]types.Label{"a", 2, "x"})

	depth, err := g.Depth()
	require.NoError(t, err)
	require.Equal(t, 3, depth)

	flat, err := g.Flat()
	require.NoError(t, err)
	require.Equal(t, rows{{"a", 1, "x"}, {"a", 2, "x"}}, flat)
}

func TestIndexHierarchyGO_Extend(t *testing.T) {
	g, err := hier.FromLabelsGO(rows{{"a", 1}})
	require.NoError(t, err)

	g.Extend(mustLabels(t, rows{{"a", 2}, {"b", 1}}))
	g.Extend(mustLabels(t, rows{{"c", 1}}))

	flat, err := g.Flat()
	require.NoError(t, err)
	require.Equal(t, rows{{"a", 1}, {"a", 2}, {"b", 1}, {"c", 1}}, flat)

	vals, err := g.ValuesAtDepth(0)
	require.NoError(t, err)
	require.Equal(t, []types.Label{"a", "a", "b", "c"}, vals)
}

func TestIndexHierarchyGO_SnapshotIsImmutable(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows())
	require.NoError(t, err)

	snap, err := g.Snapshot()
	require.NoError(t, err)
	g.Append([]types.Label{"III", "A"})
	_, err = g.Len()
	require.NoError(t, err)

	require.Equal(t, 4, snap.Len())
	require.False(t, snap.Contains([]types.Label{"III", "A"}))
}

func TestIndexHierarchyGO_Copy(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows(), hier.WithName("g"))
	require.NoError(t, err)
	g.Append([]types.Label{"III", "A"})

	c := g.Copy()
	c.Append([]types.Label{"III", "B"})
	require.Equal(t, "g", c.Name())

	n, err := g.Len()
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = c.Len()
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestIndexHierarchyGO_FromIndexItems(t *testing.T) {
	dates, err := index.DateRange("2000-01-01", "2000-01-02", nil)
	require.NoError(t, err)
	h, err := hier.FromIndexItems(
		[]types.Label{"a", "b"},
		[]index.Index{index.MustLabels(1, 2), dates},
	)
	require.NoError(t, err)

	g := h.ToGO()
	g.Append([]types.Label{"c", 1})

	n, err := g.Len()
	require.NoError(t, err)
	require.Equal(t, 5, n)

	pos, err := g.ILocOf("b", time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 3, pos)
}

func TestIndexHierarchyGO_Transforms(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows())
	require.NoError(t, err)
	g.Append([]types.Label{"III", "A"})

	renamed, err := g.Rename("r")
	require.NoError(t, err)
	require.Equal(t, "r", renamed.Name())

	re, err := g.Rehierarch([]int{1, 0})
	require.NoError(t, err)
	flat, err := re.Flat()
	require.NoError(t, err)
	require.Equal(t, rows{{"A", "I"}, {"A", "II"}, {"A", "III"}, {"B", "I"}, {"B", "II"}}, flat)

	added, err := g.AddLevel(0)
	require.NoError(t, err)
	depth, err := added.Depth()
	require.NoError(t, err)
	require.Equal(t, 3, depth)

	dropped, err := added.DropLevel(0)
	require.NoError(t, err)
	flat, err = dropped.Flat()
	require.NoError(t, err)
	require.Len(t, flat, 5)

	m := hier.NewLabelMap()
	require.NoError(t, m.Set([]types.Label{"III", "A"}, []types.Label{"III", "Z"}))
	rel, err := g.Relabel(m)
	require.NoError(t, err)
	ok, err := rel.Contains([]types.Label{"III", "Z"})
	require.NoError(t, err)
	require.True(t, ok)

	u, err := g.Union(mustLabels(t, rows{{"IV", "A"}}))
	require.NoError(t, err)
	n, err := u.Len()
	require.NoError(t, err)
	require.Equal(t, 6, n)

	// Transforms leave the source growable.
	g.Append([]types.Label{"III", "B"})
	n, err = g.Len()
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestIndexHierarchyGO_SetOpsAndReaders(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows())
	require.NoError(t, err)
	g.Append([]types.Label{"III", "A"})

	inter, err := g.Intersection(mustLabels(t, rows{{"III", "A"}, {"I", "A"}, {"IV", "A"}}))
	require.NoError(t, err)
	flat, err := inter.Flat()
	require.NoError(t, err)
	require.Equal(t, rows{{"I", "A"}, {"III", "A"}}, flat)

	diff, err := g.Difference(mustLabels(t, rows{{"I", "A"}, {"III", "A"}}))
	require.NoError(t, err)
	flat, err = diff.Flat()
	require.NoError(t, err)
	require.Equal(t, rows{{"I", "B"}, {"II", "A"}, {"II", "B"}}, flat)

	added, err := g.AddLevel("x")
	require.NoError(t, err)
	dropped, err := added.DropLevels(1)
	require.NoError(t, err)
	flat, err = dropped.Flat()
	require.NoError(t, err)
	require.Equal(t, rows{{"I", "A"}, {"I", "B"}, {"II", "A"}, {"II", "B"}, {"III", "A"}}, flat)

	seq, err := g.All()
	require.NoError(t, err)
	var seen rows
	for pos, row := range seq {
		require.Equal(t, len(seen), pos)
		seen = append(seen, row)
	}
	require.Len(t, seen, 5)
	require.Equal(t, []types.Label{"III", "A"}, seen[4])

	mask, err := g.IsIn(rows{{"III", "A"}, {"I", "B"}, {"IV", "A"}})
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false, false, true}, mask)

	positions, err := g.LocsToILocs(rows{{"III", "A"}, {"I", "A"}})
	require.NoError(t, err)
	require.Equal(t, []int{4, 0}, positions)

	_, err = g.LocsToILocs(rows{{"IV", "A"}})
	require.True(t, types.IsKind(err, types.ErrKindLookup))
}

func TestIndexHierarchyGO_ReadersReportFailedMerge(t *testing.T) {
	g, err := hier.FromLabelsGO(fourRows())
	require.NoError(t, err)
	g.Append([]types.Label{"I", "A"})

	_, err = g.All()
	require.ErrorIs(t, err, types.ErrDuplicateLabel)
	_, err = g.IsIn(rows{{"I", "A"}})
	require.ErrorIs(t, err, types.ErrDuplicateLabel)
	_, err = g.LocsToILocs(rows{{"I", "A"}})
	require.ErrorIs(t, err, types.ErrDuplicateLabel)
	_, err = g.Intersection(mustLabels(t, rows{{"I", "A"}}))
	require.ErrorIs(t, err, types.ErrDuplicateLabel)
	_, err = g.Difference(mustLabels(t, rows{{"I", "A"}}))
	require.ErrorIs(t, err, types.ErrDuplicateLabel)
	_, err = g.DropLevels(1)
	require.ErrorIs(t, err, types.ErrDuplicateLabel)
}

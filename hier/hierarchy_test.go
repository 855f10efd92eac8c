package hier_test

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hierkit/hier"
	"github.com/joshuapare/hierkit/hier/hloc"
	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/hier/walker"
	"github.com/joshuapare/hierkit/internal/testutil"
	"github.com/joshuapare/hierkit/pkg/types"
)

type rows = [][]types.Label

func requireRows(t *testing.T, want rows, h *hier.IndexHierarchy) {
	t.Helper()
	if diff := cmp.Diff(want, h.Flat()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func mustLabels(t *testing.T, r rows, opts ...hier.Option) *hier.IndexHierarchy {
	t.Helper()
	h, err := hier.FromLabels(r, opts...)
	require.NoError(t, err)
	return h
}

func fourRows() rows {
	return rows{{"I", "A"}, {"I", "B"}, {"II", "A"}, {"II", "B"}}
}

// =============================================================================
// Construction and lookup
// =============================================================================

func TestIndexHierarchy_LocToILoc_FullKey(t *testing.T) {
	h := mustLabels(t, rows{{"I", "A"}, {"I", "B"}, {"II", "B"}, {"III", "B"}, {"III", "A"}})
	require.Equal(t, 2, h.Depth())
	require.Equal(t, 5, h.Len())

	loc, err := h.LocToILoc(hloc.Key("II", "B"))
	require.NoError(t, err)
	require.Equal(t, hloc.ScalarOf(2), loc)
}

func TestFromLabels_RepeatedRow(t *testing.T) {
	_, err := hier.FromLabels(rows{{"I", "A"}, {"I", "B"}, {"II", "B"}, {"III", "B"}, {"III", "B"}})
	require.True(t, types.IsKind(err, types.ErrKindConstruction))
	require.ErrorIs(t, err, types.ErrDuplicateLabel)
}

func TestFromProductLabels_TwoDepths(t *testing.T) {
	h, err := hier.FromProductLabels(rows{{"I", "II"}, {"A", "B"}})
	require.NoError(t, err)
	require.Equal(t, 4, h.Len())
	requireRows(t, fourRows(), h)
}

func TestIndexHierarchy_LocToILoc_OuterWildcard(t *testing.T) {
	h, err := hier.FromTree(testutil.RomanLetters())
	require.NoError(t, err)

	loc, err := h.LocToILoc(hloc.New(hloc.All, "A"))
	require.NoError(t, err)
	require.Equal(t, hloc.Positions, loc.Shape)
	require.Equal(t, []int{0, 1, 4, 5}, loc.Ints())
}

func TestIndexHierarchy_Rehierarch_SwapDepths(t *testing.T) {
	h := mustLabels(t, fourRows())
	r, err := h.Rehierarch([]int{1, 0})
	require.NoError(t, err)
	requireRows(t, rows{{"A", "I"}, {"A", "II"}, {"B", "I"}, {"B", "II"}}, r)
}

// =============================================================================
// Invariants across fixtures
// =============================================================================

func fixtureHierarchies(t *testing.T) map[string]*hier.IndexHierarchy {
	t.Helper()
	tr, err := hier.FromTree(testutil.RomanLetters())
	require.NoError(t, err)
	dates, err := hier.FromYAML(testutil.ReadFixture(t, testutil.TreeYAMLDates))
	require.NoError(t, err)
	r, err := index.NewRange(0, 5, 1, nil)
	require.NoError(t, err)
	prod, err := hier.FromProduct([]index.Index{index.MustLabels("x", "y"), r, index.MustLabels(true, false)})
	require.NoError(t, err)
	return map[string]*hier.IndexHierarchy{
		"labels":  mustLabels(t, rows{{"I", "A"}, {"I", "B"}, {"II", "B"}, {"III", "B"}, {"III", "A"}}),
		"tree":    tr,
		"dates":   dates,
		"product": prod,
		"depth1":  mustLabels(t, rows{{3}, {1}, {2}}),
	}
}

func TestIndexHierarchy_ILocOf_EveryPosition(t *testing.T) {
	for name, h := range fixtureHierarchies(t) {
		t.Run(name, func(t *testing.T) {
			for want, row := range h.All() {
				got, err := h.ILocOf(row...)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		})
	}
}

func TestIndexHierarchy_FlatRebuildsEqual(t *testing.T) {
	for name, h := range fixtureHierarchies(t) {
		t.Run(name, func(t *testing.T) {
			again, err := hier.FromLabels(h.Flat())
			require.NoError(t, err)
			require.True(t, h.Equals(again))
		})
	}
}

func TestIndexHierarchy_Empty(t *testing.T) {
	h := mustLabels(t, nil)
	require.Zero(t, h.Len())
	require.Equal(t, 2, h.Depth())
	require.Empty(t, h.Flat())

	h = mustLabels(t, nil, hier.WithDepth(3))
	require.Equal(t, 3, h.Depth())

	loc, err := h.LocToILoc(hloc.New(hloc.All, hloc.All))
	require.NoError(t, err)
	require.Zero(t, loc.Len())

	_, err = h.LocToILoc(hloc.New(hloc.All, "A"))
	depth, label, ok := types.LookupDetail(err)
	require.True(t, ok)
	require.Equal(t, 1, depth)
	require.Equal(t, "A", label)

	require.False(t, h.Contains([]types.Label{"a", "b", "c"}))
}

// =============================================================================
// Accessors
// =============================================================================

func TestIndexHierarchy_LocToILoc_ListEntryMissing(t *testing.T) {
	h := mustLabels(t, fourRows())

	_, err := h.LocToILoc(hloc.New("I", hloc.List{"A", "Z"}))
	depth, label, ok := types.LookupDetail(err)
	require.True(t, ok)
	require.Equal(t, 1, depth)
	require.Equal(t, "Z", label)

	_, err = h.LocToILoc(hloc.New(hloc.List{"I", "ZZ"}, hloc.All))
	depth, label, ok = types.LookupDetail(err)
	require.True(t, ok)
	require.Equal(t, 0, depth)
	require.Equal(t, "ZZ", label)

	// Branches below a fan-out that lack a label are still dropped.
	h = mustLabels(t, rows{{"I", "A"}, {"I", "C"}, {"II", "A"}})
	loc, err := h.LocToILoc(hloc.New(hloc.All, "C"))
	require.NoError(t, err)
	require.Equal(t, []int{1}, loc.Ints())
}

func TestIndexHierarchy_LocSpan(t *testing.T) {
	h := mustLabels(t, rows{{"I", "A"}, {"I", "B"}, {"II", "B"}, {"III", "B"}, {"III", "A"}})

	loc, err := h.LocSpan([]types.Label{"I", "B"}, []types.Label{"III", "B"})
	require.NoError(t, err)
	require.Equal(t, hloc.RangeOf(1, 4), loc)

	loc, err = h.LocSpan([]types.Label{"II", "B"}, []types.Label{"II", "B"})
	require.NoError(t, err)
	require.Equal(t, []int{2}, loc.Ints())

	loc, err = h.LocSpan([]types.Label{"III", "A"}, []types.Label{"I", "A"})
	require.NoError(t, err)
	require.Zero(t, loc.Len())

	_, err = h.LocSpan([]types.Label{"I", "A"}, []types.Label{"IV", "A"})
	require.True(t, types.IsKind(err, types.ErrKindLookup))

	_, err = h.LocSpan([]types.Label{"I"}, []types.Label{"II", "B"})
	require.ErrorIs(t, err, types.ErrBadSelector)
}

func TestIndexHierarchy_LocMask(t *testing.T) {
	h := mustLabels(t, fourRows())

	loc, err := h.LocMask([]bool{true, false, false, true})
	require.NoError(t, err)
	require.Equal(t, hloc.PositionsOf([]int{0, 3}), loc)

	sub, err := h.ExtractILoc(loc)
	require.NoError(t, err)
	requireRows(t, rows{{"I", "A"}, {"II", "B"}}, sub)

	loc, err = h.LocMask(h.IsIn(rows{{"II", "A"}}))
	require.NoError(t, err)
	require.Equal(t, []int{2}, loc.Ints())

	_, err = h.LocMask([]bool{true})
	require.ErrorIs(t, err, types.ErrInvalidArgument)
	require.True(t, types.IsKind(err, types.ErrKindUsage))
}

func TestIndexHierarchy_TimeLabelsAcrossZones(t *testing.T) {
	utc := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	shifted := utc.In(time.FixedZone("x", 3600))

	_, err := hier.FromLabels(rows{{"a", utc}, {"a", shifted}})
	require.ErrorIs(t, err, types.ErrDuplicateLabel)

	h := mustLabels(t, rows{{utc, 1}, {"b", 1}, {shifted, 2}}, hier.WithReorder())
	require.Equal(t, 3, h.Len())
	widths, err := h.LabelWidthsAtDepth(0)
	require.NoError(t, err)
	require.Len(t, widths, 2)

	pos, err := h.ILocOf(shifted, 2)
	require.NoError(t, err)
	require.Equal(t, 1, pos)
	require.True(t, h.Contains([]types.Label{shifted, 1}))
}

func TestIndexHierarchy_LocToILoc_Errors(t *testing.T) {
	h := mustLabels(t, fourRows())

	_, err := h.LocToILoc(hloc.New("III"))
	require.ErrorIs(t, err, types.ErrNotFound)

	_, err = h.LocToILoc(hloc.New("I", "A", 1))
	require.ErrorIs(t, err, types.ErrBadSelector)

	_, err = h.ILocOf("I")
	require.ErrorIs(t, err, types.ErrBadSelector)
}

func TestIndexHierarchy_Contains(t *testing.T) {
	h := mustLabels(t, rows{{"I", "A"}, {"I", "B"}})
	require.True(t, h.Contains([]types.Label{"I", "A"}))
	require.False(t, h.Contains([]types.Label{"I", "C"}))
	require.False(t, h.Contains([]types.Label{"I"}))
	require.False(t, h.Contains([]types.Label{"I", []int{1}}))

	for _, row := range h.All() {
		require.True(t, h.Contains(row))
	}
}

func TestIndexHierarchy_IsIn(t *testing.T) {
	h, err := hier.FromProductLabels(rows{{1, 2}, {"a", "b"}, {2, 5}})
	require.NoError(t, err)

	got := h.IsIn(rows{{1, "a", 5}, {2, "b", 2}, {9, "z", 0}, {1}})
	require.Equal(t, []bool{false, true, false, false, false, false, true, false}, got)

	all := h.IsIn(h.Flat())
	require.NotContains(t, all, false)
}

func TestIndexHierarchy_ValuesAtDepth(t *testing.T) {
	h, err := hier.FromProductLabels(rows{{1, 2}, {100, 200}, {"2020-01", "2020-03"}})
	require.NoError(t, err)

	vals, err := h.ValuesAtDepth(1)
	require.NoError(t, err)
	require.Equal(t, []types.Label{100, 100, 200, 200, 100, 100, 200, 200}, vals)

	pairs, err := h.ValuesAtDepths(2, 0)
	require.NoError(t, err)
	require.Len(t, pairs, 8)
	require.Equal(t, []types.Label{"2020-03", 1}, pairs[1])

	_, err = h.ValuesAtDepth(3)
	require.ErrorIs(t, err, types.ErrDepthRange)
	_, err = h.ValuesAtDepths(0, -1)
	require.ErrorIs(t, err, types.ErrDepthRange)
}

func TestIndexHierarchy_LabelWidthsAtDepth(t *testing.T) {
	dates, err := index.DateRange("2019-01-05", "2019-01-08", "b")
	require.NoError(t, err)
	h, err := hier.FromProduct([]index.Index{
		index.MustLabels("A", "B"), dates, index.MustLabels(1, 2),
	})
	require.NoError(t, err)

	w, err := h.LabelWidthsAtDepth(0)
	require.NoError(t, err)
	require.Equal(t, []walker.Width{{Label: "A", Width: 8}, {Label: "B", Width: 8}}, w)

	w, err = h.LabelWidthsAtDepth(1)
	require.NoError(t, err)
	require.Len(t, w, 8)
	require.Equal(t, dates.Label(0), w[4].Label)
	require.Equal(t, 2, w[4].Width)

	w, err = h.LabelWidthsAtDepth(2)
	require.NoError(t, err)
	require.Len(t, w, 16)

	_, err = h.LabelWidthsAtDepth(-1)
	require.ErrorIs(t, err, types.ErrDepthRange)
}

func TestIndexHierarchy_IndexKinds(t *testing.T) {
	dates, err := index.DateRange("2019-01-05", "2019-01-08", nil)
	require.NoError(t, err)
	h, err := hier.FromProduct([]index.Index{
		index.MustLabels("A", "B"), dates, index.MustLabels(1, 2),
	})
	require.NoError(t, err)
	require.Equal(t, [][]index.Kind{{index.KindLabels}, {index.KindDate}, {index.KindLabels}}, h.IndexKinds())

	mixed, err := hier.FromIndexItems(
		[]types.Label{"a", "b"},
		[]index.Index{index.MustLabels(1), dates},
	)
	require.NoError(t, err)
	require.Equal(t, [][]index.Kind{{index.KindLabels}, {index.KindLabels, index.KindDate}}, mixed.IndexKinds())
}

func TestIndexHierarchy_Names(t *testing.T) {
	h, err := hier.FromProductLabels(rows{{"a", "b"}, {"x", "y"}}, hier.WithName("q"))
	require.NoError(t, err)
	require.Equal(t, "q", h.Name())
	require.Equal(t, []string{"__index0__", "__index1__"}, h.Names())

	require.Equal(t, []string{"a", "b"}, h.Rename([]string{"a", "b"}).Names())
	// A name of the wrong size falls back to the generic names.
	require.Equal(t, []string{"__index0__", "__index1__"}, h.Rename([]string{"a", "b", "c"}).Names())

	one := mustLabels(t, rows{{1}, {2}}, hier.WithName("n"))
	require.Equal(t, []string{"n"}, one.Names())

	named, err := hier.FromProduct([]index.Index{
		mustNamed(t, "a", "A", "B"), mustNamed(t, "b", 1, 2),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, named.Names())
}

func mustNamed(t *testing.T, name types.Label, labels ...types.Label) index.Index {
	t.Helper()
	idx, err := index.NewLabels(labels, name)
	require.NoError(t, err)
	return idx
}

func TestIndexHierarchy_Iterators(t *testing.T) {
	h := mustLabels(t, rows{{"a", 1}, {"a", 2}, {"b", 1}, {"b", 2}})

	rev := slices.Collect(h.Reversed())
	require.Equal(t, rows{{"b", 2}, {"b", 1}, {"a", 2}, {"a", 1}}, rev)

	// Yielded rows are copies.
	for _, row := range h.All() {
		row[0] = "z"
	}
	requireRows(t, rows{{"a", 1}, {"a", 2}, {"b", 1}, {"b", 2}}, h)

	row, err := h.LabelAt(2)
	require.NoError(t, err)
	require.Equal(t, []types.Label{"b", 1}, row)
	_, err = h.LabelAt(4)
	require.Error(t, err)
}

func TestIndexHierarchy_Stats(t *testing.T) {
	h, err := hier.FromProductLabels(rows{{"a", "b", "c"}, {1, 2}})
	require.NoError(t, err)
	s := h.Stats()
	require.Equal(t, 2, s.Depth)
	require.Equal(t, 6, s.Positions)
	require.Equal(t, []int{1, 3}, s.Nodes)
	require.Contains(t, h.String(), "depth=2")
}

func TestIndexHierarchy_ConcurrentReads(t *testing.T) {
	h, err := hier.FromTree(testutil.RomanLetters())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pos, row := range h.All() {
				got, err := h.ILocOf(row...)
				if err != nil {
					errs <- err
					return
				}
				if got != pos {
					errs <- types.Usage(types.ErrInvalidArgument, "got %d want %d", got, pos)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestIndexHierarchy_LocsToILocs(t *testing.T) {
	h := mustLabels(t, fourRows())

	got, err := h.LocsToILocs(rows{{"II", "B"}, {"I", "A"}, {"II", "B"}})
	require.NoError(t, err)
	require.Equal(t, []int{3, 0, 3}, got)

	_, err = h.LocsToILocs(rows{{"I", "A"}, {"I", "C"}})
	depth, label, ok := types.LookupDetail(err)
	require.True(t, ok)
	require.Equal(t, 1, depth)
	require.Equal(t, "C", label)
}

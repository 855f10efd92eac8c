package hier

import (
	"github.com/cevaris/ordered_map"

	"github.com/joshuapare/hierkit/pkg/types"
)

// LabelMap maps compound labels to replacement compound labels for Relabel.
// Entries keep insertion order.
//
// NOT thread-safe.
type LabelMap struct {
	m *ordered_map.OrderedMap // RowKey -> labelPair
}

type labelPair struct {
	from, to []types.Label
}

// NewLabelMap returns an empty LabelMap.
func NewLabelMap() *LabelMap {
	return &LabelMap{m: ordered_map.NewOrderedMap()}
}

// Set maps from to to. Both rows are copied.
func (m *LabelMap) Set(from, to []types.Label) error {
	if err := types.ValidateRow(from); err != nil {
		return err
	}
	if err := types.ValidateRow(to); err != nil {
		return err
	}
	m.m.Set(types.RowKey(from), labelPair{from: types.CloneRow(from), to: types.CloneRow(to)})
	return nil
}

// Get returns the replacement for from.
func (m *LabelMap) Get(from []types.Label) ([]types.Label, bool) {
	v, ok := m.m.Get(types.RowKey(from))
	if !ok {
		return nil, false
	}
	return types.CloneRow(v.(labelPair).to), true
}

// Len returns the number of entries.
func (m *LabelMap) Len() int { return m.m.Len() }

// Each calls fn for every entry in insertion order.
func (m *LabelMap) Each(fn func(from, to []types.Label)) {
	iter := m.m.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		p := kv.Value.(labelPair)
		fn(types.CloneRow(p.from), types.CloneRow(p.to))
	}
}

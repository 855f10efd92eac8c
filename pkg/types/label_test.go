package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestValidateLabel(t *testing.T) {
	require.NoError(t, ValidateLabel("a"))
	require.NoError(t, ValidateLabel(3))
	require.NoError(t, ValidateLabel(nil))
	require.NoError(t, ValidateLabel(time.Now()))

	err := ValidateLabel([]int{1})
	require.ErrorIs(t, err, ErrUnsupportedLabel)

	require.ErrorIs(t, ValidateRow([]Label{"a", map[string]int{}}), ErrUnsupportedLabel)
}

func TestRowKey_DistinguishesTypes(t *testing.T) {
	assert.NotEqual(t, RowKey([]Label{"1"}), RowKey([]Label{1}))
	assert.NotEqual(t, RowKey([]Label{1}), RowKey([]Label{int64(1)}))
	assert.NotEqual(t, RowKey([]Label{"a", "b"}), RowKey([]Label{"a\x1fb"}))
	assert.Equal(t, RowKey([]Label{"I", 2}), RowKey([]Label{"I", 2}))
}

func TestRowKey_TimeZones(t *testing.T) {
	d1 := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.In(time.FixedZone("x", 3600))

	assert.Equal(t, RowKey([]Label{"a", d1}), RowKey([]Label{"a", d2}))
	assert.NotEqual(t, RowKey([]Label{"a", d1}), RowKey([]Label{"a", d1.Add(time.Nanosecond)}))
}

func TestNormalizeLabel(t *testing.T) {
	d1 := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.In(time.FixedZone("x", 3600))

	assert.Equal(t, NormalizeLabel(d1), NormalizeLabel(d2))
	assert.Equal(t, d1, NormalizeLabel(d2))
	assert.Equal(t, "a", NormalizeLabel("a"))
	assert.Equal(t, 3, NormalizeLabel(3))
}

func TestFormatRow(t *testing.T) {
	assert.Equal(t, `("I", 2, <nil>)`, FormatRow([]Label{"I", 2, nil}))
}

func TestRowsEqual(t *testing.T) {
	d1 := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.In(time.FixedZone("x", 3600))

	assert.True(t, RowsEqual([]Label{"a", d1}, []Label{"a", d2}))
	assert.False(t, RowsEqual([]Label{"a"}, []Label{"a", "b"}))
	assert.False(t, RowsEqual([]Label{1}, []Label{int64(1)}))
}

func TestComparer(t *testing.T) {
	c := NewComparer(language.Und)

	assert.Equal(t, -1, c.Compare(1, 2))
	assert.Equal(t, 0, c.Compare(2, 2.0))
	assert.Equal(t, 1, c.Compare(int64(10), 9.5))
	assert.Equal(t, -1, c.Compare("a", "B"))
	assert.Equal(t, -1, c.Compare("item2", "item10"))
	assert.Equal(t, -1, c.Compare(5, "5"))
	assert.Equal(t, -1, c.Compare(nil, false))
	assert.Equal(t, 1, c.Compare(true, false))

	d1 := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, -1, c.Compare(d1, d1.AddDate(0, 0, 1)))

	assert.Equal(t, -1, c.CompareRows([]Label{"I", 1}, []Label{"I", 2}))
	assert.Equal(t, 1, c.CompareRows([]Label{"II", 1}, []Label{"I", 2}))
	assert.Equal(t, 0, c.CompareRows([]Label{"I", 1}, []Label{"I", 1}))
}

package hloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hierkit/pkg/types"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want TermKind
	}{
		{"label", "A", TermLabel},
		{"int label", 3, TermLabel},
		{"nil label", nil, TermLabel},
		{"list", List{"A", "B"}, TermList},
		{"span", Between("a", "c"), TermSpan},
		{"open span", From(1), TermSpan},
		{"all", All, TermAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindOf(tt.term)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestKindOf_Errors(t *testing.T) {
	for _, term := range []Term{List{}, []string{"a"}, &Span{}, List{[]int{1}}, map[string]int{}} {
		_, err := KindOf(term)
		require.ErrorIs(t, err, types.ErrBadSelector, "term %#v", term)
		require.True(t, types.IsKind(err, types.ErrKindUsage))
	}
}

func TestHLoc_Validate(t *testing.T) {
	require.NoError(t, New("a", All).Validate(3))
	require.ErrorIs(t, New("a", "b", "c").Validate(2), types.ErrBadSelector)
	require.ErrorIs(t, New().Validate(2), types.ErrBadSelector)
	require.ErrorIs(t, New(List{}).Validate(2), types.ErrBadSelector)
}

func TestHLoc_Shapes(t *testing.T) {
	assert.True(t, Key("I", "A").IsKey(2))
	assert.False(t, Key("I").IsKey(2))
	assert.False(t, New("I", All).IsKey(2))

	assert.True(t, Key("I").IsPrefix())
	assert.True(t, New("I", All, All).IsPrefix())
	assert.True(t, New(All).IsPrefix())
	assert.False(t, New(All, "A").IsPrefix())
	assert.False(t, New("I", List{"A"}).IsPrefix())
	assert.False(t, New(Between("a", "b")).IsPrefix())
}

func TestHLoc_String(t *testing.T) {
	h := New("I", All, List{"a", 1}, From(2), To("z"))
	assert.Equal(t, `HLoc["I", :, ["a" 1], 2:, :"z"]`, h.String())
}

func TestILoc(t *testing.T) {
	assert.Equal(t, []int{4}, ScalarOf(4).Ints())
	assert.Equal(t, []int{7, 8, 9}, RangeOf(7, 10).Ints())
	assert.Equal(t, 3, RangeOf(7, 10).Len())
	assert.Equal(t, "[7:10)", RangeOf(7, 10).String())

	p := PositionsOf([]int{0, 1, 5})
	ints := p.Ints()
	ints[0] = 99
	assert.Equal(t, 0, p.Positions[0], "Ints must copy")
	assert.Equal(t, "[0 1 5]", p.String())
	assert.Equal(t, "range", Range.String())
}

func TestParse(t *testing.T) {
	h, err := Parse([]string{"'I'", "*", "'A','C'", "'2018-01-03':", ":3", "1:2", "7"})
	require.NoError(t, err)
	require.Equal(t, HLoc{
		"I",
		All,
		List{"A", "C"},
		From("2018-01-03"),
		To(3),
		Between(1, 2),
		7,
	}, h)

	h, err = Parse([]string{":"})
	require.NoError(t, err)
	require.Equal(t, HLoc{All}, h)

	_, err = Parse([]string{"a:b:c"})
	require.ErrorIs(t, err, types.ErrBadSelector)

	_, err = Parse([]string{"'open"})
	require.ErrorIs(t, err, types.ErrBadSelector)
}

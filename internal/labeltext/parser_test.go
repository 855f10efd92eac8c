package labeltext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	xunicode "golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/hierkit/pkg/types"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want types.Label
	}{
		{"'I'", "I"},
		{`"two words"`, "two words"},
		{`'it\'s'`, "it's"},
		{"0", 0},
		{"-12", -12},
		{"1.5", 1.5},
		{"True", true},
		{"False", false},
		{"None", nil},
		{"bare", "bare"},
		{"'42'", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLiteral(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseLiteral_Errors(t *testing.T) {
	_, err := ParseLiteral("")
	require.Error(t, err)

	_, err = ParseLiteral("'open")
	require.ErrorIs(t, err, errUnterminatedQuote)

	_, err = ParseLiteral("'a'b")
	require.Error(t, err)
}

func TestParseRow(t *testing.T) {
	row, err := ParseRow("'I' 'A' 0")
	require.NoError(t, err)
	require.Equal(t, []types.Label{"I", "A", 0}, row)

	row, err = ParseRow("  ['II' 'A 1'   0]  ")
	require.NoError(t, err)
	require.Equal(t, []types.Label{"II", "A 1", 0}, row)

	_, err = ParseRow("['I' 'A'")
	require.ErrorIs(t, err, errUnbalancedRow)
}

func TestSplit(t *testing.T) {
	got, err := Split("'a,b',c,3", ',')
	require.NoError(t, err)
	require.Equal(t, []string{"'a,b'", "c", "3"}, got)

	got, err = Split("'x':", ':')
	require.NoError(t, err)
	require.Equal(t, []string{"'x'", ""}, got)

	_, err = Split("'a", ',')
	require.ErrorIs(t, err, errUnterminatedQuote)
}

func TestReadRows(t *testing.T) {
	src := `# labels
'I' 'A' 1

'I' 'B' 2
`
	rows, err := ReadRows(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, [][]types.Label{{"I", "A", 1}, {"I", "B", 2}}, rows)

	_, err = ReadRows(strings.NewReader("'ok'\n'bad\n"))
	require.ErrorContains(t, err, "line 2")
}

func TestReadRows_UTF16(t *testing.T) {
	enc := xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("'Ä' 1\n'Ö' 2\n"))
	require.NoError(t, err)

	rows, err := ReadRows(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, [][]types.Label{{"Ä", 1}, {"Ö", 2}}, rows)
}

package labeltext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/hierkit/pkg/types"
)

var (
	errUnterminatedQuote = errors.New("labeltext: unterminated quote")
	errUnbalancedRow     = errors.New("labeltext: unbalanced row brackets")
)

// ParseLiteral converts one token to a label:
//   - 'x' or "x" is a string (backslash escapes the next rune)
//   - integers are int, other numerals float64
//   - True/False are bools, None is nil
//   - anything else is the bare string
func ParseLiteral(tok string) (types.Label, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, fmt.Errorf("labeltext: empty literal")
	}
	if q := rune(tok[0]); q == SingleQuote || q == DoubleQuote {
		s, rest, err := unquote(tok)
		if err != nil {
			return nil, err
		}
		if rest != "" {
			return nil, fmt.Errorf("labeltext: trailing text after quoted literal %q", tok)
		}
		return s, nil
	}
	switch tok {
	case TrueLiteral:
		return true, nil
	case FalseLiteral:
		return false, nil
	case NoneLiteral:
		return nil, nil
	}
	if i, err := strconv.Atoi(tok); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f, nil
	}
	return tok, nil
}

// unquote reads a quoted literal at the start of s and returns its content
// and the remainder after the closing quote.
func unquote(s string) (string, string, error) {
	q := rune(s[0])
	var b strings.Builder
	escaped := false
	for i, r := range s[1:] {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == Backslash:
			escaped = true
		case r == q:
			return b.String(), s[i+2:], nil
		default:
			b.WriteRune(r)
		}
	}
	return "", "", errUnterminatedQuote
}

// Split splits s on sep, ignoring separators inside quoted literals. When sep
// is a space, runs of any whitespace separate fields and empty fields are
// dropped.
func Split(s string, sep rune) ([]string, error) {
	var (
		fields []string
		cur    strings.Builder
		quote  rune
		esc    bool
	)
	ws := sep == ' '
	flush := func() {
		if ws && cur.Len() == 0 {
			return
		}
		fields = append(fields, cur.String())
		cur.Reset()
	}
	for _, r := range s {
		switch {
		case quote != 0:
			cur.WriteRune(r)
			if esc {
				esc = false
			} else if r == Backslash {
				esc = true
			} else if r == quote {
				quote = 0
			}
		case r == SingleQuote || r == DoubleQuote:
			quote = r
			cur.WriteRune(r)
		case ws && unicode.IsSpace(r), !ws && r == sep:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	flush()
	return fields, nil
}

// ParseRow parses one whitespace-delimited row of literals, optionally
// wrapped in brackets: 'I' 'A' 0 or ['I' 'A' 0].
func ParseRow(line string) ([]types.Label, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, string(RowOpen)) {
		if !strings.HasSuffix(line, string(RowClose)) {
			return nil, errUnbalancedRow
		}
		line = strings.TrimSpace(line[1 : len(line)-1])
	}
	toks, err := Split(line, ' ')
	if err != nil {
		return nil, err
	}
	row := make([]types.Label, 0, len(toks))
	for _, tok := range toks {
		l, err := ParseLiteral(tok)
		if err != nil {
			return nil, err
		}
		row = append(row, l)
	}
	return row, nil
}

// NewReader wraps r with a decoder honoring a UTF-8 or UTF-16 byte-order mark
// and defaulting to UTF-8.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder()))
}

// ReadRows reads one row per line. Blank lines and lines starting with
// CommentPrefix are skipped.
func ReadRows(r io.Reader) ([][]types.Label, error) {
	scanner := bufio.NewScanner(NewReader(r))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	var rows [][]types.Label
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		row, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

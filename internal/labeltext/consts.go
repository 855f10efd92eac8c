package labeltext

const (
	// ============================================================================
	// Row Delimiters
	// ============================================================================

	// RowOpen optionally opens a row: ['I' 'A' 0]
	RowOpen = '['

	// RowClose closes a row opened with RowOpen
	RowClose = ']'

	// CommentPrefix marks a comment line in label files
	CommentPrefix = "#"

	// ============================================================================
	// Literal Tokens
	// ============================================================================

	// SingleQuote and DoubleQuote delimit string literals
	SingleQuote = '\''
	DoubleQuote = '"'

	// Backslash escapes the next rune inside a quoted literal
	Backslash = '\\'

	// TrueLiteral and FalseLiteral are the boolean literals
	TrueLiteral  = "True"
	FalseLiteral = "False"

	// NoneLiteral is the nil label
	NoneLiteral = "None"

	// ============================================================================
	// Scanner Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial line buffer for label files
	ScannerInitialBufferSize = 64 * 1024

	// ScannerMaxLineSize bounds a single label row
	ScannerMaxLineSize = 4 * 1024 * 1024
)

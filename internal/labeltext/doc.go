// Package labeltext parses textual compound labels.
//
// A row is a whitespace-delimited sequence of literals, optionally wrapped in
// brackets:
//
//	'I' 'A' 0
//	['II' 'B' 1.5]
//
// Quoted tokens are strings, numerals become int or float64, True/False are
// bools and None is nil. Bare words are strings.
//
// Label files hold one row per line; blank lines and # comments are ignored.
// Input may be UTF-8 or BOM-marked UTF-16.
package labeltext

package hloc

import (
	"fmt"
)

// Shape is the form of a resolved selector.
type Shape int

const (
	// Scalar is a single position; every depth was given one label.
	Scalar Shape = iota
	// Range is a half-open run of positions [Start, Stop).
	Range
	// Positions is an ordered list of positions in tree order.
	Positions
)

// String implements the Stringer interface for Shape.
func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Range:
		return "range"
	case Positions:
		return "positions"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ILoc is the result of resolving a selector against a hierarchy. Range is
// an optimization of Positions: both describe the same ordered positions.
type ILoc struct {
	Shape     Shape
	Pos       int   // Scalar
	Start     int   // Range
	Stop      int   // Range
	Positions []int // Positions
}

// ScalarOf returns a Scalar ILoc.
func ScalarOf(pos int) ILoc { return ILoc{Shape: Scalar, Pos: pos} }

// RangeOf returns a Range ILoc.
func RangeOf(start, stop int) ILoc { return ILoc{Shape: Range, Start: start, Stop: stop} }

// PositionsOf returns a Positions ILoc.
func PositionsOf(positions []int) ILoc { return ILoc{Shape: Positions, Positions: positions} }

// Len returns the number of selected positions.
func (l ILoc) Len() int {
	switch l.Shape {
	case Scalar:
		return 1
	case Range:
		return l.Stop - l.Start
	default:
		return len(l.Positions)
	}
}

// Ints materializes the selected positions.
func (l ILoc) Ints() []int {
	switch l.Shape {
	case Scalar:
		return []int{l.Pos}
	case Range:
		out := make([]int, 0, l.Stop-l.Start)
		for i := l.Start; i < l.Stop; i++ {
			out = append(out, i)
		}
		return out
	default:
		out := make([]int, len(l.Positions))
		copy(out, l.Positions)
		return out
	}
}

// String renders the ILoc, e.g. 3, [7:10) or [0 2 4].
func (l ILoc) String() string {
	switch l.Shape {
	case Scalar:
		return fmt.Sprint(l.Pos)
	case Range:
		return fmt.Sprintf("[%d:%d)", l.Start, l.Stop)
	default:
		return fmt.Sprint(l.Positions)
	}
}

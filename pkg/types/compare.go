package types

import (
	"cmp"
	"fmt"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Type ranks order labels of different kinds: nil < bool < numbers < times < strings < other.
const (
	rankNil = iota
	rankBool
	rankNumber
	rankTime
	rankString
	rankOther
)

// Comparer orders labels. Strings are compared with a Unicode collator, numbers
// by value across Go numeric types, times chronologically. Labels of different
// kinds order by kind.
//
// A Comparer is not safe for concurrent use; the underlying collator keeps
// scratch buffers.
type Comparer struct {
	coll *collate.Collator
}

// NewComparer returns a Comparer collating strings for tag. Use language.Und
// for the root collation order.
func NewComparer(tag language.Tag) *Comparer {
	return &Comparer{coll: collate.New(tag, collate.Numeric)}
}

// Compare returns -1, 0 or +1.
func (c *Comparer) Compare(a, b Label) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		return cmp.Compare(boolInt(a.(bool)), boolInt(b.(bool)))
	case rankNumber:
		return compareNumbers(a, b)
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time))
	case rankString:
		if r := c.coll.CompareString(a.(string), b.(string)); r != 0 {
			return r
		}
		return cmp.Compare(a.(string), b.(string))
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

// CompareRows orders compound labels lexicographically by depth.
func (c *Comparer) CompareRows(a, b []Label) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if r := c.Compare(a[i], b[i]); r != 0 {
			return r
		}
	}
	return cmp.Compare(len(a), len(b))
}

func rank(l Label) int {
	switch l.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return rankNumber
	case time.Time:
		return rankTime
	case string:
		return rankString
	default:
		return rankOther
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareNumbers(a, b Label) int {
	ai, aInt := asInt64(a)
	bi, bInt := asInt64(b)
	if aInt && bInt {
		return cmp.Compare(ai, bi)
	}
	return cmp.Compare(asFloat64(a), asFloat64(b))
}

func asInt64(l Label) (int64, bool) {
	switch v := l.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	default:
		return 0, false
	}
}

func asFloat64(l Label) float64 {
	switch v := l.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		i, _ := asInt64(l)
		return float64(i)
	}
}

package hier

import (
	"fmt"

	"github.com/joshuapare/hierkit/pkg/types"
)

// Names returns a display name per depth.
//
// A name that is a []string or []types.Label of exactly Depth() elements
// names each depth. A depth-1 hierarchy with any other non-nil name uses it
// for its single depth. Otherwise depths are named __index0__, __index1__
// and so on.
func (h *IndexHierarchy) Names() []string {
	switch v := h.name.(type) {
	case []string:
		if len(v) == h.depth {
			out := make([]string, len(v))
			copy(out, v)
			return out
		}
	case []types.Label:
		if len(v) == h.depth {
			out := make([]string, len(v))
			for i, l := range v {
				out[i] = fmt.Sprint(l)
			}
			return out
		}
	default:
		if h.depth == 1 && h.name != nil {
			return []string{fmt.Sprint(h.name)}
		}
	}
	out := make([]string, h.depth)
	for i := range out {
		out[i] = fmt.Sprintf("__index%d__", i)
	}
	return out
}

// perDepthName returns the name as a per-depth slice when it has one entry
// per depth.
func perDepthName(name any, depth int) ([]any, bool) {
	switch v := name.(type) {
	case []string:
		if len(v) != depth {
			return nil, false
		}
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []types.Label:
		if len(v) != depth {
			return nil, false
		}
		return types.CloneRow(v), true
	}
	return nil, false
}

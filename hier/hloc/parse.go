package hloc

import (
	"strings"

	"github.com/joshuapare/hierkit/internal/labeltext"
	"github.com/joshuapare/hierkit/pkg/types"
)

// Parse builds an HLoc from textual terms, one per depth:
//   - "*" or ":" is All
//   - "a:b", "a:" and ":b" are Spans
//   - "a,b,c" is a List
//   - anything else is a single label literal ('I', 3, 1.5, True)
func Parse(terms []string) (HLoc, error) {
	out := make(HLoc, 0, len(terms))
	for _, raw := range terms {
		t, err := ParseTerm(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseTerm parses a single textual term.
func ParseTerm(raw string) (Term, error) {
	s := strings.TrimSpace(raw)
	if s == "*" || s == ":" {
		return All, nil
	}

	parts, err := labeltext.Split(s, ':')
	if err != nil {
		return nil, types.Usage(types.ErrBadSelector, "term %q: %v", raw, err)
	}
	if len(parts) == 2 {
		var span Span
		if p := strings.TrimSpace(parts[0]); p != "" {
			if span.Start, err = labeltext.ParseLiteral(p); err != nil {
				return nil, types.Usage(types.ErrBadSelector, "term %q: %v", raw, err)
			}
			span.HasStart = true
		}
		if p := strings.TrimSpace(parts[1]); p != "" {
			if span.Stop, err = labeltext.ParseLiteral(p); err != nil {
				return nil, types.Usage(types.ErrBadSelector, "term %q: %v", raw, err)
			}
			span.HasStop = true
		}
		return span, nil
	}
	if len(parts) > 2 {
		return nil, types.Usage(types.ErrBadSelector, "term %q: too many ':'", raw)
	}

	items, err := labeltext.Split(s, ',')
	if err != nil {
		return nil, types.Usage(types.ErrBadSelector, "term %q: %v", raw, err)
	}
	if len(items) > 1 {
		list := make(List, 0, len(items))
		for _, it := range items {
			l, err := labeltext.ParseLiteral(it)
			if err != nil {
				return nil, types.Usage(types.ErrBadSelector, "term %q: %v", raw, err)
			}
			list = append(list, l)
		}
		return list, nil
	}

	l, err := labeltext.ParseLiteral(s)
	if err != nil {
		return nil, types.Usage(types.ErrBadSelector, "term %q: %v", raw, err)
	}
	return l, nil
}

package level

import (
	"github.com/joshuapare/hierkit/hier/hloc"
	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/pkg/types"
)

// Resolve maps a selector to flattened positions.
//
// A selector giving one label for every depth resolves to a Scalar. A run of
// single labels followed only by All resolves to the Range covering that
// subtree. Anything else resolves to Positions in tree order.
//
// Every label a term names must exist at its own depth; a List entry or Span
// bound that is missing fails with a lookup error. Below a term that fans out
// (a List, a Span or All), branches in which a later label is missing are
// dropped; if every branch fails, the first lookup error is returned.
func (l *Level) Resolve(sel hloc.HLoc) (hloc.ILoc, error) {
	depth := l.Depth()
	if err := sel.Validate(depth); err != nil {
		return hloc.ILoc{}, err
	}

	if sel.IsKey(depth) {
		pos, err := l.LeafLocToILoc(sel)
		if err != nil {
			return hloc.ILoc{}, err
		}
		return hloc.ScalarOf(pos), nil
	}

	if sel.IsPrefix() {
		node := l
		for d, term := range sel {
			if term == hloc.All {
				break
			}
			pos, err := index.Lookup(node.index, d, term)
			if err != nil {
				return hloc.ILoc{}, err
			}
			node = node.targets[pos]
		}
		return hloc.RangeOf(node.offset, node.offset+node.length), nil
	}

	positions, err := l.collect(sel, 0, nil)
	if err != nil {
		return hloc.ILoc{}, err
	}
	return hloc.PositionsOf(positions), nil
}

// LocsToILocs resolves a batch of compound keys.
func (l *Level) LocsToILocs(keys [][]types.Label) ([]int, error) {
	out := make([]int, 0, len(keys))
	for _, k := range keys {
		pos, err := l.LeafLocToILoc(k)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

func (l *Level) collect(sel hloc.HLoc, d int, out []int) ([]int, error) {
	term := hloc.All
	if d < len(sel) {
		term = sel[d]
	}
	kind, err := hloc.KindOf(term)
	if err != nil {
		return out, err
	}
	locals, err := l.localPositions(term, kind, d)
	if err != nil {
		return out, err
	}

	if l.IsLeaf() {
		for _, p := range locals {
			out = append(out, l.offset+p)
		}
		return out, nil
	}

	fanout := kind != hloc.TermLabel
	var firstErr error
	matched := false
	for _, p := range locals {
		mark := len(out)
		out, err = l.targets[p].collect(sel, d+1, out)
		if err == nil {
			matched = true
			continue
		}
		out = out[:mark]
		if !fanout || !types.IsKind(err, types.ErrKindLookup) {
			return out, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if !matched && firstErr != nil {
		return out, firstErr
	}
	return out, nil
}

// localPositions resolves one term against this node's index.
func (l *Level) localPositions(term hloc.Term, kind hloc.TermKind, d int) ([]int, error) {
	switch kind {
	case hloc.TermAll:
		out := make([]int, l.index.Len())
		for i := range out {
			out[i] = i
		}
		return out, nil

	case hloc.TermLabel:
		pos, err := index.Lookup(l.index, d, term)
		if err != nil {
			return nil, err
		}
		return []int{pos}, nil

	case hloc.TermList:
		list := term.(hloc.List)
		out := make([]int, 0, len(list))
		for _, label := range list {
			pos, err := index.Lookup(l.index, d, label)
			if err != nil {
				return nil, err
			}
			out = append(out, pos)
		}
		return out, nil

	case hloc.TermSpan:
		span := term.(hloc.Span)
		start, stop := 0, l.index.Len()-1
		if span.HasStart {
			pos, err := index.Lookup(l.index, d, span.Start)
			if err != nil {
				return nil, err
			}
			start = pos
		}
		if span.HasStop {
			pos, err := index.Lookup(l.index, d, span.Stop)
			if err != nil {
				return nil, err
			}
			stop = pos
		}
		var out []int
		for i := start; i <= stop; i++ {
			out = append(out, i)
		}
		return out, nil
	}
	return nil, types.Usage(types.ErrBadSelector, "term %v", term)
}

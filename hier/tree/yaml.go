package tree

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/hierkit/pkg/types"
)

// FromYAML decodes a YAML mapping into a Tree. Nested mappings become
// subtrees and sequences become leaves; key order is preserved. Scalars keep
// their YAML type: integers, floats, booleans, null, timestamps and strings.
//
//	I:
//	  A: [1, 2]
//	  B: [1]
//	II:
//	  A: [1]
func FromYAML(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.Usage(types.ErrInvalidArgument, "yaml: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, types.Usage(types.ErrInvalidArgument, "yaml: empty document")
	}
	return fromMapping(doc.Content[0])
}

func fromMapping(n *yaml.Node) (*Tree, error) {
	if n.Kind != yaml.MappingNode {
		return nil, yamlError(n, "expected a mapping")
	}
	t := New()
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		label, err := scalar(k)
		if err != nil {
			return nil, err
		}
		if _, dup := t.Get(label); dup {
			return nil, types.Construction(types.ErrDuplicateLabel,
				"yaml line %d: key %s", k.Line, types.FormatLabel(label))
		}
		switch v.Kind {
		case yaml.MappingNode:
			sub, err := fromMapping(v)
			if err != nil {
				return nil, err
			}
			if err := t.Set(label, sub); err != nil {
				return nil, err
			}
		case yaml.SequenceNode:
			leaf := make(Leaf, 0, len(v.Content))
			for _, item := range v.Content {
				l, err := scalar(item)
				if err != nil {
					return nil, err
				}
				leaf = append(leaf, l)
			}
			if err := t.Set(label, leaf); err != nil {
				return nil, err
			}
		default:
			return nil, yamlError(v, "expected a mapping or a sequence")
		}
	}
	return t, nil
}

// scalar decodes a scalar node by its resolved tag.
func scalar(n *yaml.Node) (types.Label, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return nil, yamlError(n, "expected a scalar label")
	}
	var err error
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err = n.Decode(&b)
		return b, wrap(n, err)
	case "!!int":
		var i int
		err = n.Decode(&i)
		return i, wrap(n, err)
	case "!!float":
		var f float64
		err = n.Decode(&f)
		return f, wrap(n, err)
	case "!!timestamp":
		var ts time.Time
		err = n.Decode(&ts)
		return ts, wrap(n, err)
	default:
		return n.Value, nil
	}
}

func wrap(n *yaml.Node, err error) error {
	if err == nil {
		return nil
	}
	return yamlError(n, err.Error())
}

func yamlError(n *yaml.Node, msg string) error {
	return types.Usage(types.ErrInvalidArgument, "%s", fmt.Sprintf("yaml line %d: %s", n.Line, msg))
}

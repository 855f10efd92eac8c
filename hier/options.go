package hier

import (
	"github.com/joshuapare/hierkit/hier/index"
	"github.com/joshuapare/hierkit/hier/level"
	"github.com/joshuapare/hierkit/pkg/types"
)

// Options configures construction of a hierarchy.
type Options struct {
	// Name is the hierarchy's name. A []string or []types.Label whose length
	// equals the depth also names each depth; see Names.
	Name any

	// ReorderForHierarchy stably groups rows by prefix before building.
	// Without it, rows not grouped by prefix are a construction error.
	ReorderForHierarchy bool

	// Continuation is a label meaning "same as the row above" in flat label
	// input. Only used when HasContinuation is set.
	Continuation    types.Label
	HasContinuation bool

	// IndexConstructors builds the index of each depth. Its length must
	// equal the depth; nil entries use index.Default.
	IndexConstructors []index.Constructor

	// Depth is the depth of an empty hierarchy. Default: 2.
	Depth int
}

// DefaultOptions returns the default construction options.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options.
type Option func(*Options)

// WithName sets the hierarchy name.
func WithName(name any) Option {
	return func(o *Options) { o.Name = name }
}

// WithReorder enables reordering of rows that are not grouped by prefix.
func WithReorder() Option {
	return func(o *Options) { o.ReorderForHierarchy = true }
}

// WithContinuation sets the continuation token of flat label input.
func WithContinuation(token types.Label) Option {
	return func(o *Options) {
		o.Continuation = token
		o.HasContinuation = true
	}
}

// WithIndexConstructors sets one index constructor per depth.
func WithIndexConstructors(ctors ...index.Constructor) Option {
	return func(o *Options) { o.IndexConstructors = ctors }
}

// WithDepth sets the depth used when the input is empty.
func WithDepth(depth int) Option {
	return func(o *Options) { o.Depth = depth }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o Options) build() level.BuildOptions {
	return level.BuildOptions{
		Depth:           o.Depth,
		Reorder:         o.ReorderForHierarchy,
		Continuation:    o.Continuation,
		HasContinuation: o.HasContinuation,
		Constructors:    o.IndexConstructors,
	}
}

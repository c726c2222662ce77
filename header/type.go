package header

import (
	"iter"
	"slices"
	"strings"
	"sync/atomic"
)

// Type describes one header representation within a type hierarchy.
//
// A hierarchy is built once with [NewRoot] and [Type.Derive] and then treated as
// read-only. Lookups are safe for concurrent use as long as nobody derives new
// types at the same time.
type Type struct {
	id     string
	kind   Kind
	list   bool
	parent *Type
	subs   []*Type
	index  atomic.Pointer[map[string]*Type]
}

// TypeOption configures a [Type].
type TypeOption func(*Type)

// WithKind sets the kind discriminant of the type.
// Types created without it get [KindExtension].
func WithKind(k Kind) TypeOption { return func(t *Type) { t.kind = k } }

// AsList marks the type as a comma separated list header,
// whose entries are parsed as separate headers.
func AsList() TypeOption { return func(t *Type) { t.list = true } }

// NewRoot creates the root of a new type hierarchy.
// The qualified identifier id is usually in the "pkg.TypeName" form.
func NewRoot(id string, opts ...TypeOption) *Type {
	t := &Type{id: id, kind: KindCustom}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Derive appends a new subtype to t and returns it.
func (t *Type) Derive(id string, opts ...TypeOption) *Type {
	sub := &Type{id: id, kind: KindExtension, parent: t}
	for _, opt := range opts {
		opt(sub)
	}
	t.subs = append(t.subs, sub)
	for p := t; p != nil; p = p.parent {
		p.index.Store(nil)
	}
	return sub
}

// ID returns the qualified identifier of the type.
func (t *Type) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// ShortID returns the identifier without its qualifier.
func (t *Type) ShortID() string {
	id := t.ID()
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// Kind returns the kind discriminant of the type.
func (t *Type) Kind() Kind {
	if t == nil {
		return KindCustom
	}
	return t.kind
}

// IsList reports whether the header is a comma separated list.
func (t *Type) IsList() bool { return t != nil && t.list }

// Parent returns the parent type or nil for a root.
func (t *Type) Parent() *Type {
	if t == nil {
		return nil
	}
	return t.parent
}

// IsRoot reports whether t is the root of its hierarchy.
func (t *Type) IsRoot() bool { return t != nil && t.parent == nil }

// Subtypes returns the direct subtypes in derivation order.
func (t *Type) Subtypes() []*Type {
	if t == nil {
		return nil
	}
	return slices.Clone(t.subs)
}

// Descendants iterates over all types below t in depth-first pre-order:
// a subtype, then its subtree, then the next subtype.
func (t *Type) Descendants() iter.Seq[*Type] {
	return func(yield func(*Type) bool) {
		t.walk(yield)
	}
}

func (t *Type) walk(yield func(*Type) bool) bool {
	if t == nil {
		return true
	}
	for _, sub := range t.subs {
		if !yield(sub) || !sub.walk(yield) {
			return false
		}
	}
	return true
}

// Name returns the canonical wire name of the type, see [TypeToName].
func (t *Type) Name() string { return TypeToName(t) }

func (t *Type) String() string { return t.ID() }

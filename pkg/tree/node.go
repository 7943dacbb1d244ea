package tree

import (
	"fmt"
	"slices"
)

// Variant identifies which shape of extra data a node carries.
type Variant int

const (
	// VariantPlain is a node with a name and children only.
	VariantPlain Variant = iota
	// VariantActionable is a node carrying a control (a labelled button with an
	// optional action binding).
	VariantActionable
)

var variantNames = map[Variant]string{
	VariantPlain:      "simple",
	VariantActionable: "button",
}

// String returns the variant's type tag ("simple", "button").
func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(v))
}

// ParseVariant maps a type tag back to its Variant. The empty string is
// treated as "simple".
func ParseVariant(s string) (Variant, bool) {
	if s == "" {
		return VariantPlain, true
	}
	for v, name := range variantNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}

// Node is the uniform interface implemented by every tree element.
type Node interface {
	// Name returns the display name, unescaped.
	Name() string
	// AddChild appends child to the end of the children. Nil children are
	// ignored. No cycle or duplicate check is performed.
	AddChild(child Node)
	// Children returns the children in insertion order. The returned slice is
	// a copy; appending to it does not affect the node.
	Children() []Node
	// ChildCount returns the number of children.
	ChildCount() int
	// ChildAt returns the i-th child. It panics if i is out of range.
	ChildAt(i int) Node
	// HasChildren reports whether the node has at least one child.
	HasChildren() bool
	// Variant identifies the node's concrete shape.
	Variant() Variant
}

// Control is the capability exposed by nodes drawn with a button.
type Control interface {
	ControlLabel() string
	ControlAction() string
}

// base holds the state common to all variants.
type base struct {
	name     string
	children []Node
}

func (b *base) Name() string { return b.name }

func (b *base) AddChild(child Node) {
	if child == nil {
		return
	}
	b.children = append(b.children, child)
}

func (b *base) Children() []Node { return slices.Clone(b.children) }

func (b *base) ChildCount() int { return len(b.children) }

func (b *base) ChildAt(i int) Node { return b.children[i] }

func (b *base) HasChildren() bool { return len(b.children) > 0 }

// Plain is a node without payload beyond its name and children.
type Plain struct {
	base
}

// NewPlain creates a childless plain node.
func NewPlain(name string) *Plain {
	return &Plain{base: base{name: name}}
}

// Variant returns VariantPlain.
func (*Plain) Variant() Variant { return VariantPlain }

// DefaultControlLabel is the button text used when no label is supplied.
const DefaultControlLabel = "Test Btn"

// Actionable is a node drawn with a button below its name.
type Actionable struct {
	base
	label  string
	action string
}

// ActionableOption configures an Actionable at construction time.
type ActionableOption func(*Actionable)

// WithLabel sets the button text.
func WithLabel(label string) ActionableOption {
	return func(a *Actionable) { a.label = label }
}

// WithAction binds a script handler to the button. An empty action means the
// button carries no handler.
func WithAction(action string) ActionableOption {
	return func(a *Actionable) { a.action = action }
}

// NewActionable creates a childless actionable node. Without options the
// label is DefaultControlLabel and there is no action.
func NewActionable(name string, opts ...ActionableOption) *Actionable {
	a := &Actionable{base: base{name: name}, label: DefaultControlLabel}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Variant returns VariantActionable.
func (*Actionable) Variant() Variant { return VariantActionable }

// ControlLabel returns the button text.
func (a *Actionable) ControlLabel() string { return a.label }

// ControlAction returns the button's action binding, or "" if none.
func (a *Actionable) ControlAction() string { return a.action }

var (
	_ Node    = (*Plain)(nil)
	_ Node    = (*Actionable)(nil)
	_ Control = (*Actionable)(nil)
)

package composite

import "strings"

// Component is the capability set shared by every node in the tree.
//
// It is a closed variant set: the unexported setParent method restricts
// implementations to this package, so a Component is always either a *Leaf
// or a *Branch.
type Component interface {
	// Render returns the node's display string: "Leaf" for a leaf, and
	// "Branch(<child renders joined by single spaces>)" for a branch.
	// Render is total and deterministic; there are no failure cases.
	Render() string

	// IsComposite reports whether the node can hold children.
	// It is a pure capability query with no side effects.
	IsComposite() bool

	// Add attaches child to this node's child list, taking ownership and
	// recording the child's parent back-reference. It is a no-op on a leaf
	// and for a nil child.
	Add(child Component)

	// Remove detaches child by identity if present, otherwise does nothing.
	// A removed child's parent back-reference is cleared.
	Remove(child Component)

	// Parent returns the node's current parent, or nil for a root.
	//
	// The back-reference is weak: it is maintained by Add/Remove but never
	// owns the parent, so parent and child form no ownership cycle.
	Parent() Component

	setParent(p Component)
}

// Leaf is a terminal node with no children.
type Leaf struct {
	parent Component
}

// NewLeaf constructs a Leaf with no parent.
func NewLeaf() *Leaf { return &Leaf{} }

// Render implements Component.
func (l *Leaf) Render() string { return "Leaf" }

// IsComposite implements Component. It is always false for a leaf.
func (l *Leaf) IsComposite() bool { return false }

// Add implements Component as a no-op: a leaf holds no children.
func (l *Leaf) Add(Component) {}

// Remove implements Component as a no-op: a leaf holds no children.
func (l *Leaf) Remove(Component) {}

// Parent implements Component.
func (l *Leaf) Parent() Component {
	if l == nil {
		return nil
	}
	return l.parent
}

func (l *Leaf) setParent(p Component) { l.parent = p }

// Branch is a node holding an ordered list of owned children.
type Branch struct {
	parent   Component
	children []Component
}

// NewBranch constructs an empty Branch with no parent.
func NewBranch() *Branch { return &Branch{} }

// Render implements Component.
//
// Children render depth-first in insertion order. An empty branch renders
// as "Branch()".
func (b *Branch) Render() string {
	parts := make([]string, 0, len(b.children))
	for _, c := range b.children {
		parts = append(parts, c.Render())
	}
	return "Branch(" + strings.Join(parts, " ") + ")"
}

// IsComposite implements Component. It is always true for a branch.
func (b *Branch) IsComposite() bool { return true }

// Add implements Component.
//
// The child is appended to the end of the child list; insertion order is
// render order. Adding a nil child is a no-op.
func (b *Branch) Add(child Component) {
	if child == nil {
		return
	}
	b.children = append(b.children, child)
	child.setParent(b)
}

// Remove implements Component.
//
// Identity comparison is used: only the exact node previously added is
// removed, and only its first occurrence.
func (b *Branch) Remove(child Component) {
	if child == nil {
		return
	}
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.setParent(nil)
			return
		}
	}
}

// Parent implements Component.
func (b *Branch) Parent() Component {
	if b == nil {
		return nil
	}
	return b.parent
}

func (b *Branch) setParent(p Component) { b.parent = p }

// Package composite demonstrates the Composite pattern: a tree in which a
// node is either a Leaf (terminal) or a Branch (ordered list of owned
// children), and a single recursive operation treats both uniformly.
//
// The node set is closed on purpose: Component carries an unexported method
// so that Leaf and Branch are the only implementations, which keeps the
// variant set a sum type rather than an open inheritance surface.
//
// Ownership runs parent-to-child: Add takes ownership of the child and
// records a weak back-reference from child to parent. Children are appended
// once and never reparented to an ancestor, so a tree is acyclic by
// construction and Render always terminates.
//
// Quick usage
//
//	root := composite.NewBranch()
//	left := composite.NewBranch()
//	left.Add(composite.NewLeaf())
//	left.Add(composite.NewLeaf())
//	root.Add(left)
//	root.Add(composite.NewLeaf())
//
//	fmt.Println(root.Render()) // Branch(Branch(Leaf Leaf) Leaf)
package composite

package vector

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Contains always fails with ErrCannotAnswerInConstantTime: a persistent vector has no
// index by value, so answering requires an O(n) scan. This adapter refuses to hide that
// cost behind a call that looks cheap; callers who need containment should Reduce or
// ForEach themselves.
func (v Vector[T]) Contains(pred func(T) bool) (bool, error) {
	return false, ErrCannotAnswerInConstantTime
}

// GetAndUpdate always fails with ErrNoSuchOperation. It exists only so Vector satisfies
// the same adapter shape as a mutable indexed collection; there is no in-place update to
// perform on an immutable value.
func (v Vector[T]) GetAndUpdate(i int, fn func(T) T) (Vector[T], T, error) {
	var zero T
	return v, zero, ErrNoSuchOperation
}

// PopAt always fails with ErrNoSuchOperation, for the same reason as GetAndUpdate: this
// package supports removal only at the end of the vector (RemoveLast).
func (v Vector[T]) PopAt(i int) (Vector[T], T, error) {
	var zero T
	return v, zero, ErrNoSuchOperation
}

// Inspect renders v as "#PersistentVector<count: N, [e0, e1, ...]>", showing at most
// limit elements before truncating with an ellipsis. A limit <= 0 shows every element.
func (v Vector[T]) Inspect(limit int) string {
	elems := v.ToList()
	truncated := false
	if limit > 0 && len(elems) > limit {
		elems = elems[:limit]
		truncated = true
	}
	b := strings.Builder{}
	fmt.Fprintf(&b, "#PersistentVector<count: %d, [", v.length)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	if truncated {
		if len(elems) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteString("]>")
	return b.String()
}

// String implements fmt.Stringer with an unbounded element cap, so a Vector prints
// completely under %v and %s.
func (v Vector[T]) String() string {
	return v.Inspect(0)
}

// DebugTree renders the shape of v's trie and tail as an ASCII tree, for interactive
// debugging. It reports each node's element capacity and the index range it covers.
func (v Vector[T]) DebugTree() string {
	v.props = v.props.init()
	header := fmt.Sprintf("Vector(length=%d, shift=%d, degree=%d)\n", v.length, v.shift, v.degree)
	printer := tp.New()
	if v.root != nil {
		printNode(printer, v.root, v.shift, 0, v.bits, v.degree)
	}
	printer.AddBranch(fmt.Sprintf("tail %v", v.tail))
	return header + printer.String()
}

func printNode[T any](printer tp.Tree, node *vnode[T], level, offset, bits, degree uint32) {
	if node == nil {
		return
	}
	if node.leafs != nil {
		printer.AddNode(fmt.Sprintf("%s  %d…%d", node.String(), offset, offset+uint32(len(node.leafs))-1))
		return
	}
	span := capacity(degree, bits, level)
	branch := printer.AddBranch(fmt.Sprintf("%s  %d…%d", node.String(), offset, offset+span-1))
	childSpan := capacity(degree, bits, level-bits)
	for i, child := range node.children {
		if child == nil {
			continue
		}
		printNode(branch, child, level-bits, offset+uint32(i)*childSpan, bits, degree)
	}
}

// capacity returns degree^(level/bits + 1), the number of elements a subtree rooted at
// the given level can hold.
func capacity(degree, bits, level uint32) uint32 {
	c := degree
	for l := level; l > 0; l -= bits {
		c *= degree
	}
	return c
}

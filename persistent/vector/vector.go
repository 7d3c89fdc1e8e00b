package vector

import (
	"github.com/npillmayer/pvector/persistent/option"
)

// Vector is an immutable, persistent, array-like container of values addressed by a
// contiguous, zero-based integer index. Every mutating method returns a new Vector; the
// receiver is left untouched and remains fully usable.
//
// The zero value Vector[T]{} is a valid, empty vector using the default branching
// configuration (degree 32); it behaves identically to Immutable[T]().
type Vector[T any] struct {
	props
	length uint32
	tail   []T
	root   *vnode[T]
}

// Option configures the branching factor of a vector at construction time.
type Option struct {
	config func(props) props
}

// Immutable constructs an empty vector, optionally with a non-default branching factor.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, o := range opts {
		v.props = o.config(v.props)
	}
	v.props = v.props.init()
	return v
}

// Empty is an alias for Immutable, spelling out intent at call sites that build a vector
// purely to fold Append over it.
func Empty[T any](opts ...Option) Vector[T] {
	return Immutable[T](opts...)
}

// New builds a vector from items by folding Append over them in order.
func New[T any](items []T, opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	for _, it := range items {
		v = v.Append(it)
	}
	return v
}

// BitsPerLevel sets the number of index bits consumed per trie level; the resulting
// branching factor (degree) is 2^n. Accepted exponents are 1..5; the default is 5, i.e.
// a degree of 32. Small values (e.g. 2, giving a degree of 4) are useful for stress
// testing deep tries with small inputs.
//
// Use it like this:
//
//	vec := vector.Immutable[int](vector.BitsPerLevel(2))
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		p = props{bits: uint32(n)}
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
		return p
	}
	return Option{config: conf}
}

// --- Iteration adapter -------------------------------------------------------

// Len returns the number of elements in v, in O(1).
func (v Vector[T]) Len() int {
	return int(v.length)
}

// IsEmpty reports whether v holds no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// --- Indexed-access adapter --------------------------------------------------

// Get returns the element at index i. It panics with an *ArgumentError if i is negative
// or i >= v.Len().
func (v Vector[T]) Get(i int) T {
	v.props = v.props.init()
	if i < 0 || uint32(i) >= v.length {
		panic(argErrorf("Attempt to get index %d for vector of size %d", i, v.length))
	}
	if uint32(i) >= v.tailOffset() {
		return v.tail[uint32(i)&v.mask]
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(uint32(i)>>level)&v.mask]
	}
	return node.leafs[uint32(i)&v.mask]
}

// GetOr returns the element at index i, or def if i >= v.Len(). A negative i still
// panics with an *ArgumentError, as in Get.
func (v Vector[T]) GetOr(i int, def T) T {
	v.props = v.props.init()
	if i < 0 {
		panic(argErrorf("Attempt to get index %d for vector of size %d", i, v.length))
	}
	if uint32(i) >= v.length {
		return def
	}
	return v.Get(i)
}

// Fetch returns option.Just(value) if i is in range, option.Nothing() otherwise. Unlike
// Get, Fetch never panics for an out-of-range index (including a negative one).
func (v Vector[T]) Fetch(i int) option.Option[T] {
	v.props = v.props.init()
	if i < 0 || uint32(i) >= v.length {
		return option.Nothing[T]()
	}
	return option.Just(v.Get(i))
}

// Last returns the last element of v. It panics with an *ArgumentError if v is empty.
func (v Vector[T]) Last() T {
	if v.length == 0 {
		panic(argErrorf("last/1 called for empty vector"))
	}
	return v.tail[len(v.tail)-1]
}

// LastOr returns the last element of v, or def if v is empty.
func (v Vector[T]) LastOr(def T) T {
	if v.length == 0 {
		return def
	}
	return v.tail[len(v.tail)-1]
}

// Set returns a copy of v with the element at index i replaced by value. If
// i == v.Len(), Set behaves exactly like Append. It panics with an *ArgumentError if i
// is negative or i > v.Len().
func (v Vector[T]) Set(i int, value T) Vector[T] {
	v.props = v.props.init()
	if i < 0 || uint32(i) > v.length {
		panic(argErrorf("Attempt to set index %d for vector of size %d", i, v.length))
	}
	if uint32(i) == v.length {
		return v.Append(value)
	}
	if uint32(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)&v.mask] = value
		return Vector[T]{length: v.length, props: v.props, root: v.root, tail: newTail}
	}
	newRoot := v.root.clone(false)
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (uint32(i) >> level) & v.mask
		child := node.children[subidx].clone(false)
		node.children[subidx] = child
		node = child
	}
	node.leafs[uint32(i)&v.mask] = value
	return Vector[T]{length: v.length, props: v.props, root: newRoot, tail: v.tail}
}

// --- Collection adapter -------------------------------------------------------

// Append returns a copy of v with value appended after the last element. It always
// succeeds; v.Len() grows by one.
func (v Vector[T]) Append(value T) Vector[T] {
	v.props = v.props.init()
	if !v.tailFull() {
		tracer().Debugf("tail not full, appending %v to %v", value, v.tail)
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{length: v.length + 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail is full ⇒ must be promoted into the trie
	newTail := []T{value}
	assertThat(v.length >= v.degree, "vector.length expected to be >= degree, got %d < %d", v.length, v.degree)
	if v.length == v.degree { // old tail becomes the entire root
		assertThat(v.root == nil, "vector.root expected to be nil at the degree threshold")
		leaf := newLeaf(v.tail)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(0), root: leaf, tail: newTail}
	}
	if (v.length >> v.bits) > (uint32(1) << v.shift) { // root is at capacity, grow one level
		s := v.shift + v.bits
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.bits, v.degree, v.tail)
		tracer().Debugf("root at capacity, growing to shift=%d", s)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(s), root: newRoot, tail: newTail}
	}
	newRoot := v.pushLeaf(v.length - 1)
	return Vector[T]{length: v.length + 1, props: v.props, root: newRoot, tail: newTail}
}

// AppendAll returns a copy of v with values appended, in order, after the last element.
func (v Vector[T]) AppendAll(values ...T) Vector[T] {
	for _, value := range values {
		v = v.Append(value)
	}
	return v
}

// pushLeaf clones the path from the root down to the slot that must receive the tail,
// now promoted to a full leaf, and inserts it there — either directly (once the walk
// reaches the level immediately above the leaves) or via newPath, if the walk finds an
// as-yet-unpopulated slot before then.
func (v Vector[T]) pushLeaf(i uint32) *vnode[T] {
	newRoot := v.root.clone(false)
	node := newRoot
	for level := v.shift; ; level -= v.bits {
		subidx := (i >> level) & v.mask
		if level == v.bits {
			node.children[subidx] = newLeaf(v.tail)
			return newRoot
		}
		child := node.children[subidx]
		if child == nil {
			node.children[subidx] = newPath(level-v.bits, v.bits, v.degree, v.tail)
			return newRoot
		}
		child = child.clone(false)
		node.children[subidx] = child
		node = child
	}
}

// RemoveLast returns a copy of v with the last element removed. It panics with an
// *ArgumentError if v is empty.
func (v Vector[T]) RemoveLast() Vector[T] {
	v.props = v.props.init()
	if v.length == 0 {
		panic(argErrorf("Cannot remove_last from empty vector"))
	}
	if v.length == 1 {
		return Vector[T]{props: v.props}
	}
	if ((v.length - 1) & v.mask) > 0 {
		newTail := cloneTail(v.tail, len(v.tail)-1)
		return Vector[T]{length: v.length - 1, props: v.props, root: v.root, tail: newTail}
	}
	newTrieSize := v.length - v.degree - 1
	if newTrieSize == 0 { // root vanishes into the tail
		v = Vector[T]{length: v.degree, props: v.props, root: nil, tail: v.root.leafs}
		v.shift = 0
		return v
	}
	if newTrieSize == uint32(1)<<v.shift { // trie height can be lowered
		return v.lowerTrie()
	}
	return v.popTrie()
}

func (v Vector[T]) lowerTrie() Vector[T] {
	lowerShift := v.shift - v.bits
	newRoot := v.root.children[0]
	node := v.root.children[1]
	for level := lowerShift; level > 0; level -= v.bits {
		node = node.children[0]
	}
	v = Vector[T]{length: v.length - 1, props: v.props, root: newRoot, tail: node.leafs}
	v.shift = lowerShift
	return v
}

func (v Vector[T]) popTrie() Vector[T] {
	newTrieSize := v.length - v.degree - 1
	forkPoint := newTrieSize ^ (newTrieSize - 1) // where does the node-path fork off?
	var forked bool
	newRoot := v.root.clone(false)
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (newTrieSize >> level) & v.mask
		child := node.children[subidx]
		switch {
		case forked:
			node = child
		case (forkPoint >> level) != 0:
			forked = true
			node.children[subidx] = nil
			node = child
		default:
			child = child.clone(false)
			node.children[subidx] = child
			node = child
		}
	}
	v = Vector[T]{length: v.length - 1, props: v.props, root: newRoot, tail: node.leafs}
	return v
}

// --- internal geometry --------------------------------------------------------

func (v Vector[T]) tailOffset() uint32 {
	return (v.length - 1) &^ v.mask
}

func (v Vector[T]) tailFull() bool {
	if len(v.tail) < int(v.degree) {
		tracer().Debugf("tail is not full: %v", v.tail)
		return false
	}
	tracer().Debugf("tail is full: %v", v.tail)
	return true
}

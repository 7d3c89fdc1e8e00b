/*
Package vector implements an immutable persistent vector: an array-like container
addressed by a contiguous, zero-based integer index, designed for use-cases similar to
Go slices but with copy-on-write semantics.

Each "modification" of the vector (Set, Append, RemoveLast) produces a new Vector[T],
leaving the receiver unmodified. Under the hood the vector is a 32-way branching trie
with a small tail buffer for the most recently appended elements; a modification clones
only the nodes on the path to the change, so most of the structure is shared between the
old and new incarnation, transparently to callers.

Because vnode values are never mutated after construction, immutable vectors are
inherently safe to read from multiple goroutines without synchronization.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.vector'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.vector")
}

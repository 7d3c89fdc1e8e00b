/*
Package persistent collects immutable persistent data structures: structures which can be
copied and modified efficiently while leaving the original unchanged. Functional
programming languages have long relied on data structures with this property.

Immutable data structures offer benefits over mutable ones in terms of concurrent access
and functional reasoning. *Persistent* immutable data structures additionally offer
structural sharing: if two incarnations of a structure are mostly copies of each other,
most of the memory they occupy is shared between them, so producing a new incarnation is
cheap in both space and time.

This package currently offers a single member of that family: persistent/vector, a
32-way branching trie with a tail buffer, modelled after Clojure's persistent vector.
*/
package persistent

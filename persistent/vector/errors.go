package vector

import (
	"errors"
	"fmt"
)

// ArgumentError reports caller misuse: an out-of-range index passed to Get/Set, or
// Last/RemoveLast invoked on an empty vector. It is delivered via panic, mirroring the
// runtime panic Go itself raises for an out-of-bounds slice access — a persistent vector
// is meant to feel like a slice, including at its failure boundary.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

func argErrorf(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// ErrNoSuchOperation is returned by GetAndUpdate and PopAt, which exist only for
// interface-conformance parity with the read/write adapters and are not implemented.
var ErrNoSuchOperation = errors.New("persistent/vector: no such operation")

// ErrCannotAnswerInConstantTime is returned by Contains: a persistent vector cannot
// answer membership without a linear scan, and this package refuses to hide that cost
// behind an adapter that looks like it runs in O(1).
var ErrCannotAnswerInConstantTime = errors.New("persistent/vector: cannot answer in O(1), use Reduce or ForEach")

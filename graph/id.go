package graph

import "sync/atomic"

var nextID int64

// newID returns a process-wide unique, monotonically increasing node
// identifier. Ids are never reused, which makes them convenient dedup keys
// during topological sort independent of pointer identity.
func newID() int64 {
	return atomic.AddInt64(&nextID, 1)
}

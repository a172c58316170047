// Package reactor is a fine-grained reactivity engine modeled on the Vue 3
// reactivity pattern: observable values, lazily-recomputed derived values,
// and effect callbacks that re-run automatically when a value they
// previously read changes.
//
// Everything in the graph is synchronous: reads, writes, effect
// invocations, and recomputations complete before the caller regains
// control. There is no batching, no async scheduling, and no cross-thread
// reactivity — each goroutine is its own logical executor with its own
// effect/computed stack.
package reactor

import (
	"sync"

	"github.com/riftlabs/reactor/internal"
)

// Observable wraps a record-like value and intercepts keyed reads and
// writes to drive dependency tracking and change notification. The
// Observable itself — never its underlying record — is the identity the
// dependency graph keys on.
type Observable struct {
	mu      sync.RWMutex
	node    *internal.Node
	record  map[string]any
	shallow bool

	// single, when non-empty, is the only key writes may target (the Ref
	// contract: writes to any other key are silently ignored).
	single string
}

// Reactive wraps record in a deep Observable: every record-typed value
// reachable at construction time is recursively converted to an Observable.
// Pass shallow=true to store values as-is instead. Re-wrapping an
// already-reactive value is idempotent.
func Reactive(record map[string]any, shallow ...bool) *Observable {
	isShallow := len(shallow) > 0 && shallow[0]

	o := &Observable{
		node:    internal.NewNode(),
		record:  make(map[string]any, len(record)),
		shallow: isShallow,
	}
	for k, v := range record {
		o.record[k] = o.normalize(v)
	}
	return o
}

func (o *Observable) normalize(v any) any {
	if o.shallow {
		return v
	}
	if IsReactive(v) {
		return v
	}
	if m, ok := v.(map[string]any); ok {
		return Reactive(m)
	}
	return v
}

// Get reads key. If an effect or computed is currently evaluating on this
// goroutine, (o, key) is recorded as one of its dependencies.
func (o *Observable) Get(key string) any {
	o.mu.RLock()
	v := o.record[key]
	o.mu.RUnlock()

	o.node.Track(key)
	return v
}

// Set writes key to value. A no-op if key is not this Observable's single
// recognized key (the Ref contract), or if value is identity-equal to the
// value already stored. Otherwise every Computed depending on (o, key) is
// marked dirty, then every effect subscribed to (o, key) is invoked in
// insertion order with the old value.
func (o *Observable) Set(key string, value any) {
	if o.single != "" && key != o.single {
		return
	}

	value = o.normalize(value)

	o.mu.Lock()
	old, existed := o.record[key]
	if existed && old == value {
		o.mu.Unlock()
		return
	}
	o.record[key] = value
	o.mu.Unlock()

	o.node.Propagate(key)
	o.node.Notify(key, old)
}

// rawEntries returns a shallow copy of the underlying record without
// participating in dependency tracking. Used internally for traversal
// (WatchReactive) where tracking every key as a side effect of walking the
// record would be wrong.
func (o *Observable) rawEntries() map[string]any {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make(map[string]any, len(o.record))
	for k, v := range o.record {
		out[k] = v
	}
	return out
}

func (o *Observable) isReactive() {}

func (o *Observable) graphNode() *internal.Node { return o.node }

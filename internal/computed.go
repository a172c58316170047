package internal

import "slices"

// Computed is a lazily re-evaluated, cache-backed value whose dependencies
// are discovered during evaluation.
type Computed struct {
	node   *Node
	dirty  bool
	cached any

	getter func(prev any) any
	setter func(newValue any)

	// deps are the (node, key) pairs read during the last evaluation,
	// cleared and rediscovered on every recompute.
	deps []subRef
}

// NewComputed creates a read-only Computed, dirty from construction.
func NewComputed(getter func(prev any) any) *Computed {
	return &Computed{
		node:   NewNode(),
		dirty:  true,
		getter: getter,
	}
}

// NewComputedRW creates a read/write Computed.
func NewComputedRW(getter func(prev any) any, setter func(newValue any)) *Computed {
	c := NewComputed(getter)
	c.setter = setter
	return c
}

// GraphNode exposes the Computed's own Node, keyed under "value", so a
// caller can subscribe an effect to (computed, "value") or unwatch it.
func (c *Computed) GraphNode() *Node {
	return c.node
}

// MarkDirty marks c dirty and recurses into c's own dependents. Marking is
// idempotent: a computed already dirty does not re-propagate (its
// dependents were already marked by whichever write dirtied it first).
func (c *Computed) MarkDirty() {
	if c.dirty {
		return
	}
	c.dirty = true
	c.node.Propagate("value")
}

func (c *Computed) addDep(n *Node, key Key) {
	ref := subRef{n, key}
	if slices.Contains(c.deps, ref) {
		return
	}
	c.deps = append(c.deps, ref)
}

func (c *Computed) clearDep(n *Node, key Key) {
	ref := subRef{n, key}
	if i := slices.Index(c.deps, ref); i >= 0 {
		c.deps = slices.Delete(c.deps, i, i+1)
	}
}

// ClearDeps removes c from every (node, key) it currently depends on.
func (c *Computed) ClearDeps() {
	deps := c.deps
	c.deps = nil
	for _, d := range deps {
		d.node.unlink(d.key, c)
	}
}

// Read recomputes the cached value if dirty, then records the calling
// goroutine's current effect/computed as a dependent of (c, "value"). A
// lazy recompute here never itself notifies c's own subscribers — only a
// write through a configured setter does that (see Write) — so a direct
// watcher of a read-only Computed (see WatchComputed) is never notified.
func (c *Computed) Read() any {
	if c.dirty {
		c.ClearDeps()
		c.recompute()
		c.dirty = false
	}

	c.node.Track("value")
	return c.cached
}

// recompute pushes c onto the computed stack, runs the getter, and pops c
// off again on every exit path, including a panicking getter — mirroring
// Effect.Run's pushEffect/defer popEffect. Without the defer, a panicking
// getter would leave c on the goroutine's computed stack forever, silently
// misattributing every later Track call on that goroutine to c.
func (c *Computed) recompute() {
	pushComputed(c)
	defer popComputed()

	c.cached = c.getter(c.cached)
}

// Write stores newValue as the cached value and calls the configured
// setter. A no-op if no setter was configured (read-only Computed). If the
// stored value actually changed, dependents are marked dirty and
// subscribed effects are notified, exactly as for an Observable write.
func (c *Computed) Write(newValue any) {
	if c.setter == nil {
		return
	}

	old := c.cached
	c.cached = newValue
	c.dirty = false

	c.setter(newValue)

	if !isEqual(old, newValue) {
		c.node.Propagate("value")
		c.node.Notify("value", old)
	}
}

// Release removes c from the graph entirely: it stops depending on
// anything upstream, its own subscriber/dependent tables are wiped, and its
// cache is dropped so a later Read (if c is still reachable) recomputes
// from scratch.
func (c *Computed) Release() {
	c.ClearDeps()
	c.node.Reset()
	c.dirty = true
	c.cached = nil
}

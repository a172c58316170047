package internal

import "slices"

// Key is a record key on a Node (an Observable field name, or "value" for
// a Ref/Computed).
type Key = string

// subRef is one edge of a dependency: a (node, key) pair that something
// downstream (an Effect or a Computed) has read.
type subRef struct {
	node *Node
	key  Key
}

// Node is the identity a (target, key) pair is tracked against. Both
// Observables and Computeds embed/own one; the Node pointer itself is the
// wrapper identity the dependency graph keys on, never the underlying
// storage.
type Node struct {
	effects map[Key][]*Effect
	deps    map[Key][]*Computed
}

// NewNode allocates an empty Node.
func NewNode() *Node {
	return &Node{
		effects: make(map[Key][]*Effect),
		deps:    make(map[Key][]*Computed),
	}
}

// Track records the calling goroutine's current effect and current computed
// (if any) as dependents of (n, key). Call this from a read path.
func (n *Node) Track(key Key) {
	if e := CurrentEffect(); e != nil {
		n.Subscribe(key, e)
	}
	if c := CurrentComputed(); c != nil {
		n.link(key, c)
	}
}

// Subscribe appends e to (n, key)'s subscriber list, deduplicated, and
// records the edge on e so it can be removed again on disposal/rerun.
func (n *Node) Subscribe(key Key, e *Effect) {
	list := n.effects[key]
	if slices.Contains(list, e) {
		return
	}
	n.effects[key] = append(list, e)
	e.addSub(n, key)
}

func (n *Node) unsubscribe(key Key, e *Effect) {
	list := n.effects[key]
	if i := slices.Index(list, e); i >= 0 {
		list = slices.Delete(list, i, i+1)
		if len(list) == 0 {
			delete(n.effects, key)
		} else {
			n.effects[key] = list
		}
	}
}

func (n *Node) link(key Key, c *Computed) {
	list := n.deps[key]
	if slices.Contains(list, c) {
		return
	}
	n.deps[key] = append(list, c)
	c.addDep(n, key)
}

func (n *Node) unlink(key Key, c *Computed) {
	list := n.deps[key]
	if i := slices.Index(list, c); i >= 0 {
		list = slices.Delete(list, i, i+1)
		if len(list) == 0 {
			delete(n.deps, key)
		} else {
			n.deps[key] = list
		}
	}
}

// Propagate marks every Computed that depends on (n, key) dirty, recursing
// into each dependent's own dependents. This always completes before
// Notify runs for the same write (invalidate-before-notify).
func (n *Node) Propagate(key Key) {
	deps := slices.Clone(n.deps[key])
	for _, c := range deps {
		c.MarkDirty()
	}
}

// Notify invokes every effect subscribed to (n, key), in insertion order,
// passing old. The subscriber list is snapshotted first so effects may
// dispose themselves or register new subscriptions mid-cascade without
// corrupting this iteration.
func (n *Node) Notify(key Key, old any) {
	effects := slices.Clone(n.effects[key])
	for _, e := range effects {
		e.Run(old)
	}
}

// DropKey removes every subscriber and dependent of (n, key).
func (n *Node) DropKey(key Key) {
	for _, e := range n.effects[key] {
		if i := slices.Index(e.subs, subRef{n, key}); i >= 0 {
			e.subs = slices.Delete(e.subs, i, i+1)
		}
	}
	for _, c := range slices.Clone(n.deps[key]) {
		c.clearDep(n, key)
	}
	delete(n.effects, key)
	delete(n.deps, key)
}

// DropAll removes every subscriber and dependent of every key on n.
func (n *Node) DropAll() {
	for key := range n.effects {
		n.DropKey(key)
	}
	for key := range n.deps {
		n.DropKey(key)
	}
}

// Reset drops every table on n, as for a released Computed (clearLink).
func (n *Node) Reset() {
	n.effects = make(map[Key][]*Effect)
	n.deps = make(map[Key][]*Computed)
}

// Effect is a caller-supplied callback registered via the Watch API,
// re-invoked synchronously when any (target, key) it read during its last
// run is written.
type Effect struct {
	fn       func(old any)
	subs     []subRef
	disposed bool

	// tracked effects (created by Watch) clear and rediscover their
	// dependencies on every run, since what they read may change run to
	// run. Direct effects (created by WatchRef/WatchComputed/WatchReactive)
	// subscribe to one fixed (node, key) for their whole lifetime and never
	// push themselves onto the effect stack.
	tracked bool
}

// NewEffect wraps fn as a dynamically-tracked effect (used by Watch).
func NewEffect(fn func(old any)) *Effect {
	return &Effect{fn: fn, tracked: true}
}

// NewDirectEffect wraps fn as a statically-subscribed effect (used by
// WatchRef, WatchComputed, WatchReactive).
func NewDirectEffect(fn func(old any)) *Effect {
	return &Effect{fn: fn, tracked: false}
}

// Run invokes the effect with old. Tracked effects clear their previous
// subscriptions first and push themselves as the current effect so that
// reads performed by fn re-link their dependencies.
func (e *Effect) Run(old any) {
	if e.disposed {
		return
	}

	if e.tracked {
		e.clearSubs()
		pushEffect(e)
		defer popEffect()
	}

	e.fn(old)
}

func (e *Effect) addSub(n *Node, key Key) {
	ref := subRef{n, key}
	if slices.Contains(e.subs, ref) {
		return
	}
	e.subs = append(e.subs, ref)
}

func (e *Effect) clearSubs() {
	subs := e.subs
	e.subs = nil
	for _, s := range subs {
		s.node.unsubscribe(s.key, e)
	}
}

// Dispose removes e from every (target, key) it subscribed to. Idempotent.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.clearSubs()
}

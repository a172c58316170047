package reactor

import "github.com/riftlabs/reactor/internal"

// Disposer removes the registration created by the Watch-API factory that
// returned it. Calling a disposer more than once is a no-op.
type Disposer func()

// Watch registers effect, invokes it once synchronously — which performs
// the subscription reads — and returns a disposer that removes it from
// every (target, key) it read.
func Watch(effect func()) Disposer {
	e := internal.NewEffect(func(any) { effect() })
	e.Run(nil)
	return func() { e.Dispose() }
}

// WatchRef subscribes to a Ref's value, invoking cb with the new and the
// previous value whenever it changes. Returns a disposer.
func WatchRef[T any](r *Ref[T], cb func(newValue, oldValue T)) Disposer {
	e := internal.NewDirectEffect(func(old any) {
		cb(r.Value(), as[T](old))
	})
	r.obs.node.Subscribe("value", e)
	return func() { e.Dispose() }
}

// WatchComputed subscribes to a Computed's value. src is either a
// *Computed[T] or a func() T; a getter is first wrapped with NewComputed.
// Invokes cb with the new and the previous value whenever (c, "value") is
// notified. Returns a disposer.
//
// The subscription is direct, analogous to WatchRef. A Computed notifies
// (c, "value") only from an actual write (see Computed.Write, used by a
// read/write Computed's Set); a lazy recompute on read never notifies.
// A watcher of a read-only Computed, including one built here from a
// func() T, is therefore never invoked: an upstream write only marks the
// Computed dirty.
func WatchComputed[T any](src any, cb func(newValue, oldValue T)) Disposer {
	var c *Computed[T]

	switch v := src.(type) {
	case *Computed[T]:
		c = v
	case func() T:
		c = NewComputed(func(*T) T { return v() })
	default:
		panic("reactor: WatchComputed requires a *Computed[T] or a func() T")
	}

	e := internal.NewDirectEffect(func(old any) {
		cb(c.Value(), as[T](old))
	})
	c.c.GraphNode().Subscribe("value", e)
	return func() { e.Dispose() }
}

// WatchReactive recursively walks obs's underlying record and invokes cb
// with (key, newValue, oldValue) for every key, on every Observable
// reachable from obs, whenever that key changes. Returns a disposer that
// unsubscribes every wrapper it installed.
func WatchReactive(obs *Observable, cb func(key string, newValue, oldValue any)) Disposer {
	var disposers []Disposer

	var walk func(o *Observable)
	walk = func(o *Observable) {
		for key, val := range o.rawEntries() {
			k := key
			target := o

			e := internal.NewDirectEffect(func(old any) {
				cb(k, target.Get(k), old)
			})
			target.node.Subscribe(k, e)
			disposers = append(disposers, func() { e.Dispose() })

			if nested, ok := val.(*Observable); ok {
				walk(nested)
			}
		}
	}
	walk(obs)

	return func() {
		for _, d := range disposers {
			d()
		}
	}
}

// graphNodeHolder is implemented by Observable, Ref[T] and Computed[T].
type graphNodeHolder interface {
	graphNode() *internal.Node
}

// Unwatch removes subscriptions from target. With no key, every key's
// subscribers and dependents are dropped; with a key, only that key's are.
func Unwatch(target graphNodeHolder, key ...string) {
	node := target.graphNode()
	if len(key) > 0 {
		node.DropKey(key[0])
	} else {
		node.DropAll()
	}
}

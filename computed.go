package reactor

import "github.com/riftlabs/reactor/internal"

// Computed is a lazily re-evaluated, cache-backed value derived from other
// Observables, Refs, or Computeds read during its getter.
type Computed[T any] struct {
	c *internal.Computed
}

// ComputedOptions configures a read/write Computed: Get produces the
// current value, receiving a pointer to the previous one or nil on the
// first evaluation (a real absence sentinel — distinct from T's zero
// value); Set is called when the computed itself is assigned.
type ComputedOptions[T any] struct {
	Get func(prev *T) T
	Set func(newValue T)
}

// previous converts the internal any-typed cache into the *T absence
// sentinel a getter expects: nil before the first evaluation, a pointer to
// the last computed value afterward.
func previous[T any](cached any) *T {
	if cached == nil {
		return nil
	}
	v := cached.(T)
	return &v
}

// NewComputed creates a read-only Computed. Writing to it is a no-op.
func NewComputed[T any](get func(prev *T) T) *Computed[T] {
	ic := internal.NewComputed(func(cached any) any {
		return get(previous[T](cached))
	})
	return &Computed[T]{c: ic}
}

// NewComputedRW creates a read/write Computed from a getter/setter pair.
func NewComputedRW[T any](opts ComputedOptions[T]) *Computed[T] {
	ic := internal.NewComputedRW(
		func(cached any) any { return opts.Get(previous[T](cached)) },
		func(v any) { opts.Set(as[T](v)) },
	)
	return &Computed[T]{c: ic}
}

// Value reads the computed's current value, recomputing it first if dirty.
// Before returning, the current effect (if any) is subscribed and the
// current computed (if any, and distinct from c) is recorded as a
// dependent.
func (c *Computed[T]) Value() T {
	return as[T](c.c.Read())
}

// Set assigns a new value through the computed's setter, if one was
// configured. Read-only computeds silently ignore this.
func (c *Computed[T]) Set(v T) {
	c.c.Write(v)
}

func (c *Computed[T]) isComputedValue() {}

func (c *Computed[T]) graphNode() *internal.Node { return c.c.GraphNode() }

// ClearComputed releases c from the dependency graph: it stops depending on
// anything upstream, forgets every subscriber and dependent of its own
// value, and drops its cached value.
func ClearComputed[T any](c *Computed[T]) {
	c.c.Release()
}

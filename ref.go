package reactor

import "github.com/riftlabs/reactor/internal"

// Ref is an Observable specialized to a single "value" slot. It is tagged
// as a Ref at construction time (rather than inferred from its keys, which
// would be sensitive to map iteration order).
type Ref[T any] struct {
	obs *Observable
}

// NewRef creates a ref wrapping initial, normalizing an absent initial
// value to T's zero value.
func NewRef[T any](initial ...T) *Ref[T] {
	var v T
	if len(initial) > 0 {
		v = initial[0]
	}

	obs := Reactive(map[string]any{"value": v})
	obs.single = "value"

	return &Ref[T]{obs: obs}
}

// Value reads the ref's current value, tracking the dependency if within a
// reactive context.
func (r *Ref[T]) Value() T {
	return as[T](r.obs.Get("value"))
}

// Set writes a new value, triggering updates to any dependents if it
// differs from the current value.
func (r *Ref[T]) Set(v T) {
	r.obs.Set("value", v)
}

func (r *Ref[T]) isReactive() {}
func (r *Ref[T]) isRef()      {}

func (r *Ref[T]) graphNode() *internal.Node { return r.obs.node }

package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_Basic(t *testing.T) {
	r := NewRef(1)
	assert.Equal(t, 1, r.Value())

	r.Set(2)
	assert.Equal(t, 2, r.Value())
}

func TestRef_ZeroValueWithNoInitial(t *testing.T) {
	r := NewRef[string]()
	assert.Equal(t, "", r.Value())
}

// S1 — Basic ref, driven end-to-end through the public API.
func TestRef_WatchFires(t *testing.T) {
	a := NewRef(1)
	var dummy int
	calls := 0

	Watch(func() {
		calls++
		dummy = a.Value()
	})
	require.Equal(t, 1, dummy)

	a.Set(2)
	assert.Equal(t, 2, dummy)
	assert.Equal(t, 2, calls)

	a.Set(2)
	assert.Equal(t, 2, calls, "writing the same value again must not re-invoke")
}

// Property 9 — nested reactivity: writing a nested field through a Ref
// holding a record reaches effects reading that nested field. A record
// value passed to NewRef is deep-wrapped exactly as Reactive does, so the
// concrete instantiation has to be Ref[any] (or Ref[*Observable]): the
// stored value stops being a map[string]any the moment it's normalized,
// and a Ref[map[string]any] would panic on the type assertion in Value.
func TestRef_NestedReactivity(t *testing.T) {
	r := NewRef[any](map[string]any{"count": 1})

	inner, ok := r.Value().(*Observable)
	require.True(t, ok, "a record initial value is wrapped the same as Reactive would wrap it")

	var last int
	Watch(func() {
		last = inner.Get("count").(int)
	})
	assert.Equal(t, 1, last)

	inner.Set("count", 2)
	assert.Equal(t, 2, last)
}

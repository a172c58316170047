package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservable_GetSet(t *testing.T) {
	t.Run("effect runs twice, last value reflects write", func(t *testing.T) {
		o := Reactive(map[string]any{"x": "a"})
		calls := 0
		var dummy any

		Watch(func() {
			calls++
			dummy = o.Get("x")
		})
		assert.Equal(t, "a", dummy)

		o.Set("x", "b")
		assert.Equal(t, 2, calls)
		assert.Equal(t, "b", dummy)
	})

	t.Run("writing the same value invokes no effect", func(t *testing.T) {
		o := Reactive(map[string]any{"x": 1})
		calls := 0

		Watch(func() {
			calls++
			o.Get("x")
		})
		require.Equal(t, 1, calls)

		o.Set("x", 1)
		assert.Equal(t, 1, calls, "no-op write must not invoke subscribers")
	})
}

func TestObservable_DeepWrap(t *testing.T) {
	o := Reactive(map[string]any{
		"inner": map[string]any{"count": 1},
	})

	inner, ok := o.Get("inner").(*Observable)
	require.True(t, ok, "nested records are recursively wrapped")
	assert.True(t, IsReactive(inner))

	var last int
	Watch(func() {
		last = inner.Get("count").(int)
	})
	assert.Equal(t, 1, last)

	inner.Set("count", 2)
	assert.Equal(t, 2, last)
}

func TestObservable_Shallow(t *testing.T) {
	o := Reactive(map[string]any{
		"inner": map[string]any{"count": 1},
	}, true)

	_, ok := o.Get("inner").(*Observable)
	assert.False(t, ok, "shallow reactive must not wrap nested records")
}

func TestObservable_WriteAtConstructionSiteIsIdempotentWrap(t *testing.T) {
	inner := Reactive(map[string]any{"a": 1})
	o := Reactive(map[string]any{"inner": inner})

	assert.Same(t, inner, o.Get("inner"), "re-wrapping an already-reactive value is idempotent")
}

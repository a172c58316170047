package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReactive(t *testing.T) {
	o := Reactive(map[string]any{"a": 1})
	assert.True(t, IsReactive(o))
	assert.False(t, IsReactive(map[string]any{"a": 1}))
	assert.False(t, IsReactive(42))
	assert.False(t, IsReactive(nil))
}

func TestIsRef(t *testing.T) {
	r := NewRef(1)
	assert.True(t, IsRef(r))

	// A plain single-key Observable is not a Ref: the tag is recorded at
	// construction time by NewRef, never inferred from key shape.
	plain := Reactive(map[string]any{"value": 1})
	assert.False(t, IsRef(plain))

	assert.False(t, IsRef(NewComputed(func(prev *int) int { return 1 })))
}

func TestIsComputed(t *testing.T) {
	c := NewComputed(func(prev *int) int { return 1 })
	assert.True(t, IsComputed(c))
	assert.False(t, IsComputed(NewRef(1)))
	assert.False(t, IsComputed(Reactive(map[string]any{"value": 1})))
}

package internal

import "sync"

// Tracker holds the effect stack and the computed stack for one logical
// executor. The stacks are process-wide state, but "process-wide" is scoped
// per goroutine (see trackers below): the core assumes a single logical
// executor at a time, and distinct goroutines are distinct executors.
type Tracker struct {
	effectStack   []*Effect
	computedStack []*Computed
}

var trackers sync.Map // goroutine id (int64) -> *Tracker

func currentTracker() *Tracker {
	gid := currentGoroutineID()

	if t, ok := trackers.Load(gid); ok {
		return t.(*Tracker)
	}

	t := &Tracker{}
	trackers.Store(gid, t)
	return t
}

// CurrentEffect returns the effect on top of the calling goroutine's effect
// stack, or nil if none is running.
func CurrentEffect() *Effect {
	t := currentTracker()
	if len(t.effectStack) == 0 {
		return nil
	}
	return t.effectStack[len(t.effectStack)-1]
}

// CurrentComputed returns the computed on top of the calling goroutine's
// computed stack, or nil if none is evaluating.
func CurrentComputed() *Computed {
	t := currentTracker()
	if len(t.computedStack) == 0 {
		return nil
	}
	return t.computedStack[len(t.computedStack)-1]
}

func pushEffect(e *Effect) {
	t := currentTracker()
	t.effectStack = append(t.effectStack, e)
}

func popEffect() {
	t := currentTracker()
	t.effectStack = t.effectStack[:len(t.effectStack)-1]
}

func pushComputed(c *Computed) {
	t := currentTracker()
	t.computedStack = append(t.computedStack, c)
}

func popComputed() {
	t := currentTracker()
	t.computedStack = t.computedStack[:len(t.computedStack)-1]
}

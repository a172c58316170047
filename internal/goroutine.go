//go:build !wasm

package internal

import "github.com/petermattis/goid"

// currentGoroutineID identifies the calling goroutine so the tracker can
// keep a separate effect/computed stack per logical executor (goroutines
// don't share a call stack, so they must not share tracking state either).
func currentGoroutineID() int64 {
	return goid.Get()
}

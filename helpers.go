package reactor

// as recovers a typed value from the any-typed storage the reactive graph
// uses internally. A nil value is treated as the absence sentinel and
// yields T's zero value rather than panicking.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

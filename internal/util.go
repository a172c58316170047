package internal

// isEqual decides change by identity/primitive equality, never deep
// equality. Values that are not comparable (slices, maps, funcs) will
// panic on ==, same as the spec's "identity/primitive equality" scope.
func isEqual(a, b any) bool {
	return a == b
}

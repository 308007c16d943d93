package ptr

// Ref returns a pointer to the value passed as argument. Handy for
// optional JSON fields.
func Ref[T any](v T) *T {
	return &v
}

package util

// Ptr returns a pointer to v. The wire DTOs mark their tagged-union variants
// with pointer fields, so encoders need pointers to literal values.
func Ptr[T any](v T) *T {
	return &v
}

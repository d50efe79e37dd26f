package util

// Pointer simply returns a pointer to the supplied value
func Pointer[T any](v T) *T {
	return &v
}

// ValueOrDefault dereferences ptr, falling back to defaultVal when ptr is nil
func ValueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}

// Clamp bounds v to the inclusive range [lo, hi]
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

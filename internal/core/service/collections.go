package service

func Filter[T any](s []T, fn func(T) bool) []T {
	result := make([]T, 0)
	for _, t := range s {
		if fn(t) {
			result = append(result, t)
		}
	}
	return result
}

// ConcatenateArrays flattens one level: argument order first, then element
// order within each argument. The result never shares storage with the inputs.
func ConcatenateArrays[T any](arrays ...[]T) []T {
	size := 0
	for _, a := range arrays {
		size += len(a)
	}

	result := make([]T, 0, size)
	for _, a := range arrays {
		result = append(result, a...)
	}
	return result
}

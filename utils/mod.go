package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove returns slice without the element at i, preserving order.
func Remove[T any](slice []T, i int) []T {
	return append(slice[:i:i], slice[i+1:]...)
}

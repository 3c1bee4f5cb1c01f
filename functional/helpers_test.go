package functional

func identity[T any](v T) T {
	return v
}

func compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

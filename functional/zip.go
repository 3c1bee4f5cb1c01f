package functional

// ZipWith combines two successes with fn. Failures are left-biased: r's
// error wins over other's, and neither is wrapped.
func ZipWith[T, R, U any](r Result[T], other ResultConvertible[R], fn func(T, R) U) Result[U] {
	return FlatMapResult(r, func(v1 T) Result[U] {
		return MapResult(UnwrapResult(Convertible[R](other), nil), func(v2 R) U {
			return fn(v1, v2)
		})
	})
}

// ZipWithDefault combines two successes into a Pair.
func ZipWithDefault[T, R any](r Result[T], other ResultConvertible[R]) Result[Pair[T, R]] {
	return ZipWith(r, other, NewPair[T, R])
}

// Zip is ZipWith applied to a converted to a Result.
func Zip[T, R, U any](a ResultConvertible[T], b ResultConvertible[R], fn func(T, R) U) Result[U] {
	return ZipWith(UnwrapResult(Convertible[T](a), nil), b, fn)
}

// ZipDefault is Zip with Pair construction.
func ZipDefault[T, R any](a ResultConvertible[T], b ResultConvertible[R]) Result[Pair[T, R]] {
	return Zip(a, b, NewPair[T, R])
}

// ZipAll applies fn to the values of every result. The first failure in
// slice order is returned unchanged.
func ZipAll[T, U any, C ResultConvertible[T]](results []C, fn func([]T) U) Result[U] {
	return Try(func() (U, error) {
		values := make([]T, 0, len(results))
		for _, c := range results {
			v, err := UnwrapResult(Convertible[T](c), nil).Get()
			if err != nil {
				var zero U
				return zero, err
			}
			values = append(values, v)
		}
		return fn(values), nil
	})
}

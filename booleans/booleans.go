// Package booleans provides predicate helpers for bool values.
package booleans

// IsTrue reports whether v is true.
func IsTrue(v bool) bool {
	return v
}

// IsFalse reports whether v is false.
func IsFalse(v bool) bool {
	return !v
}

// Not negates a predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}

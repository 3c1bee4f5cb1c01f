// Package collections provides generic slice helpers. Partial operations
// return functional.Option instead of panicking or using sentinel indices.
package collections

import (
	"github.com/authcorp/libs/go/fnkit/functional"
)

// Equatable is implemented by values that define their own equality.
type Equatable[T any] interface {
	Equals(other T) bool
}

// ElementAt returns the element at index, or None when out of range.
func ElementAt[T any](s []T, index int) functional.Option[T] {
	if index < 0 || index >= len(s) {
		return functional.None[T]()
	}
	return functional.Some(s[index])
}

// First returns the first element.
func First[T any](s []T) functional.Option[T] {
	return ElementAt(s, 0)
}

// FirstWhere returns the first element satisfying predicate.
func FirstWhere[T any](s []T, predicate func(T) bool) functional.Option[T] {
	for _, v := range s {
		if predicate(v) {
			return functional.Some(v)
		}
	}
	return functional.None[T]()
}

// Last returns the last element.
func Last[T any](s []T) functional.Option[T] {
	return ElementAt(s, len(s)-1)
}

// LastWhere returns the last element satisfying predicate. s is not
// modified.
func LastWhere[T any](s []T, predicate func(T) bool) functional.Option[T] {
	for i := len(s) - 1; i >= 0; i-- {
		if predicate(s[i]) {
			return functional.Some(s[i])
		}
	}
	return functional.None[T]()
}

// IndexOf returns the index of the first element equal to target.
func IndexOf[T comparable](s []T, target T) functional.Option[int] {
	return IndexWhere(s, func(v T) bool { return v == target })
}

// IndexWhere returns the index of the first element satisfying predicate.
func IndexWhere[T any](s []T, predicate func(T) bool) functional.Option[int] {
	for i, v := range s {
		if predicate(v) {
			return functional.Some(i)
		}
	}
	return functional.None[int]()
}

// Contains reports whether s holds target.
func Contains[T comparable](s []T, target T) bool {
	return IndexOf(s, target).IsSome()
}

// ContainsFunc reports whether any element satisfies predicate.
func ContainsFunc[T any](s []T, predicate func(T) bool) bool {
	return IndexWhere(s, predicate).IsSome()
}

// ContainsEquatable reports whether s holds an element equal to target by
// its own Equals method.
func ContainsEquatable[T Equatable[T]](s []T, target T) bool {
	return ContainsFunc(s, func(v T) bool { return v.Equals(target) })
}

// Unique returns the elements of s without duplicates, keeping first
// occurrences in order.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	result := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Zip pairs elements by position, stopping at the shorter slice.
func Zip[A, B any](as []A, bs []B) []functional.Pair[A, B] {
	n := min(len(as), len(bs))
	result := make([]functional.Pair[A, B], 0, n)
	for i := 0; i < n; i++ {
		result = append(result, functional.NewPair(as[i], bs[i]))
	}
	return result
}

// All reports whether every element satisfies predicate. True for an empty
// slice.
func All[T any](s []T, predicate func(T) bool) bool {
	for _, v := range s {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Any reports whether some element satisfies predicate.
func Any[T any](s []T, predicate func(T) bool) bool {
	return ContainsFunc(s, predicate)
}

// Map applies fn to every element.
func Map[T, U any](s []T, fn func(T) U) []U {
	result := make([]U, 0, len(s))
	for _, v := range s {
		result = append(result, fn(v))
	}
	return result
}

// Filter keeps the elements satisfying predicate.
func Filter[T any](s []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, v := range s {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce folds s from left to right, starting from seed.
func Reduce[T, U any](s []T, seed U, fn func(U, T) U) U {
	acc := seed
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// FlattenTryResults unwraps every element and drops absent and failed ones.
func FlattenTryResults[T any](s []functional.TryResult[T]) []T {
	result := make([]T, 0, len(s))
	for _, r := range s {
		v, err := functional.UnwrapResult(r, nil).Get()
		if err != nil {
			continue
		}
		result = append(result, v)
	}
	return result
}

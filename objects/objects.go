// Package objects provides helpers over string-keyed and generic maps that
// report possibly-missing values as functional.Option.
package objects

import (
	"cmp"
	"maps"
	"slices"

	"github.com/authcorp/libs/go/fnkit/collections"
	"github.com/authcorp/libs/go/fnkit/functional"
	"github.com/authcorp/libs/go/fnkit/types"
)

// Get returns the value for key. A missing key and a nil value are both
// None.
func Get[K comparable, V any](m map[K]V, key K) functional.Option[V] {
	if v, ok := m[key]; ok {
		return functional.Of(v)
	}
	return functional.None[V]()
}

// GetOrDefault returns the value for a key, or the default if absent.
func GetOrDefault[K comparable, V any](m map[K]V, key K, defaultVal V) V {
	return Get(m, key).UnwrapOr(defaultVal)
}

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// Values returns the values of m ordered by key.
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	return collections.Map(Keys(m), func(k K) V { return m[k] })
}

// Entries returns the key-value pairs of m ordered by key. Nil values are
// kept.
func Entries[K cmp.Ordered, V any](m map[K]V) []functional.Pair[K, V] {
	return collections.Map(Keys(m), func(k K) functional.Pair[K, V] {
		return functional.NewPair(k, m[k])
	})
}

// FromPairs builds a map from key-value pairs. Later pairs win.
func FromPairs[K comparable, V any](pairs []functional.Pair[K, V]) map[K]V {
	result := make(map[K]V, len(pairs))
	for _, p := range pairs {
		result[p.First] = p.Second
	}
	return result
}

// ToMap unwraps every value and keeps only the entries that resolve to a
// present, successful value.
func ToMap[K comparable, V any](m map[K]functional.TryResult[V]) map[K]V {
	entries := make([]functional.TryResult[functional.Pair[K, V]], 0, len(m))
	for k, r := range m {
		entries = append(entries, functional.MapResult(
			functional.UnwrapResult(r, nil),
			func(v V) functional.Pair[K, V] { return functional.NewPair(k, v) },
		))
	}
	return FromPairs(collections.FlattenTryResults(entries))
}

// Compact returns a copy of m without nil values.
func Compact[K comparable, V any](m map[K]V) map[K]V {
	wrapped := make(map[K]functional.TryResult[V], len(m))
	for k, v := range m {
		wrapped[k] = functional.Plain(v)
	}
	return ToMap(wrapped)
}

// Pick returns a new map with only the specified keys.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	result := make(map[K]V)
	for _, k := range keys {
		if v, ok := m[k]; ok {
			result[k] = v
		}
	}
	return result
}

// Omit returns a new map without the specified keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	result := maps.Clone(m)
	for _, k := range keys {
		delete(result, k)
	}
	if result == nil {
		result = make(map[K]V)
	}
	return result
}

// MapValues applies fn to each value, returning a new map.
func MapValues[K comparable, V, U any](m map[K]V, fn func(V) U) map[K]U {
	result := make(map[K]U, len(m))
	for k, v := range m {
		result[k] = fn(v)
	}
	return result
}

// IsDefined reports whether v is neither nil nor a typed nil.
func IsDefined(v any) bool {
	return !types.IsNil(v)
}

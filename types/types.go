// Package types holds the structural checks used to recognize values by
// shape rather than by declared type.
package types

import (
	"reflect"
	"slices"
)

// IsNil reports whether v is nil or a typed nil (pointer, map, slice,
// channel, func or interface). Zero values of other kinds are not nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsInstance reports whether v exposes every named member. Struct fields
// and methods count, as do the keys of a string-keyed map. A member that
// exists but holds nil still satisfies the check. A nil value or an empty
// member list never conforms.
func IsInstance(v any, members ...string) bool {
	if IsNil(v) || len(members) == 0 {
		return false
	}
	return len(MissingMembers(v, members...)) == 0
}

// MissingMembers returns the members v does not expose, in input order.
func MissingMembers(v any, members ...string) []string {
	var missing []string
	for _, m := range members {
		if !hasMember(v, m) {
			missing = append(missing, m)
		}
	}
	return missing
}

func hasMember(v any, name string) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if _, ok := rv.Type().MethodByName(name); ok {
		return true
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
		if _, ok := rv.Type().MethodByName(name); ok {
			return true
		}
	}
	switch rv.Kind() {
	case reflect.Struct:
		_, ok := rv.Type().FieldByName(name)
		return ok
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false
		}
		key := reflect.ValueOf(name).Convert(rv.Type().Key())
		return rv.MapIndex(key).IsValid()
	default:
		return false
	}
}

// IsBool reports whether v has a boolean kind.
func IsBool(v any) bool {
	return kindOf(v) == reflect.Bool
}

// IsString reports whether v has a string kind.
func IsString(v any) bool {
	return kindOf(v) == reflect.String
}

var numberKinds = []reflect.Kind{
	reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
	reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
	reflect.Uintptr, reflect.Float32, reflect.Float64,
}

// IsNumber reports whether v has an integer or floating point kind.
func IsNumber(v any) bool {
	return slices.Contains(numberKinds, kindOf(v))
}

// IsObject reports whether v is a struct or a map, directly or through a
// non-nil pointer.
func IsObject(v any) bool {
	if IsNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct || rv.Kind() == reflect.Map
}

// ToFloat64 converts a numeric value to float64.
func ToFloat64(v any) (float64, bool) {
	if !IsNumber(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

// ToString returns the underlying string of a string-kinded value.
func ToString(v any) (string, bool) {
	if !IsString(v) {
		return "", false
	}
	return reflect.ValueOf(v).String(), true
}

// ToBool returns the underlying bool of a bool-kinded value.
func ToBool(v any) (bool, bool) {
	if !IsBool(v) {
		return false, false
	}
	return reflect.ValueOf(v).Bool(), true
}

// NameOf returns the name of T, including interface types.
func NameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Package numbers provides small numeric helpers built on functional.Result.
package numbers

import (
	"strconv"
	"strings"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/authcorp/libs/go/fnkit/functional"
	"golang.org/x/exp/constraints"
)

// Number is a type constraint for all real numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsEven reports whether n is divisible by two.
func IsEven[N constraints.Integer](n N) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two.
func IsOdd[N constraints.Integer](n N) bool {
	return !IsEven(n)
}

// Sum adds all values. The sum of no values is zero.
func Sum[N Number](values ...N) N {
	var total N
	for _, v := range values {
		total += v
	}
	return total
}

// Range returns start, start+step, ... up to and excluding end. A
// non-positive step fails with an invalid argument error. The range also
// stops when the next value would overflow N or, for floats, when adding
// step no longer changes the value.
func Range[N Number](start, end, step N) functional.Result[[]N] {
	if step <= 0 {
		return functional.Err[[]N](apperrors.InvalidArgument("step must be positive"))
	}
	values := make([]N, 0)
	for v := start; v < end; {
		values = append(values, v)
		next := v + step
		if next <= v {
			break
		}
		v = next
	}
	return functional.Ok(values)
}

// Clamp bounds n to [lo, hi].
func Clamp[N Number](n, lo, hi N) N {
	return max(lo, min(n, hi))
}

// Parse reads a float from s, ignoring surrounding whitespace.
func Parse(s string) functional.Result[float64] {
	return functional.Try(func() (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	})
}

// ParseInt reads a base-10 integer from s, ignoring surrounding whitespace.
func ParseInt(s string) functional.Result[int] {
	return functional.Try(func() (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	})
}

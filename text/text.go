// Package text provides string helpers that report missing content as
// functional.Option.
package text

import (
	"strconv"
	"strings"

	"github.com/authcorp/libs/go/fnkit/functional"
)

// NonEmpty returns s, or None when s is empty.
func NonEmpty(s string) functional.Option[string] {
	return functional.Some(s).Filter(func(v string) bool { return v != "" })
}

// NonBlank returns s trimmed, or None when only whitespace remains.
func NonBlank(s string) functional.Option[string] {
	return NonEmpty(strings.TrimSpace(s))
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ParseBool reads a boolean written as 1, t, true, 0, f or false in any
// case.
func ParseBool(s string) functional.Result[bool] {
	return functional.Try(func() (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	})
}

// Package dates parses and converts timestamps into functional.Result.
package dates

import (
	"strings"
	"time"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/authcorp/libs/go/fnkit/functional"
)

// Layouts are tried in order by Parse.
var Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
}

// Parse reads s using the first matching layout in Layouts. Unparseable
// input fails instead of defaulting to the current time.
func Parse(s string) functional.Result[time.Time] {
	s = strings.TrimSpace(s)
	for _, layout := range Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return functional.Ok(t)
		}
	}
	return functional.Err[time.Time](apperrors.InvalidArgument("unrecognized date: " + s))
}

// FromMillis converts milliseconds since the Unix epoch to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

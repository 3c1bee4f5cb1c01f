// Package buildable defines the paired builder contracts used to create
// and clone immutable values.
package buildable

import "github.com/authcorp/libs/go/fnkit/functional"

// Builder accumulates properties and produces a B. S is the concrete
// builder type so WithBuildable can be chained.
type Builder[S, B any] interface {
	// WithBuildable copies every property of b into the builder.
	WithBuildable(b B) S
	Build() B
}

// Buildable is a value that can hand out a builder of type S.
type Buildable[S any] interface {
	// Builder returns an empty builder.
	Builder() S
	// CloneBuilder returns a builder preloaded with the receiver's properties.
	CloneBuilder() S
}

// Clone builds a copy of b through its clone builder. A panicking builder
// yields an OperationFailed error.
func Clone[B Buildable[S], S Builder[S, B]](b B) functional.Result[B] {
	return functional.Try(func() (B, error) {
		return b.CloneBuilder().Build(), nil
	})
}

// Rebuild copies b into a fresh builder, lets modify adjust it, and builds.
func Rebuild[B Buildable[S], S Builder[S, B]](b B, modify func(S) S) functional.Result[B] {
	return functional.Try(func() (B, error) {
		return modify(b.Builder().WithBuildable(b)).Build(), nil
	})
}

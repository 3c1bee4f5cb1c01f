package functional

import (
	"errors"
	"testing"

	apperrors "github.com/authcorp/libs/go/fnkit/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func isEven(n int) bool { return n%2 == 0 }

func TestOptionMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Some returns Some(fn(value))", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := MapOption(Some(n), fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map with identity is a no-op", prop.ForAll(
		func(n int) bool {
			return Of(n).Map(identity[int]) == Of(n)
		},
		gen.Int(),
	))

	properties.Property("Map on None returns None for any fn", prop.ForAll(
		func(n int) bool {
			called := false
			mapped := None[int]().Map(func(x int) int { called = true; return x + n })
			return mapped.IsNone() && !called
		},
		gen.Int(),
	))

	properties.Property("Filter keeps exactly the values satisfying the predicate", prop.ForAll(
		func(n int) bool {
			return Some(n).Filter(isEven).IsSome() == isEven(n)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestOptionPointerRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("FromPtr(ptr).ToPtr() returns equal value for non-nil", prop.ForAll(
		func(n int) bool {
			result := FromPtr(&n).ToPtr()
			return result != nil && *result == n
		},
		gen.Int(),
	))

	properties.Property("FromPtr(nil).ToPtr() returns nil", prop.ForAll(
		func() bool {
			var ptr *int
			return FromPtr(ptr).ToPtr() == nil
		},
	))

	properties.TestingRun(t)
}

func TestOptionOf(t *testing.T) {
	t.Run("nil values are absent", func(t *testing.T) {
		var p *int
		var m map[string]int
		var s []int
		var f func()
		require.True(t, Of[any](nil).IsNone())
		require.True(t, Of(p).IsNone())
		require.True(t, Of(m).IsNone())
		require.True(t, Of(s).IsNone())
		require.True(t, Of(f).IsNone())
	})

	t.Run("zero values are present", func(t *testing.T) {
		require.True(t, Of(0).IsSome())
		require.True(t, Of("").IsSome())
		require.True(t, Of(false).IsSome())
		require.True(t, Of([]int{}).IsSome())
	})

	t.Run("Some keeps nil", func(t *testing.T) {
		var p *int
		require.True(t, Some(p).IsSome())
	})

	t.Run("From flattens one level", func(t *testing.T) {
		require.Equal(t, Some(3), From[int](Some(3)))
		require.Equal(t, Some(3), From[int](Ok(3)))
		require.True(t, From[int](Errf[int]("x")).IsNone())
		require.True(t, From[int](nil).IsNone())
	})
}

func TestOptionAccessors(t *testing.T) {
	t.Run("Get on None returns ErrValueUnavailable", func(t *testing.T) {
		_, err := None[int]().Get()
		require.ErrorIs(t, err, apperrors.ErrValueUnavailable)
	})

	t.Run("Unwrap on None panics", func(t *testing.T) {
		require.PanicsWithError(t, apperrors.ErrValueUnavailable.Error(), func() {
			None[int]().Unwrap()
		})
	})

	t.Run("UnwrapOrElse is lazy", func(t *testing.T) {
		called := false
		v := Some(1).UnwrapOrElse(func() int { called = true; return 2 })
		require.Equal(t, 1, v)
		require.False(t, called)
		require.Equal(t, 2, None[int]().UnwrapOrElse(func() int { return 2 }))
	})

	t.Run("UnwrapOr", func(t *testing.T) {
		require.Equal(t, 42, Some(42).UnwrapOr(100))
		require.Equal(t, 100, None[int]().UnwrapOr(100))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "Some(1)", Some(1).String())
		require.Equal(t, "None", None[int]().String())
	})
}

func TestOptionTransforms(t *testing.T) {
	t.Run("Map collapses nil results", func(t *testing.T) {
		mapped := MapOption(Some(1), func(int) *int { return nil })
		require.True(t, mapped.IsNone())
	})

	t.Run("Map swallows panics", func(t *testing.T) {
		mapped := Some(1).Map(func(int) int { panic("boom") })
		require.True(t, mapped.IsNone())
	})

	t.Run("FlatMap", func(t *testing.T) {
		half := func(n int) Option[int] {
			if n%2 != 0 {
				return None[int]()
			}
			return Some(n / 2)
		}
		require.Equal(t, Some(2), Some(4).FlatMap(half))
		require.True(t, Some(3).FlatMap(half).IsNone())
		require.True(t, None[int]().FlatMap(half).IsNone())
		require.True(t, FlatMapOption(Some(1), func(int) Option[string] { panic(errors.New("boom")) }).IsNone())
	})

	t.Run("Filter", func(t *testing.T) {
		require.True(t, Of(3).Filter(isEven).IsNone())
		require.Equal(t, Some(4), Of(4).Filter(isEven))
		require.True(t, Some(4).Filter(func(int) bool { panic("boom") }).IsNone())
	})

	t.Run("Or and OrElse", func(t *testing.T) {
		require.Equal(t, Some(1), Some(1).Or(Some(2)))
		require.Equal(t, Some(2), None[int]().Or(Some(2)))

		called := false
		require.Equal(t, Some(1), Some(1).OrElse(func() Option[int] { called = true; return Some(2) }))
		require.False(t, called)
		require.Equal(t, Some(2), None[int]().OrElse(func() Option[int] { return Some(2) }))
		require.True(t, None[int]().OrElse(func() Option[int] { panic("boom") }).IsNone())
	})

	t.Run("Match", func(t *testing.T) {
		require.Equal(t, "some", MatchOption(Some(1), func(int) string { return "some" }, func() string { return "none" }))
		require.Equal(t, "none", MatchOption(None[int](), func(int) string { return "some" }, func() string { return "none" }))
	})
}

func TestOptionConversion(t *testing.T) {
	t.Run("AsResult on Some", func(t *testing.T) {
		require.Equal(t, Ok(5), Some(5).AsResult())
	})

	t.Run("AsResult on None defaults to ErrValueUnavailable", func(t *testing.T) {
		require.ErrorIs(t, None[int]().AsResult().Err(), apperrors.ErrValueUnavailable)
	})

	t.Run("AsResultOr uses the supplied error", func(t *testing.T) {
		err := errors.New("missing")
		got := None[int]().AsResultOr(err).Err()
		require.True(t, got == err)
	})

	t.Run("AsOption is identity", func(t *testing.T) {
		require.Equal(t, Some(5), Some(5).AsOption())
	})

	t.Run("round trip through Result is loss-free", func(t *testing.T) {
		require.Equal(t, Of(5), Of(5).AsResult().AsOption())
	})
}

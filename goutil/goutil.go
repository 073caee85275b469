package goutil

import "github.com/samber/lo"

// Coalesce returns the first non-zero value, or the zero value if there is
// none.
func Coalesce[T comparable](v ...T) T {
	res, _ := lo.Coalesce(v...)
	return res
}

// NonEmptyFilter drops zero values when used with lo.Filter.
func NonEmptyFilter[T comparable](t T, _ int) bool {
	return t != lo.Empty[T]()
}

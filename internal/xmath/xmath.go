// Package xmath collects the small numeric helpers the search core needs
// in several places, written once as generics instead of duplicated per
// integer width the way the teacher engine did (Min, Max, Max32, Max8).
package xmath

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}

func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

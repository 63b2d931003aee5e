// Package largest finds the largest element of a slice.
package largest

import (
	"cmp"
	"errors"
)

// ErrEmptyInput is returned when there is no element to choose from.
var ErrEmptyInput = errors.New("empty input")

// Index returns the position of the largest element of s. When the largest
// value occurs more than once, the first occurrence wins.
func Index[T cmp.Ordered](s []T) (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[best] {
			best = i
		}
	}
	return best, nil
}

// IndexFunc is like Index but orders elements with greater, which must report
// whether a is strictly greater than b.
func IndexFunc[T any](s []T, greater func(a, b T) bool) (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if greater(s[i], s[best]) {
			best = i
		}
	}
	return best, nil
}

// Of returns a pointer to the largest element of s.
//
// The pointer refers to s's backing array. It is only meaningful while s is
// alive, and it observes any later write to that slot. Copy the value or use
// Index if that matters.
func Of[T cmp.Ordered](s []T) (*T, error) {
	i, err := Index(s)
	if err != nil {
		return nil, err
	}
	return &s[i], nil
}

// OfFunc is like Of but orders elements with greater.
func OfFunc[T any](s []T, greater func(a, b T) bool) (*T, error) {
	i, err := IndexFunc(s, greater)
	if err != nil {
		return nil, err
	}
	return &s[i], nil
}

// Value returns a copy of the largest element of s.
func Value[T cmp.Ordered](s []T) (T, error) {
	i, err := Index(s)
	if err != nil {
		var zero T
		return zero, err
	}
	return s[i], nil
}

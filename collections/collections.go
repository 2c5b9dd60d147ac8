// Package collections provides functions for moving elements between
// plain slices and the vectors of package vec.
package collections

import "github.com/adobaai/vec"

// Filter iterates over items, returning an array of all items predicate returns truthy for.
func Filter[V any](items []V, predicate func(it V) bool) []V {
	result := make([]V, 0, len(items))
	for _, it := range items {
		if predicate(it) {
			result = append(result, it)
		}
	}
	return result
}

// Map returns a slice containing the results of applying the given transform function
// to each item in the original slice.
func Map[T, R any](items []T, transform func(it T) R) []R {
	res := make([]R, len(items))
	for i, item := range items {
		res[i] = transform(item)
	}
	return res
}

// FromSlice pushes items into a new vector in order.
// On error the partially filled vector is returned with it.
func FromSlice[T any](items []T, opts ...vec.Option) (*vec.Vec[T], error) {
	v := vec.NewVec[T](opts...)
	for _, it := range items {
		if err := v.Push(it); err != nil {
			return v, err
		}
	}
	return v, nil
}

// Collect reads the elements of v by index, first to last. v is not modified.
func Collect[T any](v *vec.Vec[T]) []T {
	res := make([]T, 0, v.Len())
	for i := range v.Len() {
		it, _ := v.Get(i) // i < Len
		res = append(res, it)
	}
	return res
}

// Drain pops every element of v, so the result is in reverse push order.
// The capacity of v is kept.
func Drain[T any](v *vec.Vec[T]) []T {
	res := make([]T, 0, v.Len())
	for {
		it, err := v.Pop()
		if err != nil {
			return res
		}
		res = append(res, it)
	}
}

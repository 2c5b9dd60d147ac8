// Package vec provides a homogeneous growable vector.
//
// [Array] stores elements of a size chosen at runtime as raw bytes,
// [Vec] is the typed variant. Both grow to 16 elements on the first push
// and double their capacity whenever they are full. Neither ever shrinks.
package vec

import (
	"fmt"
	"unsafe"
)

// Vec is a growable array of T values.
// It follows the same growth policy and error semantics as [Array].
type Vec[T any] struct {
	length   int
	capacity int
	items    []T
	maxBytes int
}

// NewVec returns an empty vector. It does not allocate.
func NewVec[T any](opts ...Option) *Vec[T] {
	o := newOptions(opts)
	return &Vec[T]{maxBytes: o.maxBytes}
}

func (v *Vec[T]) Len() int { return v.length }

func (v *Vec[T]) Cap() int { return v.capacity }

// Get returns the element at index.
func (v *Vec[T]) Get(index int) (res T, err error) {
	if index < 0 || index >= v.length {
		err = fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, v.length)
		return
	}
	return v.items[index], nil
}

// Push appends it, growing the storage when the vector is full.
func (v *Vec[T]) Push(it T) error {
	if v.length == v.capacity {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.items[v.length] = it
	v.length++
	return nil
}

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (res T, err error) {
	if v.length == 0 {
		err = ErrEmpty
		return
	}
	v.length--
	res = v.items[v.length]
	var zero T
	v.items[v.length] = zero // Do not pin popped values
	return res, nil
}

// Drop releases the storage. It is safe to call more than once.
func (v *Vec[T]) Drop() {
	v.items = nil
	v.length = 0
	v.capacity = 0
}

func (v *Vec[T]) grow() error {
	n, ok := nextCap(v.capacity)
	if !ok {
		return fmt.Errorf("%w: capacity %d cannot double", ErrAllocation, v.capacity)
	}
	var zero T
	if _, err := byteSize(n, int(unsafe.Sizeof(zero)), v.maxBytes); err != nil {
		return err
	}
	items, err := realloc(v.items, v.length, n)
	if err != nil {
		return err
	}
	v.items, v.capacity = items, n
	return nil
}

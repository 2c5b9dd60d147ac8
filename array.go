package vec

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrIndexOutOfBounds is returned when reading past the last element.
	ErrIndexOutOfBounds = errors.New("vec: index out of bounds")
	// ErrEmpty is returned when popping from an array without elements.
	ErrEmpty = errors.New("vec: empty array")
	// ErrAllocation is returned when the storage cannot grow.
	ErrAllocation = errors.New("vec: allocation failure")
)

// Array is a growable array of fixed-size elements stored as raw bytes.
//
// Element i occupies buf[i*elemSize : (i+1)*elemSize].
// Push may replace the storage, so slices into it must not be kept across calls.
// An Array is not safe for concurrent use.
type Array struct {
	elemSize int
	length   int
	capacity int
	buf      []byte // nil iff capacity == 0
	maxBytes int
}

// New returns an empty array whose elements are elemSize bytes long.
// It does not allocate. elemSize must be positive.
func New(elemSize int, opts ...Option) *Array {
	o := newOptions(opts)
	return &Array{
		elemSize: elemSize,
		maxBytes: o.maxBytes,
	}
}

// With creates an array, passes it to f and drops it when f returns or panics.
func With(elemSize int, f func(a *Array) error, opts ...Option) error {
	a := New(elemSize, opts...)
	defer a.Drop()
	return f(a)
}

// ElemSize returns the size of one element in bytes.
func (a *Array) ElemSize() int { return a.elemSize }

// Len returns the number of stored elements.
func (a *Array) Len() int { return a.length }

// Cap returns the number of elements the current storage can hold.
func (a *Array) Cap() int { return a.capacity }

// Get copies the element at index into out.
// On error neither out nor the array is modified.
func (a *Array) Get(index int, out []byte) error {
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, a.length)
	}
	if err := a.checkBuf(out, "out"); err != nil {
		return err
	}
	copy(out[:a.elemSize], a.slot(index))
	return nil
}

// Push appends a copy of elem[:ElemSize()].
// When the array is full the storage grows to max(16, Cap()*2) first;
// if that fails the array is left as it was.
func (a *Array) Push(elem []byte) error {
	if err := a.checkBuf(elem, "elem"); err != nil {
		return err
	}
	if a.length == a.capacity {
		if err := a.grow(); err != nil {
			return err
		}
	}
	copy(a.slot(a.length), elem[:a.elemSize])
	a.length++
	return nil
}

// Pop moves the last element into out. The capacity is kept.
func (a *Array) Pop(out []byte) error {
	if a.length == 0 {
		return ErrEmpty
	}
	if err := a.checkBuf(out, "out"); err != nil {
		return err
	}
	copy(out[:a.elemSize], a.slot(a.length-1))
	a.length--
	return nil
}

// Drop releases the storage and resets the array to its empty state.
// It is safe to call more than once, and the array may be pushed to again afterwards.
func (a *Array) Drop() {
	a.buf = nil
	a.length = 0
	a.capacity = 0
}

func (a *Array) slot(i int) []byte {
	off := i * a.elemSize
	return a.buf[off : off+a.elemSize]
}

func (a *Array) checkBuf(b []byte, name string) error {
	if len(b) < a.elemSize {
		return fmt.Errorf("vec: %s has %d bytes, need %d: %w",
			name, len(b), a.elemSize, io.ErrShortBuffer)
	}
	return nil
}

func (a *Array) grow() error {
	n, ok := nextCap(a.capacity)
	if !ok {
		return fmt.Errorf("%w: capacity %d cannot double", ErrAllocation, a.capacity)
	}
	size, err := byteSize(n, a.elemSize, a.maxBytes)
	if err != nil {
		return err
	}
	buf, err := realloc(a.buf, a.length*a.elemSize, size)
	if err != nil {
		return err
	}
	a.buf, a.capacity = buf, n
	return nil
}

// Package testingz provides assertions for the value and error pairs
// returned by the code under test.
package testingz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Result holds a (value, error) pair so that it can be checked in one expression:
//
//	R(v.Get(0)).NoError(t).Equal(42)
type Result[T any] struct {
	t   *testing.T
	v   T
	err error
}

func R[T any](v T, err error) *Result[T] {
	return &Result[T]{
		v:   v,
		err: err,
	}
}

func (r *Result[T]) V() T {
	return r.v
}

func (r *Result[T]) NoError(t *testing.T, msgf ...any) *Result[T] {
	t.Helper()
	require.NoError(t, r.err, msgf...)
	r.t = t
	return r
}

// ErrorIs requires the error to match target. The value must then be the zero T.
func (r *Result[T]) ErrorIs(t *testing.T, target error, msgf ...any) *Result[T] {
	t.Helper()
	require.ErrorIs(t, r.err, target, msgf...)
	require.Zero(t, r.v, "a failed call must return the zero value")
	r.t = t
	return r
}

func (r *Result[T]) Equal(v T, msgf ...any) *Result[T] {
	r.t.Helper()
	require.Equal(r.t, v, r.v, msgf...)
	return r
}

func (r *Result[T]) Do(f func(t *testing.T, it T)) *Result[T] {
	f(r.t, r.v)
	return r
}

// Err is the [Result] of a call that only returns an error.
type Err struct {
	err error
}

func E(err error) Err {
	return Err{err: err}
}

func (e Err) NoError(t *testing.T, msgf ...any) {
	t.Helper()
	require.NoError(t, e.err, msgf...)
}

func (e Err) ErrorIs(t *testing.T, target error, msgf ...any) {
	t.Helper()
	require.ErrorIs(t, e.err, target, msgf...)
}

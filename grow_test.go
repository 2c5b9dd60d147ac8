package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCap(t *testing.T) {
	type args struct {
		c int
	}
	tests := []struct {
		name   string
		args   args
		want   int
		wantOK bool
	}{
		{"zero", args{0}, 16, true},
		{"one", args{1}, 16, true},
		{"eight", args{8}, 16, true},
		{"min", args{16}, 32, true},
		{"odd", args{17}, 34, true},
		{"large", args{1 << 20}, 1 << 21, true},
		{"half", args{math.MaxInt / 2}, math.MaxInt - 1, true},
		{"overflow", args{math.MaxInt/2 + 1}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextCap(tt.args.c)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("nextCap() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestByteSize(t *testing.T) {
	n, err := byteSize(16, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	n, err = byteSize(16, 4, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	_, err = byteSize(16, 4, 63)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = byteSize(1<<40, 1<<40, 0)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.ErrorContains(t, err, "overflow")

	// Fits in uint but not in int.
	_, err = byteSize(math.MaxInt/2+1, 2, 0)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestRealloc(t *testing.T) {
	old := []int{1, 2, 3, 0}
	buf, err := realloc(old, 3, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0, 0, 0}, buf)

	buf[0] = 9
	assert.Equal(t, 1, old[0], "the new buffer must not alias the old one")

	buf, err = realloc(old, 3, math.MaxInt)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Nil(t, buf)
	assert.Equal(t, []int{1, 2, 3, 0}, old)
}

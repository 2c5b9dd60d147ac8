package vec

import (
	"fmt"
	"math"
	"math/bits"
)

// MinCap is the capacity of the first allocation.
const MinCap = 16

// nextCap returns the capacity after one growth step from c: max(MinCap, c*2).
// ok is false when doubling would overflow int.
func nextCap(c int) (n int, ok bool) {
	if c > math.MaxInt/2 {
		return 0, false
	}
	return max(MinCap, c*2), true
}

// byteSize returns n*elemSize, reporting an overflow or a size over maxBytes as [ErrAllocation].
func byteSize(n, elemSize, maxBytes int) (int, error) {
	hi, lo := bits.Mul(uint(n), uint(elemSize))
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("%w: %d elements of %d bytes overflow", ErrAllocation, n, elemSize)
	}
	size := int(lo)
	if maxBytes > 0 && size > maxBytes {
		return 0, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, size, maxBytes)
	}
	return size, nil
}

// realloc returns a new buffer of n items holding a copy of old[:used].
// The old buffer is never modified, so a failure leaves the caller's state intact.
func realloc[E any](old []E, used, n int) (buf []E, err error) {
	defer func() {
		// makeslice panics when the runtime refuses the length
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	buf = make([]E, n)
	copy(buf, old[:used])
	return buf, nil
}

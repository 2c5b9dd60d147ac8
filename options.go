package vec

type options struct {
	maxBytes int
}

// Option configures an [Array] or a [Vec].
type Option func(o *options)

// WithMaxBytes limits the size of a single allocation to n bytes.
// A growth that would need more fails with [ErrAllocation].
// Zero or a negative n means no limit.
func WithMaxBytes(n int) Option {
	return func(o *options) {
		o.maxBytes = max(n, 0)
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

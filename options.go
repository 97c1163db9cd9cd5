package objmesh

import "runtime"

// Option configures [Import]. Options are applied in order.
type Option func(*options)

// WithBatchSize sets the approximate byte length of each span the producer
// cuts from the mapped input before extending to the next newline.
//
// # Default
//
// 256 KiB.
//
// Smaller batches increase producer overhead (one linear counting pass per
// batch) and ring churn; larger batches reduce parallelism granularity and
// can starve consumers near the end of the file. 256 KiB balances the two
// for multi-gigabyte inputs on typical hardware.
//
// Values <= 0 use the default.
func WithBatchSize(n int) Option {
	return func(o *options) {
		o.BatchSize = n
	}
}

// WithNumConsumers sets the number of consumer goroutines draining the
// ring.
//
// # Default
//
// max(2, GOMAXPROCS-4), reserving headroom for the producer and the
// calling goroutine.
//
// Values <= 0 use the default.
func WithNumConsumers(n int) Option {
	return func(o *options) {
		o.NumConsumers = n
	}
}

// WithQueueCapacity sets the ring buffer's slot count, rounded up to the
// next power of two.
//
// # Default
//
// 4 × NumConsumers.
//
// Values <= 0 use the default.
func WithQueueCapacity(n int) Option {
	return func(o *options) {
		o.QueueCapacity = n
	}
}

type options struct {
	BatchSize     int
	NumConsumers  int
	QueueCapacity int
}

const defaultBatchSize = 256 * 1024

// applyOptions merges option values and applies defaults.
func applyOptions(opts []Option) options {
	cfg := options{}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	if cfg.NumConsumers <= 0 {
		cfg.NumConsumers = defaultNumConsumers()
	}

	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = 4 * cfg.NumConsumers
	}

	return cfg
}

// defaultNumConsumers returns max(2, GOMAXPROCS-4), reserving cores for the
// producer goroutine and the caller.
func defaultNumConsumers() int {
	return max(2, runtime.GOMAXPROCS(0)-4)
}

package clip

// BatchOption configures a batch clipping run.
//
// Example:
//
//	// Liang-Barsky on 4 goroutines
//	res, err := clip.ClipSegments(segs, win,
//	    clip.WithAlgorithm(clip.AlgorithmLiangBarsky),
//	    clip.WithWorkers(4))
type BatchOption func(*batchOptions)

// batchOptions holds optional configuration for batch runs.
type batchOptions struct {
	algorithm Algorithm
	workers   int
}

// defaultBatchOptions returns the default batch options.
func defaultBatchOptions() batchOptions {
	return batchOptions{
		algorithm: AlgorithmCohenSutherland,
		workers:   0, // GOMAXPROCS
	}
}

// WithAlgorithm selects the rectangle clipping algorithm used by
// ClipSegments. Polygon batches ignore it.
func WithAlgorithm(a Algorithm) BatchOption {
	return func(o *batchOptions) {
		o.algorithm = a
	}
}

// WithWorkers sets the number of goroutines used by a batch.
// Zero or negative means GOMAXPROCS; 1 runs the batch on the caller's
// goroutine.
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		o.workers = n
	}
}

func applyBatchOptions(opts []BatchOption) batchOptions {
	o := defaultBatchOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

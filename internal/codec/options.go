package codec

import (
	"github.com/roach88/exprgrid/internal/catalog"
	"github.com/roach88/exprgrid/internal/verify"
)

const (
	// DefaultWidth is the default row width.
	DefaultWidth = 8

	// DefaultPoolSize is the default number of distinct expressions the
	// encoder cycles through for 1-bits.
	DefaultPoolSize = 8
)

type options struct {
	width     int
	poolSize  int
	tolerance float64
	cat       *catalog.Catalog
}

// Option configures Encode and Decode. Configuration is per call; the
// codec holds no process-wide mutable state.
type Option func(*options)

// WithWidth sets the grid row width.
func WithWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
	}
}

// WithPoolSize sets how many distinct expressions the encoder draws for
// 1-bits.
func WithPoolSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.poolSize = size
		}
	}
}

// WithTolerance sets the verification tolerance used by Decode and by the
// encoder's pool generation.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

// WithCatalog sets the catalog backing the encoder's diversity pool.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(o *options) {
		if cat != nil {
			o.cat = cat
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		width:     DefaultWidth,
		poolSize:  DefaultPoolSize,
		tolerance: verify.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package accuracy

// Config defines the sampled interval and filtering of a measurement.
type Config struct {
	Min     float64
	Max     float64
	Samples int

	// MaxReference skips samples whose reference magnitude exceeds it,
	// which keeps poles out of the statistics. Zero disables the filter.
	MaxReference float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig samples [-10, 10] at 100001 points.
func DefaultConfig() Config {
	return Config{
		Min:     -10,
		Max:     10,
		Samples: 100001,
	}
}

// WithRange sets the sampled interval.
func WithRange(lo, hi float64) Option {
	return func(cfg *Config) {
		cfg.Min = lo
		cfg.Max = hi
	}
}

// WithSamples sets the number of grid points.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Samples = n
		}
	}
}

// WithMaxReference skips samples where |ref(x)| > v.
func WithMaxReference(v float64) Option {
	return func(cfg *Config) {
		if v >= 0 {
			cfg.MaxReference = v
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

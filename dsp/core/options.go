package core

// LoopConfig describes the fixed-rate loop a filter or generator runs in.
type LoopConfig struct {
	SampleRate float64
	BlockSize  int
}

// LoopOption mutates a LoopConfig.
type LoopOption func(*LoopConfig)

// DefaultLoopConfig returns a 10 kHz control loop processed in blocks of 256.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		SampleRate: 10000,
		BlockSize:  256,
	}
}

// SamplePeriod returns the time between two consecutive ticks in seconds.
func (c LoopConfig) SamplePeriod() float64 {
	return 1 / c.SampleRate
}

// WithSampleRate sets the loop rate in Hz.
func WithSampleRate(sampleRate float64) LoopOption {
	return func(cfg *LoopConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSamplePeriod sets the loop rate from its period in seconds.
func WithSamplePeriod(ts float64) LoopOption {
	return func(cfg *LoopConfig) {
		if ts > 0 {
			cfg.SampleRate = 1 / ts
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) LoopOption {
	return func(cfg *LoopConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyLoopOptions applies zero or more options to the default config.
func ApplyLoopOptions(opts ...LoopOption) LoopConfig {
	cfg := DefaultLoopConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

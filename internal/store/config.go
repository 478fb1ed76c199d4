package store

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DefaultInitialCapacity = 16
	DefaultLoadFactor      = 0.75
)

var (
	ErrInvalidCapacity   = errors.New("initial capacity must be positive")
	ErrInvalidLoadFactor = errors.New("load factor must be a positive finite number")
)

// Config fixes the shape of a HashTable at construction. Neither value can
// be changed for the lifetime of the table.
type Config struct {
	InitialCapacity int
	LoadFactor      float64
}

func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		LoadFactor:      DefaultLoadFactor,
	}
}

// Validate reports every invalid field, not just the first one.
func (c Config) Validate() error {
	var err error
	if c.InitialCapacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.InitialCapacity))
	}
	if c.LoadFactor <= 0 || math.IsNaN(c.LoadFactor) || math.IsInf(c.LoadFactor, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, c.LoadFactor))
	}
	return err
}

type options struct {
	logger *zap.Logger
}

type Option func(*options)

// WithLogger makes the table report growth steps at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

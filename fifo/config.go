// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fifo

import (
	"github.com/db47h/fifosim/internal/lap"
	"github.com/pkg/errors"
)

// ErrConfig is the cause of all configuration errors returned by New and
// Config.Validate. Use errors.Cause to test for it.
//
var ErrConfig = errors.New("invalid FIFO configuration")

// MaxWidth is the maximum element width in bits.
//
const MaxWidth = 64

// Config holds the construction parameters of a FIFO.
//
type Config struct {
	// Number of slots. Must be a power of two.
	Depth int
	// Element width in bits, 1 to MaxWidth.
	Width int
}

// Validate checks that c describes a valid FIFO.
//
func (c Config) Validate() error {
	switch {
	case c.Depth <= 0:
		return errors.Wrapf(ErrConfig, "depth %d: must be positive", c.Depth)
	case !lap.IsPow2(uint64(c.Depth)):
		return errors.Wrapf(ErrConfig, "depth %d: not a power of two (next is %d)", c.Depth, lap.RoundUp(uint64(c.Depth)))
	case c.Width <= 0:
		return errors.Wrapf(ErrConfig, "width %d: must be positive", c.Width)
	case c.Width > MaxWidth:
		return errors.Wrapf(ErrConfig, "width %d: larger than %d bits", c.Width, MaxWidth)
	}
	return nil
}

// mask returns the bit mask for c.Width bits.
//
func (c Config) mask() uint64 {
	if c.Width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(c.Width) - 1
}

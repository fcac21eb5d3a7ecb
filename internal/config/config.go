// Package config stores the user's preferences as a small fixed-width
// binary record: the color toggle and the default listing period.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pnch-cli/pnch/internal/clock"
	"github.com/pnch-cli/pnch/internal/codec"
	"github.com/pnch-cli/pnch/internal/storage"
)

const (
	printColorSize = 1
	periodSize     = 4

	// Size is the fixed width of the encoded config record.
	Size = printColorSize + periodSize

	fileName = "config.db"
)

// ErrInvalidKey reports a config key the tracker does not know.
var ErrInvalidKey = errors.New("invalid config key")

// Config is the singleton preference record.
type Config struct {
	dir storage.Dir

	PrintColor      bool
	LsDefaultPeriod clock.Period
}

// Load reads the config database from dir. A missing or empty file
// yields the defaults: colored output and a 14 day listing window.
func Load(dir storage.Dir) (*Config, error) {
	blob, err := dir.Load(fileName)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		dir:             dir,
		PrintColor:      true,
		LsDefaultPeriod: clock.PeriodOfDays(14),
	}
	if len(blob) == 0 {
		return cfg, nil
	}
	if len(blob) != Size {
		return nil, codec.WrongByteLen("config", len(blob), Size)
	}
	cfg.PrintColor = blob[0] != 0
	cfg.LsDefaultPeriod = clock.PeriodOfDays(binary.LittleEndian.Uint32(blob[printColorSize:]))
	return cfg, nil
}

// Save rewrites the config database. The period persists as its day
// count, whatever unit it was set with.
func (c *Config) Save() error {
	blob := make([]byte, 0, Size)
	if c.PrintColor {
		blob = append(blob, 1)
	} else {
		blob = append(blob, 0)
	}
	blob = binary.LittleEndian.AppendUint32(blob, c.LsDefaultPeriod.Days())
	return c.dir.Save(fileName, blob)
}

// TrySet parses and applies one key/value setting.
func (c *Config) TrySet(key, value string) error {
	switch key {
	case "print-color":
		switch value {
		case "true":
			c.PrintColor = true
		case "false":
			c.PrintColor = false
		default:
			return fmt.Errorf("cannot parse the bool %q: the value should be one of `true` or `false`", value)
		}
	case "ls-default-period":
		period, err := clock.ParsePeriod(value)
		if err != nil {
			return err
		}
		c.LsDefaultPeriod = period
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/glxbind/glxbind/xevent"
)

type config struct {
	// Display is the X display name; empty means $DISPLAY.
	Display string `toml:"display"`
	// Backend is "xlib" or "xgb".
	Backend string `toml:"backend"`
	// Window to watch. Zero creates a window.
	Window uint32 `toml:"window"`
	// Mask lists event mask bits by name, for example "Exposure".
	Mask []string `toml:"mask"`
	// PollInterval is the longest wait between two polls, in milliseconds.
	PollInterval int `toml:"poll_interval_ms"`
}

func defaultConfig() config {
	return config{
		Backend:      "xlib",
		Mask:         []string{"KeyPress", "KeyRelease", "ButtonPress", "ButtonRelease", "Exposure", "StructureNotify", "FocusChange"},
		PollInterval: 50,
	}
}

// loadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return config{}, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	return conf, nil
}

// validate checks c and returns its event mask bits.
func (c config) validate() ([]xevent.Bit, error) {
	switch c.Backend {
	case "xlib", "xgb":
	default:
		return nil, fmt.Errorf("invalid backend %q", c.Backend)
	}
	if c.PollInterval <= 0 {
		return nil, errors.New("poll_interval_ms must be positive")
	}
	return c.bits()
}

func (c config) bits() ([]xevent.Bit, error) {
	bits := make([]xevent.Bit, 0, len(c.Mask))
	for _, name := range c.Mask {
		b, err := xevent.ParseBit(name)
		if err != nil {
			return nil, err
		}
		bits = append(bits, b)
	}
	return bits, nil
}

func (c config) interval() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}

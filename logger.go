package main

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger builds the root logger every component derives its named logger from
func newLogger(level string, w io.Writer) (hclog.Logger, error) {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q (use trace, debug, info, warn or error)", level)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "focus-wave",
		Level:  lvl,
		Output: w,
	}), nil
}

// errors.go - error kinds (§7)

package main

import (
	"errors"
	"strconv"
)

// ErrUndoEmpty is returned by the undo journal when a reverse step is
// requested with nothing left to pop (§7 "Undo buffer empty").
var ErrUndoEmpty = errors.New("undo: buffer empty")

// ConfigError wraps a startup configuration failure (missing ROM/GROM,
// wrong length). The engine refuses to start when one is returned; this is
// the only error class surfaced to the host caller (§7 Policy).
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return "ti99: " + e.Op + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(op string, err error) error {
	return &ConfigError{Op: op, Err: err}
}

// lengthError reports an image whose byte length didn't match what the ROM
// layout (§6) requires.
type lengthError struct {
	what     string
	got, want int
}

func (e *lengthError) Error() string {
	return e.what + ": expected " + strconv.Itoa(e.want) + " bytes, got " + strconv.Itoa(e.got)
}

// Package sensor defines the sample shape produced by the motion peripheral
// and the reader boundary the engine polls once per tick.
package sensor

import "errors"

// ErrFetch marks a transient bus-level failure while reading the peripheral.
// The engine skips the affected tick and keeps all persistent state.
var ErrFetch = errors.New("sensor fetch failed")

// Sample is one immutable snapshot of the peripheral, taken once per poll
// tick and consumed immediately.
//
// Joystick axes are raw 8-bit values centered around 127. Accelerometer axes
// are raw 10-bit values centered around 512. Buttons are true while pressed.
type Sample struct {
	JoyX, JoyY             uint8
	AccelX, AccelY, AccelZ uint16
	ButtonC, ButtonZ       bool
}

// Reader produces one Sample per call. Implementations own their bus access
// and retry policy; a failed read is reported as an error wrapping ErrFetch.
type Reader interface {
	Read() (Sample, error)
}

package engine

import (
	"math"

	"github.com/Alia5/NAVCHUK/sensor"
)

const (
	joyCenter   = 127
	joyHalf     = 127
	accelCenter = 512
	accelHalf   = 512
)

// Intent is the normalized per-tick deflection derived from one sample.
// DX/DY come from the joystick, TX/TY from accelerometer tilt. All values
// are in [-1, 1]; anything inside the deadzone is exactly zero.
type Intent struct {
	DX, DY float64
	TX, TY float64
}

// Mapper converts raw axis values into normalized directional intents.
// It is a pure transform; identical samples map to identical intents.
type Mapper struct {
	deadzone float64
}

// NewMapper returns a Mapper with the given deadzone radius in [0, 1).
func NewMapper(deadzone float64) Mapper {
	return Mapper{deadzone: deadzone}
}

// Map normalizes the joystick and tilt axes of a sample.
//
// Tilt axes are always computed even though navigation from them is
// disabled; the resolver is what ignores them.
func (m Mapper) Map(s sensor.Sample) Intent {
	return Intent{
		DX: m.normalize(float64(s.JoyX)-joyCenter, joyHalf),
		DY: m.normalize(float64(s.JoyY)-joyCenter, joyHalf),
		TX: m.normalize(float64(s.AccelX)-accelCenter, accelHalf),
		TY: m.normalize(float64(s.AccelY)-accelCenter, accelHalf),
	}
}

// normalize scales a centered raw value to [-1, 1], clamps it, zeroes it
// inside the deadzone, and linearly rescales the remainder so the deadzone
// edge maps to 0 and full deflection to ±1. The rescale avoids a value jump
// when crossing the deadzone boundary.
func (m Mapper) normalize(centered, half float64) float64 {
	n := centered / half
	n = math.Max(-1, math.Min(1, n))
	mag := math.Abs(n)
	if mag < m.deadzone {
		return 0
	}
	scaled := (mag - m.deadzone) / (1 - m.deadzone)
	return math.Copysign(scaled, n)
}

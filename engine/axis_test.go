package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/NAVCHUK/sensor"
)

func TestMapperDeadzoneIsExactlyZero(t *testing.T) {
	m := NewMapper(0.2)
	for raw := 0; raw <= 255; raw++ {
		in := m.Map(sensor.Sample{JoyX: uint8(raw), JoyY: 127})
		n := (float64(raw) - 127) / 127
		if math.Abs(n) < 0.2 {
			assert.Zero(t, in.DX, "raw %d is inside the deadzone", raw)
		}
	}
}

func TestMapperFullDeflection(t *testing.T) {
	m := NewMapper(0.2)

	in := m.Map(sensor.Sample{JoyX: 255, JoyY: 0})
	assert.InDelta(t, 1, in.DX, 1e-9)
	assert.InDelta(t, -1, in.DY, 1e-9)

	center := m.Map(sensor.Sample{JoyX: 127, JoyY: 127})
	assert.Zero(t, center.DX)
	assert.Zero(t, center.DY)
}

func TestMapperNoJumpAtDeadzoneBoundary(t *testing.T) {
	m := NewMapper(0.2)

	// Per-unit slope of the rescaled range, with headroom for rounding.
	slope := (1.0 / 127) / (1 - 0.2)

	prev := m.Map(sensor.Sample{JoyX: 0, JoyY: 127}).DX
	for raw := 1; raw <= 255; raw++ {
		cur := m.Map(sensor.Sample{JoyX: uint8(raw), JoyY: 127}).DX
		assert.LessOrEqual(t, math.Abs(cur-prev), slope+1e-9,
			"discontinuity between raw %d and %d", raw-1, raw)
		prev = cur
	}
}

func TestMapperIsDeterministic(t *testing.T) {
	m := NewMapper(0.15)
	s := sensor.Sample{JoyX: 203, JoyY: 42, AccelX: 700, AccelY: 300, AccelZ: 512}
	assert.Equal(t, m.Map(s), m.Map(s))
}

func TestMapperTiltAxes(t *testing.T) {
	m := NewMapper(0.2)

	level := m.Map(sensor.Sample{JoyX: 127, JoyY: 127, AccelX: 512, AccelY: 512})
	assert.Zero(t, level.TX)
	assert.Zero(t, level.TY)

	tilted := m.Map(sensor.Sample{JoyX: 127, JoyY: 127, AccelX: 1023, AccelY: 0})
	assert.Greater(t, tilted.TX, 0.9)
	assert.InDelta(t, -1, tilted.TY, 1e-9)

	// Out-of-range raw values clamp instead of failing.
	glitch := m.Map(sensor.Sample{JoyX: 127, JoyY: 127, AccelX: 4095})
	assert.InDelta(t, 1, glitch.TX, 1e-9)
}

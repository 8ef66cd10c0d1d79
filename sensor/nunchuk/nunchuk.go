// Package nunchuk reads and decodes the Wii Nunchuk peripheral: a 2-axis
// joystick, a 3-axis accelerometer and the C and Z buttons, reported as a
// 6-byte frame over I2C.
package nunchuk

import (
	"fmt"
	"time"

	"github.com/Alia5/NAVCHUK/internal/log"
	"github.com/Alia5/NAVCHUK/sensor"
)

// Addr is the fixed I2C slave address of the Nunchuk.
const Addr = 0x52

// FrameLen is the length of one sensor report.
const FrameLen = 6

// Conversion time between the pointer reset and the frame read. The
// controller NACKs reads that come in faster.
const readDelay = 200 * time.Microsecond

// Bus is the low-level transport the reader talks through. Implementations
// own addressing and their own retry policy.
type Bus interface {
	Write(p []byte) error
	Read(p []byte) error
}

// Nunchuk polls the peripheral and decodes its frames into samples.
type Nunchuk struct {
	bus    Bus
	frames log.FrameLogger
}

// New returns a Nunchuk reading from bus. Raw frames are passed to the
// frame logger before decoding.
func New(bus Bus, frames log.FrameLogger) *Nunchuk {
	return &Nunchuk{bus: bus, frames: frames}
}

// Init switches the controller into unencrypted mode. Without this
// handshake the controller answers every read with 0xFF.
func (n *Nunchuk) Init() error {
	if err := n.bus.Write([]byte{0xF0, 0x55}); err != nil {
		return fmt.Errorf("init handshake: %w", err)
	}
	if err := n.bus.Write([]byte{0xFB, 0x00}); err != nil {
		return fmt.Errorf("disable encryption: %w", err)
	}
	return nil
}

// Read fetches and decodes one sample. Bus failures are reported as
// transient fetch errors; the engine skips the tick and keeps its state.
func (n *Nunchuk) Read() (sensor.Sample, error) {
	if err := n.bus.Write([]byte{0x00}); err != nil {
		return sensor.Sample{}, fmt.Errorf("%w: reset read pointer: %w", sensor.ErrFetch, err)
	}
	time.Sleep(readDelay)

	frame := make([]byte, FrameLen)
	if err := n.bus.Read(frame); err != nil {
		return sensor.Sample{}, fmt.Errorf("%w: read frame: %w", sensor.ErrFetch, err)
	}
	n.frames.Log(frame)
	return DecodeFrame(frame)
}

// DecodeFrame unpacks a raw 6-byte Nunchuk report.
//
// Frame layout:
//
//	Byte 0: joystick X (0-255)
//	Byte 1: joystick Y (0-255)
//	Byte 2: accel X bits 9-2
//	Byte 3: accel Y bits 9-2
//	Byte 4: accel Z bits 9-2
//	Byte 5: bit 0 = Z button (active low), bit 1 = C button (active low),
//	        bits 2-3/4-5/6-7 = accel X/Y/Z bits 1-0
func DecodeFrame(frame []byte) (sensor.Sample, error) {
	if len(frame) != FrameLen {
		return sensor.Sample{}, fmt.Errorf("%w: short frame: %d bytes", sensor.ErrFetch, len(frame))
	}
	tail := frame[5]
	return sensor.Sample{
		JoyX:    frame[0],
		JoyY:    frame[1],
		AccelX:  uint16(frame[2])<<2 | uint16(tail>>2)&0x3,
		AccelY:  uint16(frame[3])<<2 | uint16(tail>>4)&0x3,
		AccelZ:  uint16(frame[4])<<2 | uint16(tail>>6)&0x3,
		ButtonZ: tail&0x01 == 0,
		ButtonC: tail&0x02 == 0,
	}, nil
}

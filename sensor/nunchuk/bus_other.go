//go:build !linux

package nunchuk

import "errors"

// I2CBus is only available on Linux.
type I2CBus struct{}

// OpenI2C reports that the I2C character device bus is Linux-only.
func OpenI2C(device string, addr uint8) (*I2CBus, error) {
	return nil, errors.New("i2c device bus is only supported on linux")
}

func (b *I2CBus) Write(p []byte) error { return errors.New("not supported") }
func (b *I2CBus) Read(p []byte) error  { return errors.New("not supported") }
func (b *I2CBus) Close() error         { return nil }

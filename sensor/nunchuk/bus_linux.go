//go:build linux

package nunchuk

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// I2C_SLAVE ioctl from linux/i2c-dev.h.
const i2cSlave = 0x0703

// I2CBus is a Bus over a Linux I2C character device (/dev/i2c-N).
type I2CBus struct {
	f *os.File
}

// OpenI2C opens the device file and binds it to the given slave address.
func OpenI2C(device string, addr uint8) (*I2CBus, error) {
	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open i2c device: %w", err)
	}
	if err := unix.IoctlSetInt(int(f.Fd()), i2cSlave, int(addr)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("set i2c slave address %#02x: %w", addr, err)
	}
	return &I2CBus{f: f}, nil
}

// Write implements Bus.
func (b *I2CBus) Write(p []byte) error {
	if _, err := b.f.Write(p); err != nil {
		return fmt.Errorf("i2c write: %w", err)
	}
	return nil
}

// Read implements Bus.
func (b *I2CBus) Read(p []byte) error {
	n, err := b.f.Read(p)
	if err != nil {
		return fmt.Errorf("i2c read: %w", err)
	}
	if n < len(p) {
		return fmt.Errorf("i2c read: %w", io.ErrUnexpectedEOF)
	}
	return nil
}

// Close releases the device file.
func (b *I2CBus) Close() error {
	return b.f.Close()
}

// Package cmd contains the kong command implementations for the navchuk
// binary.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/NAVCHUK/engine"
	"github.com/Alia5/NAVCHUK/hid"
	"github.com/Alia5/NAVCHUK/hid/gadget"
	"github.com/Alia5/NAVCHUK/internal/log"
	"github.com/Alia5/NAVCHUK/sensor/nunchuk"
)

// Run is the daemon command: poll the peripheral and translate its readings
// into HID navigation events until interrupted.
type Run struct {
	Tuning engine.Tuning `embed:"" prefix:"engine."`

	I2CDevice        string `help:"I2C character device the peripheral is wired to" default:"/dev/i2c-1" env:"NAVCHUK_I2C_DEVICE"`
	MouseEndpoint    string `help:"HID gadget endpoint for mouse reports" default:"/dev/hidg0" env:"NAVCHUK_MOUSE_ENDPOINT"`
	KeyboardEndpoint string `help:"HID gadget endpoint for keyboard reports" default:"/dev/hidg1" env:"NAVCHUK_KEYBOARD_ENDPOINT"`
	DryRun           bool   `help:"Resolve actions without emitting HID reports"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, frames log.FrameLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Start(ctx, logger, frames)
}

// Start wires the bus, the sensor reader and the HID emitter together and
// runs the engine loop until ctx is cancelled.
func (r *Run) Start(ctx context.Context, logger *slog.Logger, frames log.FrameLogger) error {
	bus, err := nunchuk.OpenI2C(r.I2CDevice, nunchuk.Addr)
	if err != nil {
		return fmt.Errorf("open sensor bus: %w", err)
	}
	defer func() { _ = bus.Close() }()

	reader := nunchuk.New(bus, frames)
	if err := reader.Init(); err != nil {
		return fmt.Errorf("init peripheral: %w", err)
	}
	logger.Info("peripheral initialized", "device", r.I2CDevice, "addr", fmt.Sprintf("%#02x", nunchuk.Addr))

	var emitter hid.Emitter
	if r.DryRun {
		logger.Info("dry run, HID output disabled")
		emitter = hid.Nop{}
	} else {
		g, err := gadget.Open(r.MouseEndpoint, r.KeyboardEndpoint)
		if err != nil {
			return fmt.Errorf("open HID gadget: %w", err)
		}
		defer func() { _ = g.Close() }()
		emitter = g
	}

	eng := engine.New(reader, hid.NewTranslator(emitter), r.Tuning, logger)
	return eng.Run(ctx)
}

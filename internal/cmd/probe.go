package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/Alia5/NAVCHUK/engine"
	"github.com/Alia5/NAVCHUK/internal/log"
	"github.com/Alia5/NAVCHUK/sensor/nunchuk"
)

// Probe reads the peripheral and displays decoded samples, for checking
// wiring and calibration before running the daemon.
type Probe struct {
	Tuning engine.Tuning `embed:"" prefix:"engine."`

	I2CDevice string        `help:"I2C character device the peripheral is wired to" default:"/dev/i2c-1" env:"NAVCHUK_I2C_DEVICE"`
	Live      bool          `help:"Continuously display samples until 'q' is pressed"`
	Interval  time.Duration `help:"Refresh interval in live mode" default:"50ms"`
}

// Run is called by Kong when the probe command is executed.
func (p *Probe) Run(logger *slog.Logger, frames log.FrameLogger) error {
	bus, err := nunchuk.OpenI2C(p.I2CDevice, nunchuk.Addr)
	if err != nil {
		return fmt.Errorf("open sensor bus: %w", err)
	}
	defer func() { _ = bus.Close() }()

	reader := nunchuk.New(bus, frames)
	if err := reader.Init(); err != nil {
		return fmt.Errorf("init peripheral: %w", err)
	}

	if !p.Live {
		sample, err := reader.Read()
		if err != nil {
			return err
		}
		intent := engine.NewMapper(p.Tuning.Deadzone).Map(sample)
		fmt.Printf("joystick: x=%d y=%d (dx=%+.2f dy=%+.2f)\n", sample.JoyX, sample.JoyY, intent.DX, intent.DY)
		fmt.Printf("accel:    x=%d y=%d z=%d (tx=%+.2f ty=%+.2f)\n", sample.AccelX, sample.AccelY, sample.AccelZ, intent.TX, intent.TY)
		fmt.Printf("buttons:  C=%v Z=%v\n", sample.ButtonC, sample.ButtonZ)
		return nil
	}
	return p.live(reader)
}

// live renders a single status line in raw terminal mode, refreshed at the
// configured interval, including the navigation mode the engine would pick.
func (p *Probe) live(reader *nunchuk.Nunchuk) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	quit := make(chan struct{})
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buf); err != nil {
				close(quit)
				return
			}
			// q or Ctrl-C
			if buf[0] == 'q' || buf[0] == 0x03 {
				close(quit)
				return
			}
		}
	}()

	tracker := engine.NewTracker(p.Tuning.TapThreshold)
	mapper := engine.NewMapper(p.Tuning.Deadzone)
	resolver := engine.NewResolver(p.Tuning)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	fmt.Print("press q to quit\r\n")
	for {
		select {
		case <-quit:
			fmt.Print("\r\n")
			return nil
		case now := <-ticker.C:
			sample, err := reader.Read()
			if err != nil {
				fmt.Printf("\r\x1b[Kread error: %v", err)
				continue
			}
			mods := tracker.Update(sample.ButtonC, sample.ButtonZ, now)
			intent := mapper.Map(sample)
			resolver.Resolve(intent, mods)

			fmt.Printf("\r\x1b[Kjoy %3d/%3d dx=%+.2f dy=%+.2f | accel %4d/%4d/%4d | C=%v Z=%v | mode=%s",
				sample.JoyX, sample.JoyY, intent.DX, intent.DY,
				sample.AccelX, sample.AccelY, sample.AccelZ,
				sample.ButtonC, sample.ButtonZ, resolver.Mode())
		}
	}
}

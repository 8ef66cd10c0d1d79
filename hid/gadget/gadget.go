// Package gadget emits HID reports through the Linux USB gadget endpoint
// character devices (hidg). Descriptor registration with the host is done
// by the gadget setup outside this process; the report descriptors in
// hid/report are what that setup installs.
package gadget

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Alia5/NAVCHUK/hid"
	"github.com/Alia5/NAVCHUK/hid/report"
)

// Gadget writes mouse and keyboard reports to two gadget endpoints. Each
// emitter call produces exactly one report; button and key state persist
// across reports, deltas and wheels are one-shot.
type Gadget struct {
	mu    sync.Mutex
	mouse io.WriteCloser
	kbd   io.WriteCloser

	mouseState report.MouseState
	kbdState   report.KeyboardState
}

// Open opens the mouse and keyboard gadget endpoints, e.g. /dev/hidg0 and
// /dev/hidg1.
func Open(mousePath, kbdPath string) (*Gadget, error) {
	m, err := os.OpenFile(mousePath, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open mouse endpoint: %w", err)
	}
	k, err := os.OpenFile(kbdPath, os.O_WRONLY, 0)
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("open keyboard endpoint: %w", err)
	}
	return &Gadget{mouse: m, kbd: k}, nil
}

// NewWithWriters builds a Gadget over arbitrary writers, for tests.
func NewWithWriters(mouse, kbd io.WriteCloser) *Gadget {
	return &Gadget{mouse: mouse, kbd: kbd}
}

// Close releases all held buttons and keys, then closes both endpoints.
func (g *Gadget) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var errs []error
	if g.mouseState.Buttons != 0 {
		g.mouseState = report.MouseState{}
		if err := g.writeMouse(); err != nil {
			errs = append(errs, err)
		}
	}
	if g.kbdState != (report.KeyboardState{}) {
		g.kbdState = report.KeyboardState{}
		if _, err := g.kbd.Write(g.kbdState.BuildReport()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := g.mouse.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := g.kbd.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("close gadget: %v", errs)
	}
	return nil
}

// MoveMouse implements hid.Emitter.
func (g *Gadget) MoveMouse(dx, dy int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mouseState.DX = clampDelta(dx)
	g.mouseState.DY = clampDelta(dy)
	err := g.writeMouse()
	g.mouseState.DX, g.mouseState.DY = 0, 0
	return err
}

// ClickMouse implements hid.Emitter.
func (g *Gadget) ClickMouse(btn hid.Button, pressed bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	bit := buttonBit(btn)
	if pressed {
		g.mouseState.Buttons |= bit
	} else {
		g.mouseState.Buttons &^= bit
	}
	return g.writeMouse()
}

// Scroll implements hid.Emitter.
func (g *Gadget) Scroll(vertical, horizontal int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mouseState.Wheel = clampDelta(vertical)
	g.mouseState.Pan = clampDelta(horizontal)
	err := g.writeMouse()
	g.mouseState.Wheel, g.mouseState.Pan = 0, 0
	return err
}

// PressKey implements hid.Emitter.
func (g *Gadget) PressKey(code uint8) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.kbdState.Press(code)
	return g.writeKeyboard()
}

// ReleaseKey implements hid.Emitter.
func (g *Gadget) ReleaseKey(code uint8) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.kbdState.Release(code)
	return g.writeKeyboard()
}

func (g *Gadget) writeMouse() error {
	if _, err := g.mouse.Write(g.mouseState.BuildReport()); err != nil {
		return fmt.Errorf("write mouse report: %w", err)
	}
	return nil
}

func (g *Gadget) writeKeyboard() error {
	if _, err := g.kbd.Write(g.kbdState.BuildReport()); err != nil {
		return fmt.Errorf("write keyboard report: %w", err)
	}
	return nil
}

func buttonBit(btn hid.Button) uint8 {
	switch btn {
	case hid.Right:
		return report.BtnRight
	case hid.Middle:
		return report.BtnMiddle
	default:
		return report.BtnLeft
	}
}

func clampDelta(v int) int8 {
	if v > 127 {
		return 127
	}
	if v < -127 {
		return -127
	}
	return int8(v)
}

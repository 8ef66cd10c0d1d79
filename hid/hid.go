// Package hid defines the emitter boundary the engine's actions are
// delivered to and the translation from resolved actions to emitter calls.
package hid

import (
	"fmt"

	"github.com/Alia5/NAVCHUK/engine"
)

// Button identifies an emulated mouse button at the emitter boundary.
type Button uint8

const (
	Left Button = iota
	Right
	Middle
)

// Emitter performs the actual HID calls. Implementations are external
// collaborators; the engine only sees at-most-once emission per tick.
type Emitter interface {
	// MoveMouse moves the pointer by signed pixel deltas.
	MoveMouse(dx, dy int) error
	// ClickMouse presses or releases a mouse button.
	ClickMouse(btn Button, pressed bool) error
	// Scroll turns the vertical and horizontal wheels by signed notches.
	Scroll(vertical, horizontal int) error
	// PressKey presses a keyboard key by HID usage code.
	PressKey(code uint8) error
	// ReleaseKey releases a keyboard key by HID usage code.
	ReleaseKey(code uint8) error
}

// Translator adapts an Emitter to the engine's action stream:
//
//   - MouseMove / MouseClick / KeyPress / KeyRelease pass through,
//   - ZoomStep turns the vertical wheel,
//   - PanStep turns the horizontal wheel,
//   - OrbitStep becomes a right-button-wrapped pointer move, completed
//     within the same tick so no button state leaks across ticks.
type Translator struct {
	em Emitter
}

// NewTranslator returns a Translator delivering to em.
func NewTranslator(em Emitter) *Translator {
	return &Translator{em: em}
}

// Emit implements engine.Sink.
func (t *Translator) Emit(actions []engine.Action) error {
	for _, a := range actions {
		if err := t.emit(a); err != nil {
			return err
		}
	}
	return nil
}

func (t *Translator) emit(a engine.Action) error {
	switch a := a.(type) {
	case engine.MouseMove:
		return t.em.MoveMouse(a.DX, a.DY)
	case engine.MouseClick:
		return t.em.ClickMouse(button(a.Button), a.Pressed)
	case engine.KeyPress:
		return t.em.PressKey(a.Code)
	case engine.KeyRelease:
		return t.em.ReleaseKey(a.Code)
	case engine.ZoomStep:
		return t.em.Scroll(a.Steps, 0)
	case engine.PanStep:
		return t.em.Scroll(0, a.Steps)
	case engine.OrbitStep:
		return t.orbit(a)
	default:
		return fmt.Errorf("unknown action %T", a)
	}
}

func (t *Translator) orbit(a engine.OrbitStep) error {
	dx, dy := 0, 0
	if a.Axis == engine.OrbitHorizontal {
		dx = a.Delta
	} else {
		dy = a.Delta
	}
	if err := t.em.ClickMouse(Right, true); err != nil {
		return err
	}
	if err := t.em.MoveMouse(dx, dy); err != nil {
		return err
	}
	return t.em.ClickMouse(Right, false)
}

func button(b engine.MouseButton) Button {
	switch b {
	case engine.ButtonRight:
		return Right
	case engine.ButtonMiddle:
		return Middle
	default:
		return Left
	}
}

// Nop is an Emitter that discards every call, for dry runs.
type Nop struct{}

func (Nop) MoveMouse(dx, dy int) error                { return nil }
func (Nop) ClickMouse(btn Button, pressed bool) error { return nil }
func (Nop) Scroll(vertical, horizontal int) error     { return nil }
func (Nop) PressKey(code uint8) error                 { return nil }
func (Nop) ReleaseKey(code uint8) error               { return nil }

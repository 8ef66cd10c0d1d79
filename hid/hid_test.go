package hid_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/NAVCHUK/engine"
	"github.com/Alia5/NAVCHUK/hid"
)

// recordingEmitter captures every emitter call as a formatted string.
type recordingEmitter struct {
	calls []string
	err   error
}

func (e *recordingEmitter) record(s string) error {
	if e.err != nil {
		return e.err
	}
	e.calls = append(e.calls, s)
	return nil
}

func (e *recordingEmitter) MoveMouse(dx, dy int) error {
	return e.record(fmt.Sprintf("move %d %d", dx, dy))
}

func (e *recordingEmitter) ClickMouse(btn hid.Button, pressed bool) error {
	return e.record(fmt.Sprintf("click %d %v", btn, pressed))
}

func (e *recordingEmitter) Scroll(vertical, horizontal int) error {
	return e.record(fmt.Sprintf("scroll %d %d", vertical, horizontal))
}

func (e *recordingEmitter) PressKey(code uint8) error {
	return e.record(fmt.Sprintf("press %#02x", code))
}

func (e *recordingEmitter) ReleaseKey(code uint8) error {
	return e.record(fmt.Sprintf("release %#02x", code))
}

func TestTranslatorPassThrough(t *testing.T) {
	em := &recordingEmitter{}
	tr := hid.NewTranslator(em)

	err := tr.Emit([]engine.Action{
		engine.MouseClick{Button: engine.ButtonLeft, Pressed: true},
		engine.MouseMove{DX: 5, DY: -3},
		engine.KeyPress{Code: 0x09},
		engine.KeyRelease{Code: 0x09},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"click 0 true",
		"move 5 -3",
		"press 0x09",
		"release 0x09",
	}, em.calls)
}

func TestTranslatorZoomAndPanUseWheels(t *testing.T) {
	em := &recordingEmitter{}
	tr := hid.NewTranslator(em)

	err := tr.Emit([]engine.Action{
		engine.ZoomStep{Steps: 2},
		engine.PanStep{Steps: -1},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"scroll 2 0", "scroll 0 -1"}, em.calls)
}

func TestTranslatorOrbitWrapsRightButton(t *testing.T) {
	em := &recordingEmitter{}
	tr := hid.NewTranslator(em)

	err := tr.Emit([]engine.Action{
		engine.OrbitStep{Axis: engine.OrbitHorizontal, Delta: 12},
		engine.OrbitStep{Axis: engine.OrbitVertical, Delta: -6},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"click 1 true", "move 12 0", "click 1 false",
		"click 1 true", "move 0 -6", "click 1 false",
	}, em.calls)
}

func TestTranslatorStopsOnEmitterError(t *testing.T) {
	em := &recordingEmitter{err: errors.New("gone")}
	tr := hid.NewTranslator(em)

	err := tr.Emit([]engine.Action{engine.MouseMove{DX: 1}})
	require.Error(t, err)
}

func TestNopDiscardsEverything(t *testing.T) {
	var n hid.Nop
	assert.NoError(t, n.MoveMouse(1, 2))
	assert.NoError(t, n.ClickMouse(hid.Left, true))
	assert.NoError(t, n.Scroll(1, -1))
	assert.NoError(t, n.PressKey(0x09))
	assert.NoError(t, n.ReleaseKey(0x09))
}

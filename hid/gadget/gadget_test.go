package gadget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/NAVCHUK/hid"
	"github.com/Alia5/NAVCHUK/hid/gadget"
	"github.com/Alia5/NAVCHUK/hid/report"
)

// captureWriter records each write as one report.
type captureWriter struct {
	reports [][]byte
	closed  bool
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.reports = append(w.reports, append([]byte(nil), p...))
	return len(p), nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func TestGadgetMoveIsOneShot(t *testing.T) {
	mouse, kbd := &captureWriter{}, &captureWriter{}
	g := gadget.NewWithWriters(mouse, kbd)

	require.NoError(t, g.MoveMouse(10, -5))
	require.NoError(t, g.ClickMouse(hid.Left, true))

	require.Len(t, mouse.reports, 2)
	assert.Equal(t, []byte{0x00, 10, 0xFB, 0x00, 0x00}, mouse.reports[0])
	// The click report must not repeat the previous deltas.
	assert.Equal(t, []byte{report.BtnLeft, 0x00, 0x00, 0x00, 0x00}, mouse.reports[1])
}

func TestGadgetButtonsPersistAcrossReports(t *testing.T) {
	mouse, kbd := &captureWriter{}, &captureWriter{}
	g := gadget.NewWithWriters(mouse, kbd)

	require.NoError(t, g.ClickMouse(hid.Right, true))
	require.NoError(t, g.MoveMouse(3, 0))
	require.NoError(t, g.ClickMouse(hid.Right, false))

	require.Len(t, mouse.reports, 3)
	assert.Equal(t, []byte{report.BtnRight, 0x00, 0x00, 0x00, 0x00}, mouse.reports[0])
	assert.Equal(t, []byte{report.BtnRight, 3, 0x00, 0x00, 0x00}, mouse.reports[1])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00}, mouse.reports[2])
}

func TestGadgetScrollUsesWheelBytes(t *testing.T) {
	mouse, kbd := &captureWriter{}, &captureWriter{}
	g := gadget.NewWithWriters(mouse, kbd)

	require.NoError(t, g.Scroll(2, -1))
	require.Len(t, mouse.reports, 1)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 2, 0xFF}, mouse.reports[0])
}

func TestGadgetClampsOversizedDeltas(t *testing.T) {
	mouse, kbd := &captureWriter{}, &captureWriter{}
	g := gadget.NewWithWriters(mouse, kbd)

	require.NoError(t, g.MoveMouse(500, -500))
	require.Len(t, mouse.reports, 1)
	assert.Equal(t, []byte{0x00, 127, 0x81, 0x00, 0x00}, mouse.reports[0])
}

func TestGadgetKeyboardReports(t *testing.T) {
	mouse, kbd := &captureWriter{}, &captureWriter{}
	g := gadget.NewWithWriters(mouse, kbd)

	require.NoError(t, g.PressKey(report.KeyF))
	require.NoError(t, g.ReleaseKey(report.KeyF))

	require.Len(t, kbd.reports, 2)
	assert.Equal(t, []byte{0x00, 0x00, report.KeyF, 0x00, 0x00, 0x00, 0x00, 0x00}, kbd.reports[0])
	assert.Equal(t, make([]byte, 8), kbd.reports[1])
}

func TestGadgetCloseReleasesHeldState(t *testing.T) {
	mouse, kbd := &captureWriter{}, &captureWriter{}
	g := gadget.NewWithWriters(mouse, kbd)

	require.NoError(t, g.ClickMouse(hid.Left, true))
	require.NoError(t, g.PressKey(report.KeyD))
	require.NoError(t, g.Close())

	assert.True(t, mouse.closed)
	assert.True(t, kbd.closed)
	// Final reports clear the held button and key.
	assert.Equal(t, make([]byte, 5), mouse.reports[len(mouse.reports)-1])
	assert.Equal(t, make([]byte, 8), kbd.reports[len(kbd.reports)-1])
}

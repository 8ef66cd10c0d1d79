package engine

import (
	"time"

	"github.com/Alia5/NAVCHUK/hid/report"
)

// Tuning holds the compiled-in navigation parameters. Values are layered
// from config files, environment and flags by the CLI; the engine itself
// never mutates them after start.
type Tuning struct {
	PollInterval     time.Duration `help:"Sensor poll interval" default:"10ms" env:"NAVCHUK_POLL_INTERVAL"`
	TapThreshold     time.Duration `help:"Maximum press duration classified as a tap" default:"300ms" env:"NAVCHUK_TAP_THRESHOLD"`
	Deadzone         float64       `help:"Joystick deadzone radius as a fraction of full deflection" default:"0.2" env:"NAVCHUK_DEADZONE"`
	DragSensitivity  float64       `help:"Pointer pixels per tick at full deflection in drag mode" default:"15" env:"NAVCHUK_DRAG_SENSITIVITY"`
	OrbitSensitivity float64       `help:"Orbit pixels per tick at full deflection" default:"12" env:"NAVCHUK_ORBIT_SENSITIVITY"`
	ZoomSteps        float64       `help:"Zoom notches per tick at full deflection" default:"3" env:"NAVCHUK_ZOOM_STEPS"`
	PanSteps         float64       `help:"Pan notches per tick at full deflection" default:"3" env:"NAVCHUK_PAN_STEPS"`
	TiltNavigation   bool          `help:"Derive navigation from accelerometer tilt (disabled by default)" default:"false" env:"NAVCHUK_TILT_NAVIGATION"`
}

// FitViewKey and DropKey are the hotkeys sent for C and Z taps:
// Fit to View and Drop to Workplane.
const (
	FitViewKey = report.KeyF
	DropKey    = report.KeyD
)

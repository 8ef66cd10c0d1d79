package engine

import "math"

// Mode is the navigation mode selected for a tick by the modifier state.
type Mode uint8

const (
	// ModeDefault maps the joystick to zoom (vertical) and pan (horizontal).
	ModeDefault Mode = iota
	// ModeDrag moves the pointer with the left button held, for click-drag
	// viewport interactions. Entered while C is held.
	ModeDrag
	// ModeOrbit rotates the viewport in discrete directional steps. Entered
	// while Z is held; wins over drag when both buttons are held.
	ModeOrbit
)

func (m Mode) String() string {
	switch m {
	case ModeDrag:
		return "drag"
	case ModeOrbit:
		return "orbit"
	default:
		return "default"
	}
}

// Resolver is the per-tick state machine that turns axis intents and
// modifier state into HID actions. The only state it carries across ticks
// is whether the drag left button is currently down, so every down is
// paired with exactly one up.
type Resolver struct {
	tuning     Tuning
	mode       Mode
	dragButton bool
}

// NewResolver returns a Resolver in the default mode.
func NewResolver(t Tuning) *Resolver {
	return &Resolver{tuning: t}
}

// Mode reports the mode selected by the most recent Resolve call.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// Resolve produces the actions for one tick. Mouse actions are emitted
// before keyboard actions. Tap hotkeys fire independently of the mode.
func (r *Resolver) Resolve(in Intent, m Modifiers) []Action {
	in = r.effective(in)
	switch {
	case m.ZHeld:
		// Orbit wins over drag when both modifiers are held.
		r.mode = ModeOrbit
	case m.CHeld:
		r.mode = ModeDrag
	default:
		r.mode = ModeDefault
	}

	var actions []Action

	// Leaving drag mode for any reason releases the left button, so the
	// host never sees it stuck.
	if r.dragButton && r.mode != ModeDrag {
		actions = append(actions, MouseClick{Button: ButtonLeft, Pressed: false})
		r.dragButton = false
	}

	switch r.mode {
	case ModeDrag:
		actions = append(actions, r.drag(in)...)
	case ModeOrbit:
		actions = append(actions, r.orbit(in)...)
	default:
		actions = append(actions, r.zoomPan(in)...)
	}

	if m.CTapped {
		actions = append(actions, KeyPress{Code: FitViewKey}, KeyRelease{Code: FitViewKey})
	}
	if m.ZTapped {
		actions = append(actions, KeyPress{Code: DropKey}, KeyRelease{Code: DropKey})
	}
	return actions
}

// effective folds the tilt axes into the joystick axes when tilt
// navigation is enabled. It ships disabled; the mapper still computes the
// tilt intents so the path stays exercised by tests.
func (r *Resolver) effective(in Intent) Intent {
	if !r.tuning.TiltNavigation {
		return in
	}
	in.DX = math.Max(-1, math.Min(1, in.DX+in.TX))
	in.DY = math.Max(-1, math.Min(1, in.DY+in.TY))
	return in
}

func (r *Resolver) drag(in Intent) []Action {
	var actions []Action
	if !r.dragButton {
		actions = append(actions, MouseClick{Button: ButtonLeft, Pressed: true})
		r.dragButton = true
	}
	dx := scale(in.DX, r.tuning.DragSensitivity)
	// Screen Y grows downward; pushing the stick up moves the pointer up.
	dy := -scale(in.DY, r.tuning.DragSensitivity)
	if dx != 0 || dy != 0 {
		actions = append(actions, MouseMove{DX: dx, DY: dy})
	}
	return actions
}

func (r *Resolver) orbit(in Intent) []Action {
	var actions []Action
	if d := scale(in.DX, r.tuning.OrbitSensitivity); d != 0 {
		actions = append(actions, OrbitStep{Axis: OrbitHorizontal, Delta: d})
	}
	if d := -scale(in.DY, r.tuning.OrbitSensitivity); d != 0 {
		actions = append(actions, OrbitStep{Axis: OrbitVertical, Delta: d})
	}
	return actions
}

func (r *Resolver) zoomPan(in Intent) []Action {
	var actions []Action
	if s := scale(in.DY, r.tuning.ZoomSteps); s != 0 {
		actions = append(actions, ZoomStep{Steps: s})
	}
	if s := scale(in.DX, r.tuning.PanSteps); s != 0 {
		actions = append(actions, PanStep{Steps: s})
	}
	return actions
}

// scale converts a normalized deflection to a signed step count, linear in
// magnitude so larger deflections navigate faster.
func scale(v, sensitivity float64) int {
	return int(math.Round(v * sensitivity))
}

package engine

// MouseButton identifies an emulated mouse button in a resolved action.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// OrbitAxis identifies which viewport rotation axis an OrbitStep drives.
type OrbitAxis uint8

const (
	OrbitHorizontal OrbitAxis = iota
	OrbitVertical
)

// Action is one resolved HID intent for the current tick. Actions are
// ephemeral: the resolver produces them and the sink consumes them before
// the next tick begins. Within a tick, mouse actions are ordered before
// keyboard actions.
type Action interface {
	action()
}

// MouseMove moves the pointer by signed pixel deltas.
type MouseMove struct {
	DX, DY int
}

// MouseClick presses or releases a mouse button.
type MouseClick struct {
	Button  MouseButton
	Pressed bool
}

// KeyPress presses a keyboard key by HID usage code.
type KeyPress struct {
	Code uint8
}

// KeyRelease releases a keyboard key by HID usage code.
type KeyRelease struct {
	Code uint8
}

// ZoomStep zooms the viewport by a signed number of notches
// (positive = in).
type ZoomStep struct {
	Steps int
}

// PanStep pans the viewport horizontally by a signed number of notches
// (positive = right).
type PanStep struct {
	Steps int
}

// OrbitStep rotates the viewport around one axis by a signed pixel delta.
type OrbitStep struct {
	Axis  OrbitAxis
	Delta int
}

func (MouseMove) action()  {}
func (MouseClick) action() {}
func (KeyPress) action()   {}
func (KeyRelease) action() {}
func (ZoomStep) action()   {}
func (PanStep) action()    {}
func (OrbitStep) action()  {}

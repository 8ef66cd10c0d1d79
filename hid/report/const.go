package report

// HID keyboard usage codes (Usage Page 0x07).
const (
	KeyA uint8 = 0x04 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

const (
	Key1 uint8 = 0x1E + iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
)

// Keyboard modifier bits.
const (
	ModLeftCtrl uint8 = 1 << iota
	ModLeftShift
	ModLeftAlt
	ModLeftGui
	ModRightCtrl
	ModRightShift
	ModRightAlt
	ModRightGui
)

// KeyNames maps the usage codes above to display names for diagnostics.
var KeyNames = map[uint8]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
	KeyEnter: "Enter", KeyEscape: "Escape", KeyBackspace: "Backspace",
	KeyTab: "Tab", KeySpace: "Space",
}

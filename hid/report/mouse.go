// Package report provides boot-protocol HID input states, report encoders and
// the matching report descriptors for the emulated mouse and keyboard.
package report

// Mouse button bits in MouseState.Buttons.
const (
	BtnLeft   uint8 = 1 << 0
	BtnRight  uint8 = 1 << 1
	BtnMiddle uint8 = 1 << 2
)

// MouseState represents the mouse state used to build one report.
// Deltas and wheels are one-shot per report; buttons persist until changed.
type MouseState struct {
	// Button bitfield: bit 0=Left, 1=Right, 2=Middle
	Buttons uint8
	// Relative movement, -127 to +127
	DX, DY int8
	// Vertical scroll notches
	Wheel int8
	// Horizontal scroll notches (AC Pan)
	Pan int8
}

// BuildReport encodes a MouseState into the 5-byte HID mouse report.
//
// Report layout (5 bytes):
//
//	Byte 0: Button bitfield (bit 0=Left, 1=Right, 2=Middle, bits 3-7=padding)
//	Byte 1: DX (int8, -127 to +127)
//	Byte 2: DY (int8)
//	Byte 3: Wheel (int8)
//	Byte 4: Pan (int8)
func (m MouseState) BuildReport() []byte {
	return []byte{
		m.Buttons & 0x07, // 3 buttons, mask upper bits
		byte(m.DX),
		byte(m.DY),
		byte(m.Wheel),
		byte(m.Pan),
	}
}

// MouseDescriptor is the HID report descriptor matching BuildReport's layout:
// a 3-button boot-compatible mouse with vertical wheel and AC Pan.
// It is what an external USB gadget setup registers for the mouse function.
var MouseDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x02, // Usage (Mouse)
	0xA1, 0x01, // Collection (Application)
	0x09, 0x01, //   Usage (Pointer)
	0xA1, 0x00, //   Collection (Physical)
	0x05, 0x09, //     Usage Page (Button)
	0x19, 0x01, //     Usage Minimum (Button 1)
	0x29, 0x03, //     Usage Maximum (Button 3)
	0x15, 0x00, //     Logical Minimum (0)
	0x25, 0x01, //     Logical Maximum (1)
	0x95, 0x03, //     Report Count (3)
	0x75, 0x01, //     Report Size (1)
	0x81, 0x02, //     Input (Data, Variable, Absolute)
	0x95, 0x01, //     Report Count (1)
	0x75, 0x05, //     Report Size (5)
	0x81, 0x01, //     Input - padding
	0x05, 0x01, //     Usage Page (Generic Desktop)
	0x09, 0x30, //     Usage (X)
	0x09, 0x31, //     Usage (Y)
	0x09, 0x38, //     Usage (Wheel)
	0x15, 0x81, //     Logical Minimum (-127)
	0x25, 0x7F, //     Logical Maximum (127)
	0x75, 0x08, //     Report Size (8)
	0x95, 0x03, //     Report Count (3)
	0x81, 0x06, //     Input (Data, Variable, Relative)
	0x05, 0x0C, //     Usage Page (Consumer)
	0x0A, 0x38, 0x02, // Usage (AC Pan)
	0x15, 0x81, //     Logical Minimum (-127)
	0x25, 0x7F, //     Logical Maximum (127)
	0x75, 0x08, //     Report Size (8)
	0x95, 0x01, //     Report Count (1)
	0x81, 0x06, //     Input (Data, Variable, Relative)
	0xC0, //   End Collection
	0xC0, // End Collection
}

package report

// KeyboardState represents the keyboard state used to build one report.
// Boot protocol: up to six concurrently pressed keys plus a modifier byte.
type KeyboardState struct {
	// Modifiers bit 0-7: LCtrl, LShift, LAlt, LGui, RCtrl, RShift, RAlt, RGui
	Modifiers uint8
	// Keys holds HID usage codes of pressed keys; 0 = no key
	Keys [6]uint8
}

// BuildReport encodes a KeyboardState into the 8-byte boot keyboard report.
//
// Report layout (8 bytes):
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved (0x00)
//	Bytes 2-7: Key usage codes (0 = unused slot)
func (k KeyboardState) BuildReport() []byte {
	b := make([]byte, 8)
	b[0] = k.Modifiers
	copy(b[2:8], k.Keys[:])
	return b
}

// Press adds a key to the first free slot. Pressing a key that is already
// down, or a seventh key, is a no-op.
func (k *KeyboardState) Press(code uint8) {
	if code == 0 {
		return
	}
	free := -1
	for i, c := range k.Keys {
		if c == code {
			return
		}
		if c == 0 && free < 0 {
			free = i
		}
	}
	if free >= 0 {
		k.Keys[free] = code
	}
}

// Release removes a key from the report if it is down.
func (k *KeyboardState) Release(code uint8) {
	for i, c := range k.Keys {
		if c == code {
			k.Keys[i] = 0
		}
	}
}

// KeyboardDescriptor is the HID report descriptor for the boot keyboard
// report built by KeyboardState.BuildReport.
var KeyboardDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x06, // Usage (Keyboard)
	0xA1, 0x01, // Collection (Application)
	0x05, 0x07, //   Usage Page (Keyboard)
	0x19, 0xE0, //   Usage Minimum (Left Control)
	0x29, 0xE7, //   Usage Maximum (Right GUI)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x01, //   Logical Maximum (1)
	0x75, 0x01, //   Report Size (1)
	0x95, 0x08, //   Report Count (8)
	0x81, 0x02, //   Input (Data, Variable, Absolute)
	0x95, 0x01, //   Report Count (1)
	0x75, 0x08, //   Report Size (8)
	0x81, 0x01, //   Input - reserved byte
	0x95, 0x06, //   Report Count (6)
	0x75, 0x08, //   Report Size (8)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x65, //   Logical Maximum (101)
	0x05, 0x07, //   Usage Page (Keyboard)
	0x19, 0x00, //   Usage Minimum (0)
	0x29, 0x65, //   Usage Maximum (101)
	0x81, 0x00, //   Input (Data, Array)
	0xC0, // End Collection
}

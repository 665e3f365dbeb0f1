// Package protocol implements the joystick status line wire format
package protocol

// Version represents the gostick firmware version
const Version = "0.1.0"

// Wire constants
const (
	// BaudRate is the fixed line rate of the status stream (8N1)
	BaudRate = 9600

	// StatusMax is the size of the scratch buffer a status line is assembled in.
	// The longest possible line is 64 bytes.
	StatusMax = 96

	// LineMax bounds a single line on the receive side before it is discarded
	LineMax = 256

	// AxisMax is the largest value a 10-bit conversion can produce
	AxisMax = 1023

	// LineTerminator ends every status line
	LineTerminator = '\n'
)

// Status is one iteration's worth of readings.
// Fields are uint16 to match the width the firmware samples into.
type Status struct {
	X  uint16 // X axis, 0-1023
	Y  uint16 // Y axis, 0-1023
	SW uint16 // joystick push switch, 1 = pressed
	B1 uint16 // button 1, 1 = pressed
}

// Valid reports whether every field is inside its wire range
func (s Status) Valid() bool {
	return s.X <= AxisMax && s.Y <= AxisMax && s.SW <= 1 && s.B1 <= 1
}

package core

import "tinygo.org/x/drivers"

// Joystick is a two-axis analog stick with an integrated push switch.
// It follows the drivers.Sensor convention: Update samples the hardware,
// the accessors return what the last Update saw.
type Joystick struct {
	XChannel  ADCChannelID
	YChannel  ADCChannelID
	SwitchPin GPIOPin

	x       uint16
	y       uint16
	pressed uint16
}

var _ drivers.Sensor = (*Joystick)(nil)

// NewJoystick returns a joystick wired to the given channels and switch pin
func NewJoystick(xCh, yCh ADCChannelID, swPin GPIOPin) *Joystick {
	return &Joystick{
		XChannel:  xCh,
		YChannel:  yCh,
		SwitchPin: swPin,
	}
}

// Update samples X, then Y, then the switch when which includes
// drivers.Voltage. Other measurements are ignored.
func (j *Joystick) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	j.x = ReadAnalog(j.XChannel)
	j.y = ReadAnalog(j.YChannel)
	j.pressed = ButtonState(j.SwitchPin)
	return nil
}

// X returns the last X axis conversion, 0-1023
func (j *Joystick) X() uint16 { return j.x }

// Y returns the last Y axis conversion, 0-1023
func (j *Joystick) Y() uint16 { return j.y }

// Switch returns 1 if the stick was pushed in at the last Update
func (j *Joystick) Switch() uint16 { return j.pressed }

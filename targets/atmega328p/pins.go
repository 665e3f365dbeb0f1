//go:build avr

package main

import (
	"machine"

	"gostick/core"
)

// Joystick on ADC0/ADC1 (PC0/PC1), push switch on PD5, button on PD6.
// Both digital inputs are wired to ground and rely on the internal pull-ups.
const (
	JoystickXChannel  core.ADCChannelID = 0
	JoystickYChannel  core.ADCChannelID = 1
	JoystickSwitchPin                   = core.GPIOPin(machine.PD5)
	Button1Pin                          = core.GPIOPin(machine.PD6)
)

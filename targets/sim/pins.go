//go:build !tinygo

package main

import "gostick/core"

// Same wiring as the atmega328p target, in simulator numbering
const (
	JoystickXChannel  core.ADCChannelID = 0
	JoystickYChannel  core.ADCChannelID = 1
	JoystickSwitchPin core.GPIOPin      = 21 // PD5
	Button1Pin        core.GPIOPin      = 22 // PD6
)

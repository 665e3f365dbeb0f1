//go:build avr

package main

import (
	"machine"

	"gostick/core"
)

// AvrGPIODriver maps core pins onto machine.Pin numbering
// (port B at 0, port C at 8, port D at 16).
type AvrGPIODriver struct{}

var _ core.GPIODriver = (*AvrGPIODriver)(nil)

func NewAvrGPIODriver() *AvrGPIODriver {
	return &AvrGPIODriver{}
}

// ConfigureInputPullUp clears the DDR bit and sets the PORT bit
func (d *AvrGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (d *AvrGPIODriver) ReadPin(pin core.GPIOPin) bool {
	return machine.Pin(pin).Get()
}

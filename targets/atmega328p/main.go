//go:build avr

package main

import "gostick/core"

func main() {
	core.SetADCDriver(NewAvrADCDriver())
	core.SetGPIODriver(NewAvrGPIODriver())
	core.SetUARTDriver(NewAvrUARTDriver())

	sampler := core.NewSampler(core.SamplerConfig{
		XChannel:  JoystickXChannel,
		YChannel:  JoystickYChannel,
		SwitchPin: JoystickSwitchPin,
		ButtonPin: Button1Pin,
	})

	// Nothing to report to without a working UART; park the CPU
	if err := sampler.Setup(); err != nil {
		for {
		}
	}

	sampler.Run()
}

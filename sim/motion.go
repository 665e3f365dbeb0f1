package sim

import (
	"time"

	"github.com/chewxy/math32"

	"gostick/core"
)

// Board bundles the three simulated peripherals and the joystick wiring
type Board struct {
	ADC  *ADC
	GPIO *GPIO
	UART *UART

	XChannel  core.ADCChannelID
	YChannel  core.ADCChannelID
	SwitchPin core.GPIOPin
	ButtonPin core.GPIOPin
}

// Register installs the board's peripherals as the core drivers
func (b *Board) Register() {
	core.SetADCDriver(b.ADC)
	core.SetGPIODriver(b.GPIO)
	core.SetUARTDriver(b.UART)
}

// SetStick positions the stick. x and y are deflections in [-1, 1];
// 0 is the centre, which sits at half supply.
func (b *Board) SetStick(x, y float32) {
	b.ADC.SetVoltage(b.XChannel, deflectionToVolts(x))
	b.ADC.SetVoltage(b.YChannel, deflectionToVolts(y))
}

func deflectionToVolts(d float32) float32 {
	if d < -1 {
		d = -1
	} else if d > 1 {
		d = 1
	}
	return (d + 1) / 2 * SupplyVoltage
}

// Circle moves the stick around the rim once per period and presses the
// switch while the stick is in the upper half and the button on the right.
// It returns the deflection it applied.
func (b *Board) Circle(elapsed, period time.Duration) (x, y float32) {
	phase := float32(elapsed%period) / float32(period) * 2 * math32.Pi
	x = math32.Cos(phase)
	y = math32.Sin(phase)

	b.SetStick(x, y)
	b.GPIO.SetPressed(b.SwitchPin, y > 0)
	b.GPIO.SetPressed(b.ButtonPin, x > 0)
	return x, y
}

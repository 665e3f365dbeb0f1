// Digital pin reader for active-low push buttons
package core

// ConfigurePulledUpInput clears the pin's direction bit and sets its
// output bit so the internal pull-up holds it high. Idempotent.
func ConfigurePulledUpInput(pin GPIOPin) error {
	return MustGPIO().ConfigureInputPullUp(pin)
}

// IsActiveLow returns true when the pin is pulled to ground (pressed).
func IsActiveLow(pin GPIOPin) bool {
	return !MustGPIO().ReadPin(pin)
}

// ButtonState samples pin once and returns 1 when pressed, 0 when released.
// No debouncing: a bouncing contact shows up as-is.
func ButtonState(pin GPIOPin) uint16 {
	var state uint16
	if IsActiveLow(pin) {
		state = 1
	}
	RecordTiming(EvtPinRead, uint8(pin), GetTime(), uint32(state))
	return state
}

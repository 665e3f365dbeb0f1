package core

import "testing"

func TestButtonStateActiveLow(t *testing.T) {
	_, gpio, _ := installMocks()
	const pin = GPIOPin(21)

	if err := ConfigurePulledUpInput(pin); err != nil {
		t.Fatalf("ConfigurePulledUpInput failed: %v", err)
	}

	// Released: pull-up holds it high
	if IsActiveLow(pin) {
		t.Error("Expected released pin not to read active")
	}
	if got := ButtonState(pin); got != 0 {
		t.Errorf("Expected released = 0, got %d", got)
	}

	// Pressed: contact grounds it
	gpio.grounded[pin] = true
	if !IsActiveLow(pin) {
		t.Error("Expected pressed pin to read active")
	}
	if got := ButtonState(pin); got != 1 {
		t.Errorf("Expected pressed = 1, got %d", got)
	}
}

func TestButtonStateOnlyZeroOrOne(t *testing.T) {
	_, gpio, _ := installMocks()
	const pin = GPIOPin(22)
	ConfigurePulledUpInput(pin)

	for i := 0; i < 16; i++ {
		gpio.grounded[pin] = i%3 == 0
		if got := ButtonState(pin); got > 1 {
			t.Fatalf("iteration %d: ButtonState returned %d", i, got)
		}
	}
}

func TestConfigurePulledUpInputIdempotent(t *testing.T) {
	_, gpio, _ := installMocks()
	const pin = GPIOPin(21)

	ConfigurePulledUpInput(pin)
	first := ButtonState(pin)

	for i := 0; i < 10; i++ {
		if err := ConfigurePulledUpInput(pin); err != nil {
			t.Fatalf("ConfigurePulledUpInput failed on call %d: %v", i, err)
		}
		if got := ButtonState(pin); got != first {
			t.Fatalf("State changed after reconfigure %d: %d -> %d", i, first, got)
		}
	}

	if gpio.configureCalls[pin] != 11 {
		t.Errorf("Expected 11 configure calls, got %d", gpio.configureCalls[pin])
	}
}

func TestButtonStateWithoutPullUpFloatsLow(t *testing.T) {
	// The reason the loop configures the pull-up: an unconfigured
	// input is not reliably high.
	installMocks()
	if got := ButtonState(GPIOPin(5)); got != 1 {
		t.Errorf("Expected floating pin to read as pressed in the mock, got %d", got)
	}
}

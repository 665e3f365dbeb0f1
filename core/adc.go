// Analog sampler: a successive-approximation ADC read one channel at a time
package core

const (
	// ADCPrescaler divides the 16 MHz CPU clock down to a 125 kHz conversion clock
	ADCPrescaler = 128

	// ADCMax is the full-scale value of a 10-bit conversion
	ADCMax = 1023

	// ADCChannelMask limits the channel to the 3 multiplexer select bits
	ADCChannelMask = 0x07
)

// DefaultADCConfig returns the supply-referenced, /128 configuration
func DefaultADCConfig() ADCConfig {
	return ADCConfig{
		Reference: ADCRefAVcc,
		Prescaler: ADCPrescaler,
	}
}

// ConfigureAnalog selects the supply reference and enables the converter.
// Must be called once before any ReadAnalog.
func ConfigureAnalog() error {
	cfg := DefaultADCConfig()
	if err := MustADC().Init(cfg); err != nil {
		return err
	}
	DebugPrintln("[ADC] enabled, clock=" + utoa(ADCClock(cfg.Prescaler)) + "Hz")
	return nil
}

// ReadAnalog performs one blocking conversion on ch and returns 0-1023.
// Channels above 7 wrap, as the hardware only decodes 3 select bits.
func ReadAnalog(ch ADCChannelID) uint16 {
	ch &= ADCChannelMask
	value := uint16(MustADC().ReadRaw(ch)) & ADCMax
	RecordTiming(EvtAnalogRead, uint8(ch), GetTime(), uint32(value))
	return value
}

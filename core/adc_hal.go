package core

// ADCChannelID identifies an analog multiplexer channel (0-7 on the ATmega328P).
type ADCChannelID uint8

// ADCValue is the raw conversion result as read from the data registers.
type ADCValue uint16

// ADCReference selects the conversion reference voltage.
// Values match the REFS1:REFS0 bits of ADMUX.
type ADCReference uint8

const (
	ADCRefExternal ADCReference = 0 // AREF pin
	ADCRefAVcc     ADCReference = 1 // supply voltage
	ADCRefInternal ADCReference = 3 // internal 1.1V bandgap
)

// ADCConfig is the high-level config the core cares about.
type ADCConfig struct {
	Reference ADCReference
	Prescaler uint8 // CPU clock divider for the conversion clock
}

// ADCDriver is the abstract ADC interface that core code uses.
type ADCDriver interface {
	// Init powers up and configures the ADC peripheral.
	Init(cfg ADCConfig) error

	// ReadRaw selects the channel, starts one conversion and busy-waits
	// for it to complete. There is no timeout.
	ReadRaw(ch ADCChannelID) ADCValue
}

// Global singleton used by core code.
var adcDriver ADCDriver

// SetADCDriver is called by target-specific code to register its driver.
func SetADCDriver(d ADCDriver) {
	adcDriver = d
}

// MustADC returns the configured driver or panics if missing.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}

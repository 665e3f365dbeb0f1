//go:build avr

package main

import (
	"device/avr"
	"errors"

	"gostick/core"
)

// AvrADCDriver drives the ATmega328P successive-approximation converter
// directly through ADMUX/ADCSRA. machine.ADC is not used because it
// hardcodes its own prescaler.
type AvrADCDriver struct {
	refs uint8
}

var _ core.ADCDriver = (*AvrADCDriver)(nil)

func NewAvrADCDriver() *AvrADCDriver {
	return &AvrADCDriver{}
}

func (d *AvrADCDriver) Init(cfg core.ADCConfig) error {
	switch cfg.Reference {
	case core.ADCRefExternal:
		d.refs = 0
	case core.ADCRefAVcc:
		d.refs = avr.ADMUX_REFS0
	case core.ADCRefInternal:
		d.refs = avr.ADMUX_REFS0 | avr.ADMUX_REFS1
	default:
		return errors.New("unsupported ADC reference")
	}

	var ps uint8
	switch cfg.Prescaler {
	case 2:
		ps = avr.ADCSRA_ADPS0
	case 4:
		ps = avr.ADCSRA_ADPS1
	case 8:
		ps = avr.ADCSRA_ADPS1 | avr.ADCSRA_ADPS0
	case 16:
		ps = avr.ADCSRA_ADPS2
	case 32:
		ps = avr.ADCSRA_ADPS2 | avr.ADCSRA_ADPS0
	case 64:
		ps = avr.ADCSRA_ADPS2 | avr.ADCSRA_ADPS1
	case 128:
		ps = avr.ADCSRA_ADPS2 | avr.ADCSRA_ADPS1 | avr.ADCSRA_ADPS0
	default:
		return errors.New("unsupported ADC prescaler")
	}

	avr.ADMUX.Set(d.refs)
	avr.ADCSRA.Set(avr.ADCSRA_ADEN | ps)
	return nil
}

// ReadRaw runs one conversion and spins until ADSC clears
func (d *AvrADCDriver) ReadRaw(ch core.ADCChannelID) core.ADCValue {
	avr.ADMUX.Set(d.refs | (uint8(ch) & 0x07))
	avr.ADCSRA.SetBits(avr.ADCSRA_ADSC)
	for avr.ADCSRA.HasBits(avr.ADCSRA_ADSC) {
	}
	// ADCL must be read first; it latches ADCH
	low := uint16(avr.ADCL.Get())
	high := uint16(avr.ADCH.Get())
	return core.ADCValue(high<<8 | low)
}

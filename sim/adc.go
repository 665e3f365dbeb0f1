package sim

import (
	"fmt"
	"sync"

	"gostick/core"
)

const (
	// SupplyVoltage is the AVcc rail of a 5V board
	SupplyVoltage = 5.0

	// BandgapVoltage is the internal reference
	BandgapVoltage = 1.1

	adcSteps = 1024
)

// ADC is a simulated successive-approximation converter
type ADC struct {
	mu          sync.Mutex
	cfg         core.ADCConfig
	enabled     bool
	vin         map[core.ADCChannelID]float32
	Conversions int
}

var _ core.ADCDriver = (*ADC)(nil)

// NewADC returns a disabled converter with every channel at 0V
func NewADC() *ADC {
	return &ADC{
		vin: make(map[core.ADCChannelID]float32),
	}
}

// Init enables the converter. Only the /128 prescaler gives a conversion
// clock inside the 50-200 kHz window at 16 MHz; other values are rejected.
func (a *ADC) Init(cfg core.ADCConfig) error {
	clk := core.ADCClock(cfg.Prescaler)
	if cfg.Prescaler == 0 || clk < 50000 || clk > 200000 {
		return fmt.Errorf("ADC clock %d Hz out of range for prescaler %d", clk, cfg.Prescaler)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg = cfg
	a.enabled = true
	return nil
}

// SetVoltage drives the input of channel ch
func (a *ADC) SetVoltage(ch core.ADCChannelID, volts float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.vin[ch] = volts
}

// ReadRaw converts the voltage currently on ch
func (a *ADC) ReadRaw(ch core.ADCChannelID) core.ADCValue {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.enabled {
		panic("sim: conversion started with the ADC disabled")
	}
	a.Conversions++
	return Convert(a.vin[ch], a.reference())
}

func (a *ADC) reference() float32 {
	if a.cfg.Reference == core.ADCRefInternal {
		return BandgapVoltage
	}
	return SupplyVoltage
}

// Convert is the ideal transfer function of a 10-bit converter
func Convert(volts, vref float32) core.ADCValue {
	if volts <= 0 {
		return 0
	}
	code := int(volts * adcSteps / vref)
	if code > core.ADCMax {
		code = core.ADCMax
	}
	return core.ADCValue(code)
}

// VoltageFor returns the input voltage that converts to code at the supply reference
func VoltageFor(code uint16) float32 {
	return float32(code) * SupplyVoltage / adcSteps
}

// Status loop: sample, format, transmit, wait, forever
package core

import (
	"gostick/protocol"

	"tinygo.org/x/drivers"
)

// SamplerConfig wires the loop to the board
type SamplerConfig struct {
	XChannel  ADCChannelID
	YChannel  ADCChannelID
	SwitchPin GPIOPin // joystick push switch, active-low
	ButtonPin GPIOPin // standalone button, active-low
	PeriodMs  uint32  // delay after each line; 0 selects StatusPeriodMs
}

// Sampler owns the per-iteration work. It keeps no readings between
// iterations; only the scratch line buffer is reused.
type Sampler struct {
	cfg      SamplerConfig
	joystick *Joystick
	out      *protocol.ScratchOutput

	// Counters, for diagnostics only
	LinesSent uint32
	Errors    uint32
}

// NewSampler creates a sampler. Drivers must be registered before Setup.
func NewSampler(cfg SamplerConfig) *Sampler {
	if cfg.PeriodMs == 0 {
		cfg.PeriodMs = StatusPeriodMs
	}
	return &Sampler{
		cfg:      cfg,
		joystick: NewJoystick(cfg.XChannel, cfg.YChannel, cfg.SwitchPin),
		out:      protocol.NewScratchOutput(),
	}
}

// Setup configures the converter and the transmitter. Call once.
func (s *Sampler) Setup() error {
	if err := ConfigureAnalog(); err != nil {
		return err
	}
	return ConfigureSerial()
}

// Sample takes one fresh set of readings. Pull-ups are re-asserted on
// every call, which is redundant after the first but harmless.
func (s *Sampler) Sample() (protocol.Status, error) {
	if err := ConfigurePulledUpInput(s.cfg.SwitchPin); err != nil {
		return protocol.Status{}, err
	}
	if err := ConfigurePulledUpInput(s.cfg.ButtonPin); err != nil {
		return protocol.Status{}, err
	}

	if err := s.joystick.Update(drivers.Voltage); err != nil {
		return protocol.Status{}, err
	}

	return protocol.Status{
		X:  s.joystick.X(),
		Y:  s.joystick.Y(),
		SW: s.joystick.Switch(),
		B1: ButtonState(s.cfg.ButtonPin),
	}, nil
}

// Step samples once and transmits the whole status line.
func (s *Sampler) Step() error {
	status, err := s.Sample()
	if err != nil {
		return err
	}

	s.out.Reset()
	protocol.AppendStatus(s.out, status)
	line := s.out.Result()
	if err := TransmitString(line); err != nil {
		return err
	}

	s.LinesSent++
	RecordTiming(EvtStatusSent, 0, GetTime(), uint32(len(line)))
	return nil
}

// Run loops forever. It never returns; a stuck peripheral hangs it inside
// the driver's busy-wait.
func (s *Sampler) Run() {
	for {
		s.iterate()
	}
}

// iterate is one pass of Run: Step, then the fixed busy-wait delay.
// Errors are counted and logged; the loop keeps going.
func (s *Sampler) iterate() {
	if err := s.Step(); err != nil {
		s.Errors++
		RecordTiming(EvtStepFailed, 0, GetTime(), s.Errors)
		DebugPrintln("[LOOP] step failed: " + err.Error())
	}
	DelayMs(s.cfg.PeriodMs)
	RecordTiming(EvtDelayDone, 0, GetTime(), s.cfg.PeriodMs)
}

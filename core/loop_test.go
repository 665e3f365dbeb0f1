package core

import (
	"strings"
	"testing"
	"time"

	"gostick/protocol"
)

const (
	testXChannel  = ADCChannelID(0)
	testYChannel  = ADCChannelID(1)
	testSwitchPin = GPIOPin(21)
	testButtonPin = GPIOPin(22)
)

func newTestSampler(periodMs uint32) *Sampler {
	return NewSampler(SamplerConfig{
		XChannel:  testXChannel,
		YChannel:  testYChannel,
		SwitchPin: testSwitchPin,
		ButtonPin: testButtonPin,
		PeriodMs:  periodMs,
	})
}

func TestSamplerDefaultPeriod(t *testing.T) {
	s := NewSampler(SamplerConfig{})
	if s.cfg.PeriodMs != 500 {
		t.Errorf("Expected default period 500ms, got %d", s.cfg.PeriodMs)
	}
}

func TestSamplerSetup(t *testing.T) {
	adc, _, uart := installMocks()
	s := newTestSampler(0)

	if err := s.Setup(); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if adc.initCalls != 1 || !uart.configured {
		t.Errorf("Expected ADC and UART configured once, got init=%d uart=%v", adc.initCalls, uart.configured)
	}
}

func TestStepExactLine(t *testing.T) {
	testCases := []struct {
		name     string
		x, y     ADCValue
		swDown   bool
		btnDown  bool
		expected string
	}{
		{
			name:     "switch pressed",
			x:        512,
			y:        300,
			swDown:   true,
			expected: "{\"input\":{\"js1\":{\"X\":512,\"Y\":300,\"SW\":1},\"buttons\":{\"b1\":0}}}\n",
		},
		{
			name:     "all zero",
			expected: "{\"input\":{\"js1\":{\"X\":0,\"Y\":0,\"SW\":0},\"buttons\":{\"b1\":0}}}\n",
		},
		{
			name:     "button pressed at full deflection",
			x:        1023,
			y:        1023,
			btnDown:  true,
			expected: "{\"input\":{\"js1\":{\"X\":1023,\"Y\":1023,\"SW\":0},\"buttons\":{\"b1\":1}}}\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			adc, gpio, uart := installMocks()
			adc.values[testXChannel] = tc.x
			adc.values[testYChannel] = tc.y
			gpio.grounded[testSwitchPin] = tc.swDown
			gpio.grounded[testButtonPin] = tc.btnDown

			s := newTestSampler(0)
			if err := s.Setup(); err != nil {
				t.Fatalf("Setup failed: %v", err)
			}
			if err := s.Step(); err != nil {
				t.Fatalf("Step failed: %v", err)
			}

			if got := uart.tx.String(); got != tc.expected {
				t.Errorf("Line mismatch:\n got: %q\nwant: %q", got, tc.expected)
			}
		})
	}
}

func TestSampleOrder(t *testing.T) {
	adc, gpio, _ := installMocks()
	s := newTestSampler(0)

	if _, err := s.Sample(); err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	if len(adc.readOrder) != 2 || adc.readOrder[0] != testXChannel || adc.readOrder[1] != testYChannel {
		t.Errorf("Expected X then Y conversions, got %v", adc.readOrder)
	}
	if len(gpio.readOrder) != 2 || gpio.readOrder[0] != testSwitchPin || gpio.readOrder[1] != testButtonPin {
		t.Errorf("Expected switch then button reads, got %v", gpio.readOrder)
	}
	// Pins are configured before they are read
	if gpio.configureCalls[testSwitchPin] != 1 || gpio.configureCalls[testButtonPin] != 1 {
		t.Errorf("Expected one pull-up configure per pin, got %v", gpio.configureCalls)
	}
}

func TestSampleIsFreshEachIteration(t *testing.T) {
	adc, gpio, _ := installMocks()
	s := newTestSampler(0)

	adc.values[testXChannel] = 900
	gpio.grounded[testButtonPin] = true
	first, _ := s.Sample()

	adc.values[testXChannel] = 10
	gpio.grounded[testButtonPin] = false
	second, _ := s.Sample()

	if first == second {
		t.Fatalf("Expected readings to change, both were %+v", first)
	}
	if second != (protocol.Status{X: 10}) {
		t.Errorf("Expected only the new values, got %+v", second)
	}
}

func TestRepeatedStepsReassertPullUps(t *testing.T) {
	_, gpio, uart := installMocks()
	s := newTestSampler(0)
	s.Setup()

	for i := 0; i < 5; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
	}

	if gpio.configureCalls[testSwitchPin] != 5 || gpio.configureCalls[testButtonPin] != 5 {
		t.Errorf("Expected pull-ups re-asserted each step, got %v", gpio.configureCalls)
	}
	lines := strings.Split(strings.TrimSuffix(uart.tx.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] != lines[0] {
			t.Errorf("line %d differs with unchanged inputs: %q vs %q", i, lines[i], lines[0])
		}
	}
	if s.LinesSent != 5 {
		t.Errorf("Expected LinesSent=5, got %d", s.LinesSent)
	}
}

func TestIterateDelaysAfterEachLine(t *testing.T) {
	_, _, uart := installMocks()

	var delays []uint32
	SetDelayFunc(func(ms uint32) {
		// the line must already be on the wire when the delay starts
		if !strings.HasSuffix(uart.tx.String(), "\n") {
			t.Error("Delay started before the line was transmitted")
		}
		delays = append(delays, ms)
	})
	defer SetDelayFunc(nil)

	s := newTestSampler(0)
	s.Setup()
	for i := 0; i < 3; i++ {
		s.iterate()
	}

	if len(delays) != 3 {
		t.Fatalf("Expected 3 delays, got %d", len(delays))
	}
	for _, d := range delays {
		if d != 500 {
			t.Errorf("Expected 500ms delay, got %d", d)
		}
	}
}

func TestIterateContinuesAfterTransmitError(t *testing.T) {
	_, _, uart := installMocks()
	SetDelayFunc(func(uint32) {})
	defer SetDelayFunc(nil)

	var logged []string
	SetDebugWriter(func(s string) { logged = append(logged, s) })
	SetDebugEnabled(true)
	defer func() {
		SetDebugEnabled(false)
		SetDebugWriter(func(string) {})
	}()

	s := newTestSampler(0)
	s.Setup()
	uart.failAt = uart.tx.Len() + 5

	s.iterate()
	uart.failAt = 0
	s.iterate()

	if s.Errors != 1 || s.LinesSent != 1 {
		t.Errorf("Expected 1 error and 1 line, got errors=%d lines=%d", s.Errors, s.LinesSent)
	}
	found := false
	for _, msg := range logged {
		if strings.Contains(msg, "step failed") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the failure to be logged, got %q", logged)
	}
}

func TestLinePeriodWithBusyWait(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping real-time period test in short mode")
	}

	_, _, uart := installMocks()
	s := newTestSampler(0)
	s.Setup()

	for i := 0; i < 3; i++ {
		s.iterate()
	}

	if len(uart.lineEnds) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(uart.lineEnds))
	}
	for i := 1; i < len(uart.lineEnds); i++ {
		gap := uart.lineEnds[i].Sub(uart.lineEnds[i-1])
		if gap < 450*time.Millisecond || gap > 550*time.Millisecond {
			t.Errorf("gap %d: %v outside 500ms +-10%%", i, gap)
		}
		t.Logf("gap %d: %v", i, gap)
	}
}

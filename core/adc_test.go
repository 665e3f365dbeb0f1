package core

import "testing"

func TestConfigureAnalog(t *testing.T) {
	adc, _, _ := installMocks()

	if err := ConfigureAnalog(); err != nil {
		t.Fatalf("ConfigureAnalog failed: %v", err)
	}

	if adc.initCalls != 1 {
		t.Errorf("Expected 1 Init call, got %d", adc.initCalls)
	}
	if adc.cfg.Reference != ADCRefAVcc {
		t.Errorf("Expected AVcc reference, got %d", adc.cfg.Reference)
	}
	if adc.cfg.Prescaler != 128 {
		t.Errorf("Expected prescaler 128, got %d", adc.cfg.Prescaler)
	}
	if clk := ADCClock(adc.cfg.Prescaler); clk != 125000 {
		t.Errorf("Expected 125kHz conversion clock, got %d", clk)
	}
}

func TestConfigureAnalogError(t *testing.T) {
	adc, _, _ := installMocks()
	adc.initErr = errMockTx

	if err := ConfigureAnalog(); err != errMockTx {
		t.Errorf("Expected Init error to propagate, got %v", err)
	}
}

func TestReadAnalog(t *testing.T) {
	adc, _, _ := installMocks()
	adc.values[0] = 0
	adc.values[1] = 1023
	adc.values[2] = 517

	testCases := []struct {
		name string
		ch   ADCChannelID
		want uint16
	}{
		{"ground", 0, 0},
		{"supply rail", 1, 1023},
		{"mid", 2, 517},
		{"channel wraps to 3 bits", 10, 517},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReadAnalog(tc.ch); got != tc.want {
				t.Errorf("ReadAnalog(%d) = %d, want %d", tc.ch, got, tc.want)
			}
		})
	}

	if last := adc.readOrder[len(adc.readOrder)-1]; last != 2 {
		t.Errorf("Expected channel 10 to be sampled as 2, got %d", last)
	}
}

func TestReadAnalogMasksTo10Bits(t *testing.T) {
	adc, _, _ := installMocks()
	adc.values[0] = 0xFFFF

	if got := ReadAnalog(0); got != ADCMax {
		t.Errorf("Expected %d, got %d", ADCMax, got)
	}
}

func TestReadAnalogRecordsTiming(t *testing.T) {
	adc, _, _ := installMocks()
	adc.values[1] = 300

	ReadAnalog(1)

	events := TimingEvents()
	if len(events) != 1 {
		t.Fatalf("Expected 1 timing event, got %d", len(events))
	}
	if events[0].EventType != EvtAnalogRead || events[0].ID != 1 || events[0].Value != 300 {
		t.Errorf("Unexpected event %+v", events[0])
	}
}

func TestMustADCPanicsWithoutDriver(t *testing.T) {
	SetADCDriver(nil)
	defer func() {
		if recover() == nil {
			t.Error("Expected MustADC to panic without a driver")
		}
	}()
	MustADC()
}

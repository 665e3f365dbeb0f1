package core

import (
	"bytes"
	"errors"
	"time"
)

// mockADCDriver returns preset values per channel
type mockADCDriver struct {
	cfg       ADCConfig
	initCalls int
	values    map[ADCChannelID]ADCValue
	readOrder []ADCChannelID
	initErr   error
}

func newMockADCDriver() *mockADCDriver {
	return &mockADCDriver{values: make(map[ADCChannelID]ADCValue)}
}

func (m *mockADCDriver) Init(cfg ADCConfig) error {
	m.initCalls++
	m.cfg = cfg
	return m.initErr
}

func (m *mockADCDriver) ReadRaw(ch ADCChannelID) ADCValue {
	m.readOrder = append(m.readOrder, ch)
	return m.values[ch]
}

// mockGPIODriver models an AVR port pin: without the pull-up an unpressed
// input floats and reads low.
type mockGPIODriver struct {
	pullUp         map[GPIOPin]bool
	grounded       map[GPIOPin]bool
	configureCalls map[GPIOPin]int
	readOrder      []GPIOPin
}

func newMockGPIODriver() *mockGPIODriver {
	return &mockGPIODriver{
		pullUp:         make(map[GPIOPin]bool),
		grounded:       make(map[GPIOPin]bool),
		configureCalls: make(map[GPIOPin]int),
	}
}

func (m *mockGPIODriver) ConfigureInputPullUp(pin GPIOPin) error {
	m.configureCalls[pin]++
	m.pullUp[pin] = true
	return nil
}

func (m *mockGPIODriver) ReadPin(pin GPIOPin) bool {
	m.readOrder = append(m.readOrder, pin)
	if m.grounded[pin] {
		return false
	}
	return m.pullUp[pin]
}

var errMockTx = errors.New("mock transmit failure")

// mockUARTDriver captures transmitted bytes and the time each line ended
type mockUARTDriver struct {
	cfg        UARTConfig
	configured bool
	tx         bytes.Buffer
	lineEnds   []time.Time
	failAt     int // fail the nth byte (1-based), 0 = never
}

func (m *mockUARTDriver) Configure(cfg UARTConfig) error {
	m.cfg = cfg
	m.configured = true
	return nil
}

func (m *mockUARTDriver) WriteByte(c byte) error {
	if m.failAt > 0 && m.tx.Len()+1 == m.failAt {
		return errMockTx
	}
	m.tx.WriteByte(c)
	if c == '\n' {
		m.lineEnds = append(m.lineEnds, time.Now())
	}
	return nil
}

// installMocks registers fresh mock drivers and resets package state
func installMocks() (*mockADCDriver, *mockGPIODriver, *mockUARTDriver) {
	adc := newMockADCDriver()
	gpio := newMockGPIODriver()
	uart := &mockUARTDriver{}
	SetADCDriver(adc)
	SetGPIODriver(gpio)
	SetUARTDriver(uart)
	SetDelayFunc(nil)
	ClearTimingRing()
	return adc, gpio, uart
}

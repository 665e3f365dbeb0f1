package sim

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"gostick/core"
)

// ErrTransmitterDisabled is returned for writes before Configure
var ErrTransmitterDisabled = errors.New("sim: UART transmitter not enabled")

// UART is a transmit-only serial port writing to an io.Writer
type UART struct {
	mu      sync.Mutex
	w       io.Writer
	cfg     core.UARTConfig
	enabled bool

	// Pace makes WriteByte take one frame time (start + data + stop bits)
	Pace bool

	BytesSent int
}

var _ core.UARTDriver = (*UART)(nil)

// NewUART returns a disabled transmitter that writes to w
func NewUART(w io.Writer) *UART {
	return &UART{w: w}
}

// Configure checks the divisor matches the baud rate and enables the transmitter
func (u *UART) Configure(cfg core.UARTConfig) error {
	if cfg.BaudRate == 0 {
		return errors.New("sim: baud rate must be set")
	}
	if want := core.BaudDivisor(cfg.BaudRate); cfg.Divisor != want {
		return fmt.Errorf("sim: divisor %d does not match %d baud (want %d)", cfg.Divisor, cfg.BaudRate, want)
	}
	if cfg.DataBits < 5 || cfg.DataBits > 9 {
		return fmt.Errorf("sim: unsupported data bits %d", cfg.DataBits)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.cfg = cfg
	u.enabled = true
	return nil
}

// WriteByte writes c, taking one frame time when Pace is set
func (u *UART) WriteByte(c byte) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.enabled {
		return ErrTransmitterDisabled
	}
	if u.Pace {
		time.Sleep(u.frameTime())
	}
	if _, err := u.w.Write([]byte{c}); err != nil {
		return fmt.Errorf("sim: write failed: %w", err)
	}
	u.BytesSent++
	return nil
}

// Config returns the configuration applied by Configure
func (u *UART) Config() core.UARTConfig {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cfg
}

// frameTime is start bit + data bits + one stop bit at the actual baud
// rate the divisor produces.
func (u *UART) frameTime() time.Duration {
	actualBaud := float64(core.CPUFrequency) / (16 * float64(uint32(u.cfg.Divisor)+1))
	bits := float64(u.cfg.DataBits) + 2
	return time.Duration(bits / actualBaud * float64(time.Second))
}

package core

// UARTConfig describes the serial framing. Parity is always none and the
// stop bit count is left at the hardware default.
type UARTConfig struct {
	BaudRate uint32
	Divisor  uint16 // baud-rate register value for BaudRate at CPUFrequency
	DataBits uint8
}

// UARTDriver is the abstract transmit-only UART interface that core code uses.
type UARTDriver interface {
	// Configure sets the baud divisor and framing and enables the transmitter.
	Configure(cfg UARTConfig) error

	// WriteByte busy-waits until the transmit buffer is empty, then
	// hands it c. There is no timeout.
	WriteByte(c byte) error
}

// Global singleton used by core code.
var uartDriver UARTDriver

// SetUARTDriver is called by target-specific code to register its driver.
func SetUARTDriver(d UARTDriver) {
	uartDriver = d
}

// MustUART returns the configured driver or panics if missing.
func MustUART() UARTDriver {
	if uartDriver == nil {
		panic("UART driver not configured")
	}
	return uartDriver
}

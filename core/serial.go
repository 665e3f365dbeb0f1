// Serial transmitter: polled, byte at a time, no queueing
package core

const (
	// SerialBaudRate is the fixed line rate of the status stream
	SerialBaudRate = 9600

	// SerialDataBits selects 8N1 framing
	SerialDataBits = 8
)

// DefaultUARTConfig returns 9600 baud, 8 data bits, divisor computed
// for CPUFrequency.
func DefaultUARTConfig() UARTConfig {
	return UARTConfig{
		BaudRate: SerialBaudRate,
		Divisor:  BaudDivisor(SerialBaudRate),
		DataBits: SerialDataBits,
	}
}

// ConfigureSerial programs the baud divisor and framing and enables the transmitter.
func ConfigureSerial() error {
	cfg := DefaultUARTConfig()
	if err := MustUART().Configure(cfg); err != nil {
		return err
	}
	DebugPrintln("[UART] tx enabled, baud=" + utoa(cfg.BaudRate) + " ubrr=" + utoa(uint32(cfg.Divisor)))
	return nil
}

// TransmitByte blocks until the transmit buffer is free, then writes c.
func TransmitByte(c byte) error {
	return MustUART().WriteByte(c)
}

// TransmitString sends s byte by byte, in order, stopping early at a NUL.
// No line terminator is added.
func TransmitString(s []byte) error {
	for _, c := range s {
		if c == 0 {
			break
		}
		if err := TransmitByte(c); err != nil {
			return err
		}
	}
	return nil
}

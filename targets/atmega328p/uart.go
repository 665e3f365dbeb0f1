//go:build avr

package main

import (
	"device/avr"
	"errors"

	"gostick/core"
)

// AvrUARTDriver is a transmit-only driver for USART0. The receiver and
// its interrupt stay disabled, so machine.UART0 is bypassed.
type AvrUARTDriver struct{}

var _ core.UARTDriver = (*AvrUARTDriver)(nil)

func NewAvrUARTDriver() *AvrUARTDriver {
	return &AvrUARTDriver{}
}

func (d *AvrUARTDriver) Configure(cfg core.UARTConfig) error {
	if cfg.DataBits != 8 {
		return errors.New("only 8 data bits supported")
	}
	avr.UBRR0H.Set(uint8(cfg.Divisor >> 8))
	avr.UBRR0L.Set(uint8(cfg.Divisor))
	avr.UCSR0B.Set(avr.UCSR0B_TXEN0)
	// 8 data bits, no parity, 1 stop bit
	avr.UCSR0C.Set(avr.UCSR0C_UCSZ01 | avr.UCSR0C_UCSZ00)
	return nil
}

// WriteByte waits for the data register to empty, then loads c
func (d *AvrUARTDriver) WriteByte(c byte) error {
	for !avr.UCSR0A.HasBits(avr.UCSR0A_UDRE0) {
	}
	avr.UDR0.Set(c)
	return nil
}

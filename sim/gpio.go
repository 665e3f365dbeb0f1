package sim

import (
	"sync"

	"gostick/core"
)

// GPIO models one AVR port: direction, output and external contacts per pin
type GPIO struct {
	mu       sync.Mutex
	output   map[core.GPIOPin]bool // DDR bit set
	portBit  map[core.GPIOPin]bool // PORT bit: drive high, or pull-up on inputs
	grounded map[core.GPIOPin]bool // switch closed to ground

	ConfigureCalls int
}

var _ core.GPIODriver = (*GPIO)(nil)

// NewGPIO returns a port with every pin a floating input
func NewGPIO() *GPIO {
	return &GPIO{
		output:   make(map[core.GPIOPin]bool),
		portBit:  make(map[core.GPIOPin]bool),
		grounded: make(map[core.GPIOPin]bool),
	}
}

// ConfigureInputPullUp clears DDR and sets PORT for pin
func (g *GPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ConfigureCalls++
	g.output[pin] = false
	g.portBit[pin] = true
	return nil
}

// ReadPin returns the PIN register bit
func (g *GPIO) ReadPin(pin core.GPIOPin) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.output[pin] {
		return g.portBit[pin]
	}
	if g.grounded[pin] {
		return false
	}
	// input: pulled up, or floating (reads low here)
	return g.portBit[pin]
}

// SetPressed closes or opens the switch between pin and ground
func (g *GPIO) SetPressed(pin core.GPIOPin, pressed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.grounded[pin] = pressed
}

// PullUpEnabled reports whether pin is an input with the pull-up on
func (g *GPIO) PullUpEnabled(pin core.GPIOPin) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.output[pin] && g.portBit[pin]
}

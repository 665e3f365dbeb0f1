package core

import "time"

// CPUFrequency is the system clock of the target board (16 MHz crystal)
const CPUFrequency = 16000000

// StatusPeriodMs is the fixed delay after each status line
const StatusPeriodMs = 500

var bootTime = time.Now()

// DelayFunc blocks the caller for ms milliseconds
type DelayFunc func(ms uint32)

var delayFunc DelayFunc = busyWaitMs

// GetTime returns milliseconds since boot. Wraps after ~49 days.
func GetTime() uint32 {
	return uint32(time.Since(bootTime) / time.Millisecond)
}

// BaudDivisor returns the UBRR value for baud in normal-speed mode,
// CPUFrequency/16/baud - 1, truncated.
func BaudDivisor(baud uint32) uint16 {
	return uint16(CPUFrequency/16/baud - 1)
}

// ADCClock returns the conversion clock for a prescaler value
func ADCClock(prescaler uint8) uint32 {
	return CPUFrequency / uint32(prescaler)
}

// SetDelayFunc replaces the delay used between iterations.
// Passing nil restores the default busy-wait.
func SetDelayFunc(f DelayFunc) {
	if f == nil {
		f = busyWaitMs
	}
	delayFunc = f
}

// DelayMs blocks for ms milliseconds
func DelayMs(ms uint32) {
	delayFunc(ms)
}

// busyWaitMs spins on the clock; it never yields.
func busyWaitMs(ms uint32) {
	deadline := time.Now().Add(time.Duration(ms) * time.Millisecond)
	for time.Now().Before(deadline) {
	}
}

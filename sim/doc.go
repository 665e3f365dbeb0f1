// Package sim provides simulated peripherals that satisfy the core HAL
// interfaces, so the status loop can run on a development host.
//
// The models follow the ATmega328P datasheet closely enough for the
// observable contract:
//
//   - ADC: ideal 10-bit converter, code = floor(Vin * 1024 / Vref),
//     clamped to 0-1023. Reading before Init panics (on hardware the
//     conversion would never complete).
//   - GPIO: each pin has a direction bit, an output/pull-up bit and an
//     external switch to ground. An input without the pull-up floats
//     and reads low.
//   - UART: bytes go to an io.Writer, optionally paced at ten bit times
//     per byte for the configured baud rate.
package sim

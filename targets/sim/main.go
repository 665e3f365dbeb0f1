//go:build !tinygo

// Host simulation target: runs the firmware loop against simulated
// peripherals. The status stream goes to stdout, or to a serial device
// (e.g. one end of a null-modem pair) for exercising gostick-host.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gostick/core"
	"gostick/host/serial"
	"gostick/sim"
)

var (
	device = flag.String("device", "", "Serial device to transmit on (default stdout)")
	circle = flag.Duration("circle", 4*time.Second, "Time for one revolution of the simulated stick")
	pace   = flag.Bool("pace", true, "Transmit at 9600 baud byte timing")
	debug  = flag.Bool("debug", false, "Write debug output to stderr")
)

func main() {
	flag.Parse()

	log.SetOutput(os.Stderr)
	core.SetDebugWriter(func(s string) { log.Println(s) })
	core.SetDebugEnabled(*debug)

	var out io.Writer = os.Stdout
	if *device != "" {
		port, err := serial.Open(serial.DefaultConfig(*device))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()
		out = port
	}

	board := &sim.Board{
		ADC:       sim.NewADC(),
		GPIO:      sim.NewGPIO(),
		UART:      sim.NewUART(out),
		XChannel:  JoystickXChannel,
		YChannel:  JoystickYChannel,
		SwitchPin: JoystickSwitchPin,
		ButtonPin: Button1Pin,
	}
	board.UART.Pace = *pace
	board.Register()

	sampler := core.NewSampler(core.SamplerConfig{
		XChannel:  JoystickXChannel,
		YChannel:  JoystickYChannel,
		SwitchPin: JoystickSwitchPin,
		ButtonPin: Button1Pin,
	})
	if err := sampler.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: setup failed: %v\n", err)
		os.Exit(1)
	}

	// Move the stick in the background, as a hand would
	start := time.Now()
	go func() {
		for {
			board.Circle(time.Since(start), *circle)
			time.Sleep(20 * time.Millisecond)
		}
	}()

	// Dump the timing ring on interrupt for post-mortem
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		core.DumpTimingRing()
		log.Printf("lines sent: %d, errors: %d", sampler.LinesSent, sampler.Errors)
		os.Exit(0)
	}()

	sampler.Run()
}

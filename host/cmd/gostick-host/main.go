package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gostick/host/bridge"
	"gostick/host/config"
	"gostick/host/monitor"
	"gostick/host/serial"
)

var (
	configPath = flag.String("config", "gostick.yaml", "Path to YAML config file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	broker     = flag.String("mqtt", "", "MQTT broker URL, e.g. tcp://localhost:1883 (overrides config)")
	listPorts  = flag.Bool("list", false, "List serial ports and exit")
	raw        = flag.Bool("raw", false, "Print lines exactly as received")
	verbose    = flag.Bool("verbose", false, "Print interval and deflection for every line")
)

func main() {
	flag.Parse()

	if *listPorts {
		ports, err := serial.Ports()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(ports) == 0 {
			fmt.Println("No serial ports found")
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	fmt.Println("gostick host - joystick status monitor")
	fmt.Println("======================================")

	mon := monitor.New(cfg.Monitor)

	fmt.Printf("Connecting to %s at %d baud...\n", cfg.Serial.Port, cfg.Serial.Baud)
	serialCfg := serial.DefaultConfig(cfg.Serial.Port)
	serialCfg.Baud = cfg.Serial.Baud
	serialCfg.ReadTimeout = int(cfg.Serial.ReadTimeout.Milliseconds())
	if err := mon.Connect(serialCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer mon.Close()

	var mqttBridge *bridge.Bridge
	if cfg.MQTT.Broker != "" {
		mqttBridge, err = bridge.Dial(cfg.MQTT)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer mqttBridge.Close()
		fmt.Printf("Publishing to %s on %s\n", cfg.MQTT.Topic, cfg.MQTT.Broker)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = mon.Run(ctx, func(r monitor.Reading) {
		printReading(cfg, r)
		if mqttBridge != nil {
			if err := mqttBridge.Publish(r.Status); err != nil {
				log.Printf("Error publishing status: %v", err)
			}
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	printSummary(mon.Stats(), mqttBridge)
}

// applyFlags lets command-line flags override the config file
func applyFlags(cfg *config.Config) {
	if *device != "" {
		cfg.Serial.Port = *device
	}
	if *baud != 0 {
		cfg.Serial.Baud = *baud
	}
	if *broker != "" {
		cfg.MQTT.Broker = *broker
	}
	if *raw {
		cfg.Monitor.Raw = true
	}
}

func printReading(cfg *config.Config, r monitor.Reading) {
	if cfg.Monitor.Raw {
		fmt.Println(string(r.Raw))
		return
	}

	s := r.Status
	fmt.Printf("X=%4d Y=%4d SW=%d B1=%d", s.X, s.Y, s.SW, s.B1)
	if *verbose {
		d := r.Deflection
		fmt.Printf("  %-2s |%.2f|  dt=%v", d.Direction(), d.Magnitude, r.Interval)
		if !r.OnTime {
			fmt.Print(" (off period)")
		}
	}
	fmt.Println()
}

func printSummary(stats monitor.Stats, b *bridge.Bridge) {
	fmt.Println("\nSession summary:")
	fmt.Printf("  lines:     %d good, %d rejected, %d overflowed\n", stats.Lines, stats.Rejected, stats.Overflows)
	fmt.Printf("  intervals: min %v, mean %v, max %v\n", stats.MinInterval, stats.MeanInterval(), stats.MaxInterval)
	fmt.Printf("  timing:    %d early, %d late\n", stats.Early, stats.Late)
	if b != nil {
		ok, failed := b.Counts()
		fmt.Printf("  mqtt:      %d published, %d failed\n", ok, failed)
	}
}

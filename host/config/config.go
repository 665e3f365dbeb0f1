package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the host tool configuration.
type Config struct {
	Serial  SerialConfig  `yaml:"serial"`
	Monitor MonitorConfig `yaml:"monitor"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port        string        `yaml:"port"`
	Baud        int           `yaml:"baud"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// MonitorConfig contains line timing and display parameters.
type MonitorConfig struct {
	Period    time.Duration `yaml:"period"`    // expected gap between status lines
	Tolerance float64       `yaml:"tolerance"` // allowed relative deviation from Period
	DeadZone  float32       `yaml:"dead_zone"` // deflection below this is reported as centred
	Raw       bool          `yaml:"raw"`       // print lines as received instead of decoded
}

// MQTTConfig contains the optional broker bridge settings. An empty
// Broker disables the bridge.
type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
	Retained bool   `yaml:"retained"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:        "/dev/ttyUSB0",
			Baud:        9600,
			ReadTimeout: 100 * time.Millisecond,
		},
		Monitor: MonitorConfig{
			Period:    500 * time.Millisecond,
			Tolerance: 0.10,
			DeadZone:  0.05,
		},
		MQTT: MQTTConfig{
			ClientID: "gostick-host",
			Topic:    "gostick/input",
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects values no run could work with.
func (c *Config) Validate() error {
	if c.Monitor.Tolerance < 0 || c.Monitor.Tolerance >= 1 {
		return fmt.Errorf("monitor.tolerance must be in [0, 1), got %v", c.Monitor.Tolerance)
	}
	if c.Monitor.DeadZone < 0 || c.Monitor.DeadZone >= 1 {
		return fmt.Errorf("monitor.dead_zone must be in [0, 1), got %v", c.Monitor.DeadZone)
	}
	if c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.MQTT.QoS)
	}
	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.Baud == 0 {
		c.Serial.Baud = def.Serial.Baud
	}
	if c.Serial.ReadTimeout == 0 {
		c.Serial.ReadTimeout = def.Serial.ReadTimeout
	}

	if c.Monitor.Period == 0 {
		c.Monitor.Period = def.Monitor.Period
	}
	if c.Monitor.Tolerance == 0 {
		c.Monitor.Tolerance = def.Monitor.Tolerance
	}

	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = def.MQTT.ClientID
	}
	if c.MQTT.Topic == "" {
		c.MQTT.Topic = def.MQTT.Topic
	}
}

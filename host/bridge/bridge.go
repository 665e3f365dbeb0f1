// Package bridge republishes decoded status lines to an MQTT broker
package bridge

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"gostick/host/config"
	"gostick/protocol"
)

const (
	connectTimeout = 5 * time.Second
	publishTimeout = 2 * time.Second
	disconnectMs   = 250
)

// ErrPublishTimeout is returned when the broker does not acknowledge in time
var ErrPublishTimeout = errors.New("mqtt publish timed out")

// Bridge publishes one MQTT message per status line. The payload is the
// status JSON exactly as the firmware sent it, without the newline.
type Bridge struct {
	client   mqtt.Client
	topic    string
	qos      byte
	retained bool

	published atomic.Uint32
	failed    atomic.Uint32
}

// Dial connects to the broker named in cfg
func Dial(cfg config.MQTTConfig) (*Bridge, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("mqtt broker not configured")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("timed out connecting to %s", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Broker, err)
	}

	return New(client, cfg), nil
}

// New wraps an existing client
func New(client mqtt.Client, cfg config.MQTTConfig) *Bridge {
	return &Bridge{
		client:   client,
		topic:    cfg.Topic,
		qos:      cfg.QoS,
		retained: cfg.Retained,
	}
}

// Publish sends s and waits for the broker to take it
func (b *Bridge) Publish(s protocol.Status) error {
	line := protocol.EncodeStatus(s)
	payload := line[:len(line)-1]

	token := b.client.Publish(b.topic, b.qos, b.retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		b.failed.Add(1)
		return ErrPublishTimeout
	}
	if err := token.Error(); err != nil {
		b.failed.Add(1)
		return fmt.Errorf("failed to publish to %s: %w", b.topic, err)
	}

	b.published.Add(1)
	return nil
}

// Counts returns how many publishes succeeded and failed
func (b *Bridge) Counts() (published, failed uint32) {
	return b.published.Load(), b.failed.Load()
}

// Close disconnects from the broker
func (b *Bridge) Close() {
	b.client.Disconnect(disconnectMs)
}

package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"gostick/host/config"
	"gostick/host/serial"
	"gostick/protocol"
)

// Reading is one decoded status line plus receive-side metadata
type Reading struct {
	Status     protocol.Status
	Raw        []byte
	Received   time.Time
	Interval   time.Duration // since the previous good line; 0 for the first
	OnTime     bool          // Interval within tolerance of the expected period
	Deflection Deflection
}

// Handler receives every good reading, in order, on the Run goroutine
type Handler func(Reading)

// Monitor reads the firmware's status stream from a serial port
type Monitor struct {
	cfg      config.MonitorConfig
	port     serial.Port
	splitter *protocol.LineSplitter

	mu        sync.Mutex
	stats     Stats
	lastGood  time.Time
	connected bool

	// now is replaceable for tests
	now func() time.Time
}

// New creates a monitor that is not yet connected
func New(cfg config.MonitorConfig) *Monitor {
	if cfg.Period == 0 {
		cfg.Period = config.Default().Monitor.Period
	}
	return &Monitor{
		cfg:      cfg,
		splitter: protocol.NewLineSplitter(),
		now:      time.Now,
	}
}

// Connect opens the serial device described by cfg
func (m *Monitor) Connect(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}
	if err := port.Flush(); err != nil {
		log.Printf("Error flushing serial port: %v", err)
	}
	m.Attach(port)
	return nil
}

// Attach uses an already open port
func (m *Monitor) Attach(port serial.Port) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.port = port
	m.connected = true
	m.splitter.Reset()
	m.lastGood = time.Time{}
}

// Close closes the port
func (m *Monitor) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}
	m.connected = false
	if m.port != nil {
		return m.port.Close()
	}
	return nil
}

// IsConnected returns whether a port is attached
func (m *Monitor) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Stats returns a snapshot of the session statistics
func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.stats
	s.Overflows = m.splitter.Overflows
	return s
}

// Run reads until ctx is cancelled or the port fails. Read timeouts
// (io.EOF with no data) are treated as idle time. Returns nil on cancellation.
func (m *Monitor) Run(ctx context.Context, handle Handler) error {
	m.mu.Lock()
	port := m.port
	m.mu.Unlock()
	if port == nil {
		return fmt.Errorf("not connected")
	}

	buf := make([]byte, 64)
	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := port.Read(buf)
		if n > 0 {
			m.splitter.Feed(buf[:n], func(line []byte) {
				m.handleLine(line, handle)
			})
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Yield to avoid a busy loop on an idle or drained port
				time.Sleep(10 * time.Millisecond)
				continue
			}
			if ctx.Err() != nil || !m.IsConnected() {
				return nil
			}
			return fmt.Errorf("failed to read from serial port: %w", err)
		}
	}
}

// handleLine decodes one line and updates the statistics
func (m *Monitor) handleLine(line []byte, handle Handler) {
	status, err := protocol.DecodeStatus(line)
	now := m.now()

	m.mu.Lock()
	if err != nil {
		m.stats.Rejected++
		m.mu.Unlock()
		log.Printf("Rejected line %q: %v", line, err)
		return
	}

	r := Reading{
		Status:     status,
		Raw:        line,
		Received:   now,
		OnTime:     true,
		Deflection: NewDeflection(status, m.cfg.DeadZone),
	}
	if !m.lastGood.IsZero() {
		r.Interval = now.Sub(m.lastGood)
		r.OnTime = m.stats.observe(r.Interval, m.cfg.Period, m.cfg.Tolerance)
	}
	m.lastGood = now
	m.stats.Lines++
	m.mu.Unlock()

	if handle != nil {
		handle(r)
	}
}

package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Literal fragments of the status line, in wire order
var (
	fragX       = []byte(`{"input":{"js1":{"X":`)
	fragY       = []byte(`,"Y":`)
	fragSW      = []byte(`,"SW":`)
	fragButtons = []byte(`},"buttons":{"b1":`)
	fragClose   = []byte(`}}}`)
)

var (
	// ErrOutOfRange is returned when a decoded field is outside its wire range
	ErrOutOfRange = errors.New("status field out of range")

	// ErrNotCanonical is returned when a line parses but is not byte-identical
	// to what the firmware would have emitted for the same readings
	ErrNotCanonical = errors.New("status line is not in canonical form")
)

// AppendStatus assembles one complete status line, terminator included,
// into out. The caller transmits the result in a single call.
func AppendStatus(out OutputBuffer, s Status) {
	out.Output(fragX)
	appendUint(out, s.X)
	out.Output(fragY)
	appendUint(out, s.Y)
	out.Output(fragSW)
	appendUint(out, s.SW)
	out.Output(fragButtons)
	appendUint(out, s.B1)
	out.Output(fragClose)
	out.OutputByte(LineTerminator)
}

// EncodeStatus returns the status line for s as a fresh slice
func EncodeStatus(s Status) []byte {
	out := NewScratchOutput()
	AppendStatus(out, s)
	line := make([]byte, out.CurPosition())
	copy(line, out.Result())
	return line
}

// wireStatus mirrors the nested JSON document. Pointers tell a missing
// field apart from a zero.
type wireStatus struct {
	Input struct {
		JS1 struct {
			X  *int64 `json:"X"`
			Y  *int64 `json:"Y"`
			SW *int64 `json:"SW"`
		} `json:"js1"`
		Buttons struct {
			B1 *int64 `json:"b1"`
		} `json:"buttons"`
	} `json:"input"`
}

// DecodeStatus parses a single status line. The trailing newline is optional.
// Lines that decode but differ from the canonical encoding are rejected.
func DecodeStatus(line []byte) (Status, error) {
	line = bytes.TrimSuffix(line, []byte{LineTerminator})
	line = bytes.TrimSuffix(line, []byte{'\r'})

	var w wireStatus
	if err := json.Unmarshal(line, &w); err != nil {
		return Status{}, fmt.Errorf("failed to parse status line: %w", err)
	}

	x, err := field("X", w.Input.JS1.X, AxisMax)
	if err != nil {
		return Status{}, err
	}
	y, err := field("Y", w.Input.JS1.Y, AxisMax)
	if err != nil {
		return Status{}, err
	}
	sw, err := field("SW", w.Input.JS1.SW, 1)
	if err != nil {
		return Status{}, err
	}
	b1, err := field("b1", w.Input.Buttons.B1, 1)
	if err != nil {
		return Status{}, err
	}

	s := Status{X: x, Y: y, SW: sw, B1: b1}

	canonical := EncodeStatus(s)
	if !bytes.Equal(line, canonical[:len(canonical)-1]) {
		return s, fmt.Errorf("%w: %q", ErrNotCanonical, line)
	}

	return s, nil
}

func field(name string, v *int64, limit int64) (uint16, error) {
	if v == nil {
		return 0, fmt.Errorf("status field %s missing", name)
	}
	if *v < 0 || *v > limit {
		return 0, fmt.Errorf("%w: %s=%d", ErrOutOfRange, name, *v)
	}
	return uint16(*v), nil
}

package monitor

import (
	"github.com/chewxy/math32"

	"gostick/protocol"
)

// axisCentre is the midpoint of the 10-bit range
const axisCentre = protocol.AxisMax / 2.0

// Deflection is the stick position normalised to [-1, 1] per axis
type Deflection struct {
	X         float32
	Y         float32
	Magnitude float32 // distance from centre, clamped to 1
	Angle     float32 // radians, counter-clockwise from +X
}

// NewDeflection normalises raw axis readings. Positions with a magnitude
// below deadZone are reported as exactly centred.
func NewDeflection(s protocol.Status, deadZone float32) Deflection {
	x := (float32(s.X) - axisCentre) / axisCentre
	y := (float32(s.Y) - axisCentre) / axisCentre

	mag := math32.Sqrt(x*x + y*y)
	if mag < deadZone {
		return Deflection{}
	}
	if mag > 1 {
		mag = 1
	}

	return Deflection{
		X:         x,
		Y:         y,
		Magnitude: mag,
		Angle:     math32.Atan2(y, x),
	}
}

var compass = [8]string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}

// Direction returns a compass point for the deflection, or "C" when centred
func (d Deflection) Direction() string {
	if d.Magnitude == 0 {
		return "C"
	}
	sector := int(math32.Floor(d.Angle/(math32.Pi/4)+0.5)) % 8
	if sector < 0 {
		sector += 8
	}
	return compass[sector]
}

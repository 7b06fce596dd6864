package board

import (
	"schemboard/internal/config"
	"schemboard/internal/geom"
)

// Direction tells which way a port faces.
type Direction int

const (
	DirIn Direction = iota
	DirOut
)

// Opposite returns the direction a wire endpoint must have to connect.
func (d Direction) Opposite() Direction {
	if d == DirOut {
		return DirIn
	}
	return DirOut
}

func (d Direction) String() string {
	if d == DirOut {
		return "out"
	}
	return "in"
}

// Port is a named connection point on a block. The offset is relative to the
// owning block's center and never changes after construction; the world
// position is always owner position + offset.
type Port struct {
	Name   string
	Dir    Direction
	Offset geom.Point
	Family string
	State  bool
}

// BlockID is a stable handle for a block. Zero is never assigned, so the zero
// value means "no block".
type BlockID int

// PortRef addresses a port without owning it. Refs resolve through the world
// and fail closed once the owning block is gone.
type PortRef struct {
	Block BlockID
	Port  int
}

// Wire is a directed connection. Src always refers to an out port and Dst to
// an in port; NewWire enforces the orientation.
type Wire struct {
	Src, Dst PortRef
}

// FamilyColor resolves a signal family to its on or off color, falling back
// to the default family for unknown names. An unresolvable default yields
// black rather than an error; color lookup never fails.
func FamilyColor(families map[string]config.Family, defaultFamily, name string, on bool) config.RGB {
	pal, ok := families[name]
	if !ok {
		pal, ok = families[defaultFamily]
		if !ok {
			return config.RGB{}
		}
	}
	if on {
		return pal.On
	}
	return pal.Off
}

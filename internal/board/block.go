package board

import (
	"fmt"

	"schemboard/internal/geom"
)

// BlockKind discriminates the placeable symbol variants.
type BlockKind int

const (
	KindInput BlockKind = iota
	KindLamp
	KindOutput
	KindAnd
	KindOr
	KindNot
)

func (k BlockKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindLamp:
		return "lamp"
	case KindOutput:
		return "output"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindNot:
		return "not"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Block is a placeable schematic symbol. Pos is the grid-snapped center; the
// port list is fixed at construction and ordered by layout.
type Block struct {
	ID       BlockID
	Kind     BlockKind
	Pos      geom.Point
	W, H     int
	Title    string
	Ports    []Port
	Selected bool

	// On is the toggle state of an Input block; unused for other kinds.
	On bool
}

// newBlock builds a block of the given kind centered at pos (snapped to
// grid). n is the input count for And/Or and ignored otherwise.
func newBlock(id BlockID, kind BlockKind, pos geom.Point, n, grid int) (*Block, error) {
	b := &Block{
		ID:   id,
		Kind: kind,
		Pos:  geom.Point{X: geom.Snap(pos.X, grid), Y: geom.Snap(pos.Y, grid)},
	}
	switch kind {
	case KindInput:
		b.W, b.H = 84, 50
		b.Title = "INPUT"
		b.addPort("out", DirOut, geom.Point{X: b.W / 2}, "red")
	case KindLamp:
		b.W, b.H = 64, 64
		b.Title = "LAMP"
		b.addPort("in", DirIn, geom.Point{X: -b.W / 2}, "red")
	case KindOutput:
		b.W, b.H = 84, 50
		b.Title = "OUTPUT"
		b.addPort("in", DirIn, geom.Point{X: -b.W / 2}, "amber")
	case KindAnd:
		b.W, b.H = 100, 64
		b.Title = fmt.Sprintf("AND%d", n)
		b.addGatePorts(n, "green")
	case KindOr:
		b.W, b.H = 100, 64
		b.Title = fmt.Sprintf("OR%d", n)
		b.addGatePorts(n, "blue")
	case KindNot:
		b.W, b.H = 84, 50
		b.Title = "NOT"
		b.addPort("in", DirIn, geom.Point{X: -b.W / 2}, "purple")
		b.addPort("out", DirOut, geom.Point{X: b.W / 2}, "purple")
	default:
		return nil, fmt.Errorf("unknown block kind %q", kind)
	}
	return b, nil
}

func (b *Block) addPort(name string, dir Direction, offset geom.Point, family string) {
	b.Ports = append(b.Ports, Port{Name: name, Dir: dir, Offset: offset, Family: family})
}

// addGatePorts lays out n inputs evenly spaced on the left edge and one
// output at right-center. The height splits into n+1 equal gaps.
func (b *Block) addGatePorts(n int, family string) {
	gap := b.H / (n + 1)
	for i := 0; i < n; i++ {
		oy := -b.H/2 + gap*(i+1)
		b.addPort(fmt.Sprintf("in%d", i), DirIn, geom.Point{X: -b.W / 2, Y: oy}, family)
	}
	b.addPort("out", DirOut, geom.Point{X: b.W / 2}, family)
}

// Rect returns the body rectangle centered on Pos.
func (b *Block) Rect() geom.Rect {
	return geom.RectAround(b.Pos, b.W, b.H)
}

// MoveTo recenters the block on the snapped position.
func (b *Block) MoveTo(x, y, grid int) {
	b.Pos = geom.Point{X: geom.Snap(x, grid), Y: geom.Snap(y, grid)}
}

// Hit reports whether p lands on the block body.
func (b *Block) Hit(p geom.Point) bool {
	return b.Rect().Contains(p)
}

// PortWorld returns the world position of port i.
func (b *Block) PortWorld(i int) geom.Point {
	return b.Pos.Add(b.Ports[i].Offset)
}

// HitPort returns the index of the port under p, or -1. The port hit area is
// a circle of portRadius+3 around the port center.
func (b *Block) HitPort(p geom.Point, portRadius int) int {
	r := portRadius + 3
	for i := range b.Ports {
		if geom.Dist2(p, b.PortWorld(i)) <= r*r {
			return i
		}
	}
	return -1
}

// Toggle flips an Input block's state and writes it through to the output
// port. Other kinds ignore it.
func (b *Block) Toggle() {
	if b.Kind != KindInput {
		return
	}
	b.On = !b.On
	b.Ports[0].State = b.On
}

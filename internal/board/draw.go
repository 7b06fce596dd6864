package board

import (
	"fmt"

	"schemboard/internal/config"
	"schemboard/internal/geom"
)

// Fixed body colors carried over from the reference styling. Everything
// signal-related comes from the configured family table instead.
var (
	gridLineColor    = config.RGB{26, 28, 32}
	blockBodyColor   = config.RGB{52, 84, 110}
	blockBorderColor = config.RGB{20, 25, 30}
	inputOnColor     = config.RGB{60, 30, 30}
	inputOffColor    = config.RGB{35, 20, 20}
	lampBodyColor    = config.RGB{30, 30, 30}
	outputBodyColor  = config.RGB{34, 34, 24}
)

const (
	bodyCorner  = 10
	titleSize   = 14
	buttonText  = 16
	readoutSize = 14
)

// blockPainters maps each kind to its body renderer. Ports and the selection
// ring are drawn generically afterwards.
var blockPainters = map[BlockKind]func(*World, Surface, *Block){
	KindInput:  paintInput,
	KindLamp:   paintLamp,
	KindOutput: paintOutput,
}

// Draw produces one full frame in fixed order: background, grid, wires, the
// in-progress wire preview, blocks in z-order, toolbar. pointer is the
// current pointer position, used for the preview and toolbar hover.
func (w *World) Draw(s Surface, pointer geom.Point) {
	s.Clear(w.cfg.Colors.Background)
	w.drawGrid(s)
	for _, wire := range w.wires {
		w.drawWire(s, wire)
	}
	w.drawWirePreview(s, pointer)
	for _, b := range w.blocks {
		w.drawBlock(s, b)
	}
	w.drawToolbar(s, pointer)
}

// drawGrid covers the canvas area above the toolbar.
func (w *World) drawGrid(s Surface) {
	top := w.toolbar.Rect.Y
	for x := 0; x < w.cfg.Width; x += w.cfg.Grid {
		s.Line(geom.Point{X: x}, geom.Point{X: x, Y: top}, 1, gridLineColor)
	}
	for y := 0; y < top; y += w.cfg.Grid {
		s.Line(geom.Point{Y: y}, geom.Point{X: w.cfg.Width, Y: y}, 1, gridLineColor)
	}
}

// wirePath returns the orthogonal elbow route between two port positions.
func wirePath(src, dst geom.Point) []geom.Point {
	midX := (src.X + dst.X) / 2
	return []geom.Point{src, {X: midX, Y: src.Y}, {X: midX, Y: dst.Y}, dst}
}

func (w *World) drawWire(s Surface, wire Wire) {
	srcBlock, srcPort := w.port(wire.Src)
	dstBlock, _ := w.port(wire.Dst)
	if srcBlock == nil || dstBlock == nil {
		return
	}
	col := FamilyColor(w.cfg.Families, w.cfg.DefaultFamily, srcPort.Family, srcPort.State)
	src := srcBlock.PortWorld(wire.Src.Port)
	dst := dstBlock.PortWorld(wire.Dst.Port)
	s.Polyline(wirePath(src, dst), w.cfg.WireWidth, col)
	dot := w.cfg.PortRadius / 2
	if dot < 2 {
		dot = 2
	}
	s.FillCircle(src, dot, col)
	s.FillCircle(dst, dot, col)
}

// drawWirePreview routes from the gesture's anchor to the pointer, snapping
// onto a valid target port when one is in range and ringing it.
func (w *World) drawWirePreview(s Surface, pointer geom.Point) {
	if w.wiringFrom == nil {
		return
	}
	fromBlock, fromPort := w.port(*w.wiringFrom)
	if fromBlock == nil {
		return
	}
	end := pointer
	target, ok := w.FindNearPort(pointer, fromPort.Dir.Opposite())
	if ok {
		if tb, _ := w.port(target); tb != nil {
			end = tb.PortWorld(target.Port)
		}
	}
	col := FamilyColor(w.cfg.Families, w.cfg.DefaultFamily, fromPort.Family, fromPort.State)
	s.Polyline(wirePath(fromBlock.PortWorld(w.wiringFrom.Port), end), w.cfg.WireWidth, col)
	if ok {
		s.StrokeCircle(end, w.cfg.PortRadius+3, 2, w.cfg.Colors.Select)
	}
}

func (w *World) drawBlock(s Surface, b *Block) {
	if paint, ok := blockPainters[b.Kind]; ok {
		paint(w, s, b)
	} else {
		paintGeneric(w, s, b)
	}
	if b.Selected {
		s.StrokeRounded(b.Rect().Inflate(3), bodyCorner+2, 2, w.cfg.Colors.Select)
	}
	for i := range b.Ports {
		pos := b.PortWorld(i)
		s.FillCircle(pos, w.cfg.PortRadius+2, config.RGB{})
		col := FamilyColor(w.cfg.Families, w.cfg.DefaultFamily, b.Ports[i].Family, b.Ports[i].State)
		s.FillCircle(pos, w.cfg.PortRadius, col)
	}
}

func paintGeneric(w *World, s Surface, b *Block) {
	r := b.Rect()
	s.FillRounded(r, bodyCorner, blockBodyColor)
	s.StrokeRounded(r, bodyCorner, 2, blockBorderColor)
	s.Text(b.Title, geom.Point{X: r.X + 8, Y: r.Y + 6}, titleSize, w.cfg.Colors.Text)
}

func paintInput(w *World, s Surface, b *Block) {
	r := b.Rect()
	body := inputOffColor
	if b.On {
		body = inputOnColor
	}
	s.FillRounded(r, bodyCorner, body)
	s.StrokeRounded(r, bodyCorner, 2, blockBorderColor)
	s.Text(fmt.Sprintf("INPUT: %s", onOff(b.On)), geom.Point{X: r.X + 8, Y: r.Y + 6}, titleSize, w.cfg.Colors.Text)
}

func paintLamp(w *World, s Surface, b *Block) {
	r := b.Rect()
	s.FillRounded(r, bodyCorner+2, lampBodyColor)
	s.StrokeRounded(r, bodyCorner+2, 2, blockBorderColor)
	in := b.Ports[0]
	bulb := FamilyColor(w.cfg.Families, w.cfg.DefaultFamily, in.Family, in.State)
	c := r.Center()
	s.FillCircle(geom.Point{X: c.X, Y: c.Y + 6}, 16, bulb)
	s.Text("LAMP", geom.Point{X: r.X + 8, Y: r.Y + 6}, titleSize, w.cfg.Colors.Text)
}

func paintOutput(w *World, s Surface, b *Block) {
	r := b.Rect()
	in := b.Ports[0]
	col := FamilyColor(w.cfg.Families, w.cfg.DefaultFamily, in.Family, in.State)
	s.FillRounded(r, bodyCorner, outputBodyColor)
	s.StrokeRounded(r, bodyCorner, 2, blockBorderColor)
	s.Text(fmt.Sprintf("OUTPUT: %s", onOff(in.State)), geom.Point{X: r.X + 8, Y: r.Y + 6}, titleSize, w.cfg.Colors.Text)
	bar := geom.Rect{X: r.Right() - 18, Y: r.Y + 10, W: 10, H: r.H - 20}
	s.FillRounded(bar, 4, col)
}

func (w *World) drawToolbar(s Surface, pointer geom.Point) {
	t := w.toolbar
	colors := w.cfg.Colors
	s.FillRect(t.Rect, colors.PanelBG)
	s.Line(geom.Point{Y: t.Rect.Y}, geom.Point{X: t.Rect.Right(), Y: t.Rect.Y}, 2, colors.PanelBorder)
	for _, b := range t.Buttons {
		s.FillRounded(b.Rect, 8, colors.PanelBG)
		s.StrokeRounded(b.Rect, 8, 1, colors.PanelBorder)
		c := b.Rect.Center()
		s.TextCentered(b.Label, geom.Point{X: c.X, Y: c.Y - 8}, buttonText, colors.Text)
		if b.Rect.Contains(pointer) {
			s.StrokeRounded(b.Rect, 10, 2, colors.Select)
		}
	}
	readout := fmt.Sprintf("Active: %s", t.Active.Label())
	s.Text(readout, geom.Point{X: t.Rect.Right() - 200, Y: t.Rect.Y + 8}, readoutSize, colors.Muted)
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

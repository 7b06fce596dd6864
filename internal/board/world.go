package board

import (
	"fmt"

	"schemboard/internal/config"
	"schemboard/internal/geom"
)

// MouseButton identifies a pointer button. Only the primary button carries
// meaning; events for other buttons are ignored.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
	ButtonMiddle
)

// Key identifies the keys the world reacts to.
type Key int

const (
	KeyDelete Key = iota
	KeyBackspace
	KeyEscape
)

// World owns the whole scene: blocks in z-order (last is topmost), wires in
// creation order, the single selection, the in-progress wiring gesture, and
// the active tool. It is strictly single-threaded; the host feeds it one
// event at a time and asks for one draw pass per frame.
type World struct {
	cfg config.Config

	blocks []*Block
	wires  []Wire
	nextID BlockID

	selected   BlockID // zero means none
	dragOffset geom.Point
	wiringFrom *PortRef

	toolbar   *Toolbar
	tool      Tool
	placeSpec *Payload
}

// NewWorld builds an empty scene for the given configuration.
func NewWorld(cfg config.Config) *World {
	return &World{
		cfg:     cfg,
		nextID:  1,
		toolbar: NewToolbar(cfg.Width, cfg.Height),
		tool:    ToolSelect,
	}
}

// Config returns the settings the world was built with.
func (w *World) Config() config.Config { return w.cfg }

// Toolbar exposes the toolbar for the host and for the draw pass.
func (w *World) Toolbar() *Toolbar { return w.toolbar }

// Tool returns the active interaction mode.
func (w *World) Tool() Tool { return w.tool }

// PlaceSpec returns the pending placement, or nil outside place mode.
func (w *World) PlaceSpec() *Payload { return w.placeSpec }

// Blocks returns the scene's blocks in z-order.
func (w *World) Blocks() []*Block { return w.blocks }

// Wires returns the scene's wires in creation order.
func (w *World) Wires() []Wire { return w.wires }

// Selected returns the selected block, or nil.
func (w *World) Selected() *Block { return w.block(w.selected) }

// WiringFrom returns the gesture's anchor port ref, or nil when no wiring
// gesture is in progress.
func (w *World) WiringFrom() *PortRef { return w.wiringFrom }

// block resolves a handle, failing closed on stale or zero IDs.
func (w *World) block(id BlockID) *Block {
	if id == 0 {
		return nil
	}
	for _, b := range w.blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// port resolves a ref to its owning block and port, or (nil, nil) when the
// block is gone.
func (w *World) port(ref PortRef) (*Block, *Port) {
	b := w.block(ref.Block)
	if b == nil || ref.Port < 0 || ref.Port >= len(b.Ports) {
		return nil, nil
	}
	return b, &b.Ports[ref.Port]
}

// CreateBlock instantiates a block of the given kind at pos (snapped) and
// appends it to the scene. n is the input count for And/Or gates. An unknown
// kind is rejected and the scene is left unmodified.
func (w *World) CreateBlock(kind BlockKind, pos geom.Point, n int) (*Block, error) {
	b, err := newBlock(w.nextID, kind, pos, n, w.cfg.Grid)
	if err != nil {
		return nil, err
	}
	w.nextID++
	w.blocks = append(w.blocks, b)
	return b, nil
}

// RemoveBlock deletes a block, cascading to every wire that references one
// of its ports. Removing the selected block clears the selection.
func (w *World) RemoveBlock(id BlockID) {
	b := w.block(id)
	if b == nil {
		return
	}
	kept := w.wires[:0]
	for _, wire := range w.wires {
		if wire.Src.Block == id || wire.Dst.Block == id {
			continue
		}
		kept = append(kept, wire)
	}
	w.wires = kept
	for i, other := range w.blocks {
		if other.ID == id {
			w.blocks = append(w.blocks[:i], w.blocks[i+1:]...)
			break
		}
	}
	if w.selected == id {
		w.selected = 0
	}
}

// NewWire connects an out port to an in port, normalizing the orientation so
// Src is always the out-direction endpoint. A same-direction pair or a stale
// ref is rejected.
func (w *World) NewWire(a, b PortRef) error {
	_, ap := w.port(a)
	_, bp := w.port(b)
	if ap == nil || bp == nil {
		return fmt.Errorf("wire endpoint does not resolve")
	}
	if ap.Dir == bp.Dir {
		return fmt.Errorf("wire needs one out and one in port, got %s/%s", ap.Dir, bp.Dir)
	}
	if ap.Dir == DirOut {
		w.wires = append(w.wires, Wire{Src: a, Dst: b})
	} else {
		w.wires = append(w.wires, Wire{Src: b, Dst: a})
	}
	return nil
}

// FindBlockAt returns the topmost block under p, scanning in reverse
// z-order, or nil.
func (w *World) FindBlockAt(p geom.Point) *Block {
	for i := len(w.blocks) - 1; i >= 0; i-- {
		if w.blocks[i].Hit(p) {
			return w.blocks[i]
		}
	}
	return nil
}

// FindNearPort returns the nearest port of the expected direction within the
// snap radius of p. Distance ties keep the earlier port in block-then-port
// iteration order.
func (w *World) FindNearPort(p geom.Point, expect Direction) (PortRef, bool) {
	var best PortRef
	found := false
	bestD2 := w.cfg.SnapRadius*w.cfg.SnapRadius + 1
	for _, b := range w.blocks {
		for i := range b.Ports {
			if b.Ports[i].Dir != expect {
				continue
			}
			if d2 := geom.Dist2(p, b.PortWorld(i)); d2 < bestD2 {
				best = PortRef{Block: b.ID, Port: i}
				bestD2 = d2
				found = true
			}
		}
	}
	return best, found
}

// Propagate copies every wire's source state into its destination, one pass
// in wire creation order. This is deliberately not a fixed-point simulation:
// it runs only right after a connection completes, and later wires overwrite
// earlier ones into a shared destination.
func (w *World) Propagate() {
	for _, wire := range w.wires {
		_, src := w.port(wire.Src)
		_, dst := w.port(wire.Dst)
		if src == nil || dst == nil {
			continue
		}
		dst.State = src.State
	}
}

// PointerDown handles a primary-button press. Priority: toolbar, then
// pending placement, then scene selection/wiring.
func (w *World) PointerDown(p geom.Point, button MouseButton) {
	if button != ButtonPrimary {
		return
	}

	if w.toolbar.Rect.Contains(p) {
		if payload, ok := w.toolbar.HandleClick(p); ok {
			w.tool = payload.Tool
			if payload.Tool == ToolPlace {
				spec := payload
				w.placeSpec = &spec
			} else {
				w.placeSpec = nil
			}
		}
		return
	}

	if w.tool == ToolPlace && w.placeSpec != nil {
		if _, err := w.CreateBlock(w.placeSpec.Kind, p, w.placeSpec.N); err != nil {
			// Scene untouched; stay armed so the toolbar state remains honest.
			return
		}
		w.tool = ToolSelect
		w.placeSpec = nil
		w.toolbar.SetActive(Payload{Tool: ToolSelect})
		return
	}

	clicked := w.FindBlockAt(p)
	if clicked == nil {
		if sel := w.block(w.selected); sel != nil {
			sel.Selected = false
		}
		w.selected = 0
		return
	}

	if i := clicked.HitPort(p, w.cfg.PortRadius); i >= 0 {
		// Begin the wiring gesture; selection stays as it is.
		w.wiringFrom = &PortRef{Block: clicked.ID, Port: i}
		return
	}

	w.selected = clicked.ID
	for _, b := range w.blocks {
		b.Selected = b.ID == clicked.ID
	}
	r := clicked.Rect()
	w.dragOffset = geom.Point{X: p.X - r.X, Y: p.Y - r.Y}
	if clicked.Kind == KindInput {
		clicked.Toggle()
	}
}

// PointerMove drags the selected block while the primary button is held. The
// grip point stays fixed relative to the block: the new center is the
// pointer minus the drag offset plus half the block size, re-snapped.
func (w *World) PointerMove(p, delta geom.Point, primaryHeld bool) {
	sel := w.block(w.selected)
	if sel == nil || !primaryHeld {
		return
	}
	sel.MoveTo(p.X-w.dragOffset.X+sel.W/2, p.Y-w.dragOffset.Y+sel.H/2, w.cfg.Grid)
}

// PointerUp completes a wiring gesture. The drop point snaps to the nearest
// port of the opposite direction; no valid target simply cancels. The
// gesture clears unconditionally.
func (w *World) PointerUp(p geom.Point, button MouseButton) {
	if button != ButtonPrimary || w.wiringFrom == nil {
		return
	}
	from := *w.wiringFrom
	w.wiringFrom = nil

	_, fromPort := w.port(from)
	if fromPort == nil {
		return
	}
	target, ok := w.FindNearPort(p, fromPort.Dir.Opposite())
	if !ok || target == from {
		return
	}
	if err := w.NewWire(from, target); err != nil {
		return
	}
	w.Propagate()
}

// KeyDown handles Delete/Backspace (remove selection) and Escape (cancel
// place mode). Escape leaves any wiring gesture alone; that resolves through
// the normal pointer-up path.
func (w *World) KeyDown(key Key) {
	switch key {
	case KeyDelete, KeyBackspace:
		if w.selected != 0 {
			w.RemoveBlock(w.selected)
		}
	case KeyEscape:
		w.tool = ToolSelect
		w.placeSpec = nil
		w.toolbar.SetActive(Payload{Tool: ToolSelect})
	}
}

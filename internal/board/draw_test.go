package board

import (
	"testing"

	"schemboard/internal/config"
	"schemboard/internal/geom"
)

// recordingSurface captures draw calls by name so tests can assert pass
// order without a real rendering backend.
type recordingSurface struct {
	ops []string
}

func (r *recordingSurface) log(op string) { r.ops = append(r.ops, op) }

func (r *recordingSurface) Clear(config.RGB)                                 { r.log("clear") }
func (r *recordingSurface) FillRect(geom.Rect, config.RGB)                   { r.log("fillrect") }
func (r *recordingSurface) FillRounded(geom.Rect, int, config.RGB)           { r.log("fillrounded") }
func (r *recordingSurface) StrokeRounded(geom.Rect, int, int, config.RGB)    { r.log("strokerounded") }
func (r *recordingSurface) Line(geom.Point, geom.Point, int, config.RGB)     { r.log("line") }
func (r *recordingSurface) Polyline([]geom.Point, int, config.RGB)           { r.log("polyline") }
func (r *recordingSurface) FillCircle(geom.Point, int, config.RGB)           { r.log("fillcircle") }
func (r *recordingSurface) StrokeCircle(geom.Point, int, int, config.RGB)    { r.log("strokecircle") }
func (r *recordingSurface) Text(string, geom.Point, int, config.RGB)         { r.log("text") }
func (r *recordingSurface) TextCentered(string, geom.Point, int, config.RGB) { r.log("textcentered") }

func indexOf(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return -1
}

func TestDrawPassOrder(t *testing.T) {
	w := newTestWorld(t)
	in := mustCreate(t, w, KindInput, geom.Point{X: 96, Y: 304}, 0)
	lamp := mustCreate(t, w, KindLamp, geom.Point{X: 304, Y: 304}, 0)
	connect(w, in.PortWorld(0), lamp.PortWorld(0))

	s := &recordingSurface{}
	w.Draw(s, geom.Point{X: 640, Y: 360})

	if len(s.ops) == 0 || s.ops[0] != "clear" {
		t.Fatal("frame must start with the background fill")
	}
	wireAt := indexOf(s.ops, "polyline")
	blockAt := indexOf(s.ops, "fillrounded")
	panelAt := indexOf(s.ops, "fillrect")
	if wireAt < 0 || blockAt < 0 || panelAt < 0 {
		t.Fatalf("missing expected ops in %v", s.ops)
	}
	if !(wireAt < blockAt && blockAt < panelAt) {
		t.Fatalf("draw order must be wires < blocks < toolbar, got wire=%d block=%d panel=%d", wireAt, blockAt, panelAt)
	}
}

func TestDrawWirePreviewRingsTarget(t *testing.T) {
	w := newTestWorld(t)
	in := mustCreate(t, w, KindInput, geom.Point{X: 96, Y: 304}, 0)
	lamp := mustCreate(t, w, KindLamp, geom.Point{X: 304, Y: 304}, 0)

	w.PointerDown(in.PortWorld(0), ButtonPrimary)

	// Pointer hovering near the lamp's in port: preview plus highlight ring.
	s := &recordingSurface{}
	w.Draw(s, lamp.PortWorld(0).Add(geom.Point{X: 4}))
	if indexOf(s.ops, "strokecircle") < 0 {
		t.Fatal("valid target should be ringed during the gesture")
	}

	// Pointer over empty canvas: preview line but no ring.
	s = &recordingSurface{}
	w.Draw(s, geom.Point{X: 640, Y: 200})
	if indexOf(s.ops, "strokecircle") >= 0 {
		t.Fatal("no ring without a candidate target")
	}
	if indexOf(s.ops, "polyline") < 0 {
		t.Fatal("gesture preview should still draw")
	}
	w.PointerUp(geom.Point{X: 640, Y: 200}, ButtonPrimary)
}

func TestFamilyColorFallsBack(t *testing.T) {
	cfg := config.Defaults()
	unknown := FamilyColor(cfg.Families, cfg.DefaultFamily, "no-such-family", true)
	def := cfg.Families[cfg.DefaultFamily].On
	if unknown != def {
		t.Fatalf("unknown family should use the default family: %v != %v", unknown, def)
	}
	off := FamilyColor(cfg.Families, cfg.DefaultFamily, "amber", false)
	if off != cfg.Families["amber"].Off {
		t.Fatalf("known family off color wrong: %v", off)
	}
	if got := FamilyColor(map[string]config.Family{}, "red", "red", true); got != (config.RGB{}) {
		t.Fatalf("empty table should fail closed to black, got %v", got)
	}
}

package board

import "schemboard/internal/geom"

// Tool is the world's interaction mode.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPlace
)

// Payload is what a toolbar button arms: either plain select mode or a
// pending placement of one block kind.
type Payload struct {
	Tool Tool
	Kind BlockKind
	N    int
}

// Label names the payload for the toolbar readout.
func (p Payload) Label() string {
	if p.Tool == ToolPlace {
		return p.Kind.String()
	}
	return "select"
}

// Button is one toolbar entry.
type Button struct {
	Label   string
	Rect    geom.Rect
	Payload Payload
}

const (
	toolbarHeight = 84
	buttonWidth   = 120
	buttonHeight  = 60
	buttonStep    = 130
)

// Toolbar is the fixed action row along the bottom edge. It is pure UI
// state: the world asks it what a click should arm, nothing more.
type Toolbar struct {
	Rect    geom.Rect
	Buttons []Button
	Active  Payload
}

// NewToolbar lays out the button row for a window of the given size.
func NewToolbar(width, height int) *Toolbar {
	t := &Toolbar{
		Rect:   geom.Rect{X: 0, Y: height - toolbarHeight, W: width, H: toolbarHeight},
		Active: Payload{Tool: ToolSelect},
	}
	entries := []struct {
		label   string
		payload Payload
	}{
		{"Select", Payload{Tool: ToolSelect}},
		{"Input", Payload{Tool: ToolPlace, Kind: KindInput}},
		{"Lamp", Payload{Tool: ToolPlace, Kind: KindLamp}},
		{"Output", Payload{Tool: ToolPlace, Kind: KindOutput}},
		{"AND", Payload{Tool: ToolPlace, Kind: KindAnd, N: 2}},
		{"OR", Payload{Tool: ToolPlace, Kind: KindOr, N: 2}},
		{"NOT", Payload{Tool: ToolPlace, Kind: KindNot}},
	}
	x := 12
	for _, e := range entries {
		t.Buttons = append(t.Buttons, Button{
			Label:   e.label,
			Rect:    geom.Rect{X: x, Y: t.Rect.Y + 12, W: buttonWidth, H: buttonHeight},
			Payload: e.payload,
		})
		x += buttonStep
	}
	return t
}

// HandleClick resolves a click inside the toolbar region. A hit arms the
// button's payload and returns it; a miss changes nothing.
func (t *Toolbar) HandleClick(p geom.Point) (Payload, bool) {
	for _, b := range t.Buttons {
		if b.Rect.Contains(p) {
			t.Active = b.Payload
			return b.Payload, true
		}
	}
	return Payload{}, false
}

// SetActive overrides the armed payload, used when the world reverts to
// select mode after a placement or on escape.
func (t *Toolbar) SetActive(p Payload) {
	t.Active = p
}

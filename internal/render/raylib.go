// Package render backs the board's drawing surface and input events with
// raylib.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"schemboard/internal/board"
	"schemboard/internal/config"
	"schemboard/internal/geom"
)

// Canvas implements board.Surface on the raylib drawing context. All methods
// must run between BeginDrawing and EndDrawing.
type Canvas struct{}

// NewCanvas returns a raylib-backed surface.
func NewCanvas() *Canvas { return &Canvas{} }

func toRL(c config.RGB) rl.Color {
	return rl.Color{R: c[0], G: c[1], B: c[2], A: 255}
}

func toVec(p geom.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func toRect(r geom.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}

// roundness converts a pixel corner radius into raylib's 0..1 roundness.
func roundness(r geom.Rect, cornerRadius int) float32 {
	short := r.W
	if r.H < short {
		short = r.H
	}
	if short <= 0 {
		return 0
	}
	v := float32(2*cornerRadius) / float32(short)
	if v > 1 {
		v = 1
	}
	return v
}

func (c *Canvas) Clear(col config.RGB) {
	rl.ClearBackground(toRL(col))
}

func (c *Canvas) FillRect(r geom.Rect, col config.RGB) {
	rl.DrawRectangleRec(toRect(r), toRL(col))
}

func (c *Canvas) FillRounded(r geom.Rect, cornerRadius int, col config.RGB) {
	rl.DrawRectangleRounded(toRect(r), roundness(r, cornerRadius), 8, toRL(col))
}

func (c *Canvas) StrokeRounded(r geom.Rect, cornerRadius, thickness int, col config.RGB) {
	rl.DrawRectangleRoundedLinesEx(toRect(r), roundness(r, cornerRadius), 8, float32(thickness), toRL(col))
}

func (c *Canvas) Line(a, b geom.Point, width int, col config.RGB) {
	rl.DrawLineEx(toVec(a), toVec(b), float32(width), toRL(col))
}

func (c *Canvas) Polyline(points []geom.Point, width int, col config.RGB) {
	for i := 1; i < len(points); i++ {
		rl.DrawLineEx(toVec(points[i-1]), toVec(points[i]), float32(width), toRL(col))
	}
}

func (c *Canvas) FillCircle(center geom.Point, radius int, col config.RGB) {
	rl.DrawCircleV(toVec(center), float32(radius), toRL(col))
}

func (c *Canvas) StrokeCircle(center geom.Point, radius, thickness int, col config.RGB) {
	rl.DrawRing(toVec(center), float32(radius-thickness), float32(radius), 0, 360, 32, toRL(col))
}

func (c *Canvas) Text(s string, pos geom.Point, size int, col config.RGB) {
	rl.DrawText(s, int32(pos.X), int32(pos.Y), int32(size), toRL(col))
}

func (c *Canvas) TextCentered(s string, pos geom.Point, size int, col config.RGB) {
	w := rl.MeasureText(s, int32(size))
	rl.DrawText(s, int32(pos.X)-w/2, int32(pos.Y)-int32(size)/2, int32(size), toRL(col))
}

// MousePosition returns the pointer position in screen pixels.
func MousePosition() geom.Point {
	p := rl.GetMousePosition()
	return geom.Point{X: int(p.X), Y: int(p.Y)}
}

// Pump polls raylib once per frame and feeds the world discrete events in a
// fixed order: press, release, motion, keys.
func Pump(w *board.World) {
	pos := MousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		w.PointerDown(pos, board.ButtonPrimary)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		w.PointerUp(pos, board.ButtonPrimary)
	}

	d := rl.GetMouseDelta()
	if d.X != 0 || d.Y != 0 {
		delta := geom.Point{X: int(d.X), Y: int(d.Y)}
		w.PointerMove(pos, delta, rl.IsMouseButtonDown(rl.MouseLeftButton))
	}

	if rl.IsKeyPressed(rl.KeyDelete) {
		w.KeyDown(board.KeyDelete)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		w.KeyDown(board.KeyBackspace)
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		w.KeyDown(board.KeyEscape)
	}
}

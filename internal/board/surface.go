package board

import (
	"schemboard/internal/config"
	"schemboard/internal/geom"
)

// Surface is the minimal drawing interface the world draws through. The host
// provides an implementation backed by its rendering layer; tests can record
// the calls instead.
type Surface interface {
	// Clear fills the whole frame.
	Clear(c config.RGB)
	FillRect(r geom.Rect, c config.RGB)
	FillRounded(r geom.Rect, cornerRadius int, c config.RGB)
	StrokeRounded(r geom.Rect, cornerRadius, thickness int, c config.RGB)
	Line(a, b geom.Point, width int, c config.RGB)
	// Polyline strokes connected segments through all points in order.
	Polyline(points []geom.Point, width int, c config.RGB)
	FillCircle(center geom.Point, radius int, c config.RGB)
	StrokeCircle(center geom.Point, radius, thickness int, c config.RGB)
	// Text draws with the top-left corner at pos.
	Text(s string, pos geom.Point, size int, c config.RGB)
	// TextCentered draws centered on pos.
	TextCentered(s string, pos geom.Point, size int, c config.RGB)
}

package geom

import "testing"

func TestSnapIdempotent(t *testing.T) {
	for _, grid := range []int{1, 4, 16, 25} {
		for v := -200; v <= 200; v++ {
			once := Snap(v, grid)
			if twice := Snap(once, grid); twice != once {
				t.Fatalf("Snap not idempotent: grid=%d v=%d once=%d twice=%d", grid, v, once, twice)
			}
			if once%grid != 0 {
				t.Fatalf("Snap(%d, %d) = %d, not on grid", v, grid, once)
			}
		}
	}
}

func TestSnapHalfBoundary(t *testing.T) {
	cases := []struct {
		v, grid, want int
	}{
		{8, 16, 16},    // exact half rounds up
		{-8, 16, -16},  // exact half rounds away from zero
		{7, 16, 0},     // just below half
		{9, 16, 16},    // just above half
		{24, 16, 32},   // 1.5 grids
		{-24, 16, -32}, // -1.5 grids
		{0, 16, 0},
		{16, 16, 16},
		{100, 16, 96},
		{300, 16, 304},
	}
	for _, c := range cases {
		if got := Snap(c.v, c.grid); got != c.want {
			t.Errorf("Snap(%d, %d) = %d, want %d", c.v, c.grid, got, c.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	inside := []Point{{10, 20}, {40, 60}, {25, 35}, {10, 60}, {40, 20}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("expected %v inside %v", p, r)
		}
	}
	outside := []Point{{9, 20}, {41, 20}, {25, 19}, {25, 61}, {0, 0}}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("expected %v outside %v", p, r)
		}
	}
}

func TestRectAroundCenter(t *testing.T) {
	r := RectAround(Point{100, 200}, 84, 50)
	if r.X != 58 || r.Y != 175 || r.W != 84 || r.H != 50 {
		t.Fatalf("unexpected rect %v", r)
	}
	if c := r.Center(); c != (Point{100, 200}) {
		t.Fatalf("center drifted: %v", c)
	}
}

func TestRectInflate(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}.Inflate(3)
	if r != (Rect{X: 7, Y: 7, W: 26, H: 26}) {
		t.Fatalf("unexpected inflated rect %v", r)
	}
}

func TestDist2(t *testing.T) {
	if d := Dist2(Point{0, 0}, Point{3, 4}); d != 25 {
		t.Fatalf("Dist2 = %d, want 25", d)
	}
	if d := Dist2(Point{-1, -1}, Point{-1, -1}); d != 0 {
		t.Fatalf("Dist2 of identical points = %d", d)
	}
}

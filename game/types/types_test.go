package types

import "testing"

func TestGridDimensions(t *testing.T) {
	g := DefaultGrid()

	if g.Cols() != 32 || g.Rows() != 24 {
		t.Fatalf("expected 32x24 cells, got %dx%d", g.Cols(), g.Rows())
	}
	if g.Cells() != 768 {
		t.Errorf("expected 768 cells, got %d", g.Cells())
	}
	if c := g.Center(); c != (Point{X: 320, Y: 240}) {
		t.Errorf("expected center (320,240), got %v", c)
	}
	if p := g.Cell(31, 23); p != (Point{X: 620, Y: 460}) {
		t.Errorf("expected last cell at (620,460), got %v", p)
	}
}

func TestWrap(t *testing.T) {
	g := DefaultGrid()

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{X: 100, Y: 100}, Point{X: 100, Y: 100}},
		{"past right edge", Point{X: 640, Y: 240}, Point{X: 0, Y: 240}},
		{"past left edge", Point{X: -20, Y: 240}, Point{X: 620, Y: 240}},
		{"past bottom edge", Point{X: 320, Y: 480}, Point{X: 320, Y: 0}},
		{"past top edge", Point{X: 320, Y: -20}, Point{X: 320, Y: 460}},
		{"corner", Point{X: -20, Y: 480}, Point{X: 620, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Wrap(tt.in); got != tt.want {
				t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		o := d.Opposite()
		if o.Opposite() != d {
			t.Errorf("%v: opposite of opposite is %v", d, o.Opposite())
		}
		if d.Vector().Add(o.Vector()) != (Point{}) {
			t.Errorf("%v and %v vectors do not cancel", d, o)
		}
	}
	if None.Opposite() != None {
		t.Errorf("None should have no opposite")
	}
	if None.Vector() != (Point{}) {
		t.Errorf("None should not move")
	}
}

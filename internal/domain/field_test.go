package domain

import "testing"

func TestFieldMoveWraps(t *testing.T) {
	field := NewField(DefaultGridSize, DefaultGridSize)
	last := DefaultGridSize - 1

	tests := []struct {
		name string
		from Coord
		dir  Direction
		want Coord
	}{
		{"up from top row", Coord{5, 0}, DirectionUp, Coord{5, last}},
		{"down from bottom row", Coord{5, last}, DirectionDown, Coord{5, 0}},
		{"left from first column", Coord{0, 7}, DirectionLeft, Coord{last, 7}},
		{"right from last column", Coord{last, 7}, DirectionRight, Coord{0, 7}},
		{"plain step", Coord{3, 3}, DirectionRight, Coord{4, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := field.Move(tt.from, tt.dir); got != tt.want {
				t.Errorf("Move(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestFieldMoveWithoutDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Move with DirectionNone did not panic")
		}
	}()
	NewField(4, 4).Move(Coord{1, 1}, DirectionNone)
}

func TestFieldNormalize(t *testing.T) {
	field := NewField(4, 3)
	if got := field.Normalize(Coord{-5, 7}); got != (Coord{3, 1}) {
		t.Errorf("Normalize = %v, want {3 1}", got)
	}
	if !field.Contains(field.Center()) {
		t.Errorf("Center %v outside field", field.Center())
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirectionUp:    DirectionDown,
		DirectionDown:  DirectionUp,
		DirectionLeft:  DirectionRight,
		DirectionRight: DirectionLeft,
	}
	for d, opp := range pairs {
		if !d.IsOpposite(opp) {
			t.Errorf("%v.IsOpposite(%v) = false", d, opp)
		}
		if d.IsOpposite(d) {
			t.Errorf("%v.IsOpposite(itself) = true", d)
		}
	}
	if DirectionNone.IsOpposite(DirectionNone) {
		t.Error("None is opposite to None")
	}
}

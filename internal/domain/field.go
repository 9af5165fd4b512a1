package domain

import "fmt"

// Field is the toroidal board: leaving one edge re-enters on the opposite one.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Cells() int {
	return f.Width * f.Height
}

func (f *Field) Center() Coord {
	return Coord{X: f.Width / 2, Y: f.Height / 2}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Normalize(c Coord) Coord {
	x := c.X % f.Width
	if x < 0 {
		x += f.Width
	}
	y := c.Y % f.Height
	if y < 0 {
		y += f.Height
	}
	return Coord{X: x, Y: y}
}

// Move steps one cell from c in direction d. Moving with DirectionNone is a
// programming error and panics.
func (f *Field) Move(c Coord, d Direction) Coord {
	if d == DirectionNone {
		panic(fmt.Sprintf("domain: resolving movement from %v with no direction", c))
	}
	return f.Normalize(c.Add(d.Delta()))
}

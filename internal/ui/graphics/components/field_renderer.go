package components

import (
	"image/color"

	"github.com/Wilblik/cyberconda/internal/domain"
	"github.com/Wilblik/cyberconda/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer draws the board into a fixed pixel area. Tiles are
// BoardWidth/GridSize by BoardHeight/GridSize, so they need not be square.
type FieldRenderer struct {
	CellW   int
	CellH   int
	OffsetX int
	OffsetY int
}

func NewFieldRenderer(offsetX, offsetY int) *FieldRenderer {
	return &FieldRenderer{
		CellW:   1,
		CellH:   1,
		OffsetX: offsetX,
		OffsetY: offsetY,
	}
}

func (fr *FieldRenderer) CalculateLayout(boardWidth, boardHeight int, field *domain.Field) {
	if field == nil {
		return
	}

	fr.CellW = max(1, boardWidth/field.Width)
	fr.CellH = max(1, boardHeight/field.Height)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field *domain.Field) {
	if field == nil {
		return
	}

	w := float32(field.Width * fr.CellW)
	h := float32(field.Height * fr.CellH)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, h,
		types.ColorFieldBg, false)

	for x := 0; x <= field.Width; x++ {
		x1 := float32(fr.OffsetX + x*fr.CellW)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY)+h,
			1, types.ColorGrid, false)
	}
	for y := 0; y <= field.Height; y++ {
		y1 := float32(fr.OffsetY + y*fr.CellH)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX)+w, y1,
			1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Coord) {
	padX := float32(fr.CellW) / 4
	padY := float32(fr.CellH) / 4

	x := float32(fr.OffsetX+food.X*fr.CellW) + padX
	y := float32(fr.OffsetY+food.Y*fr.CellH) + padY

	vector.DrawFilledRect(screen, x, y, float32(fr.CellW)-padX*2, float32(fr.CellH)-padY*2, types.ColorFood, false)
}

// DrawSnake draws segments given tail first; the last one is the head.
func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, segments []domain.Coord) {
	if len(segments) == 0 {
		return
	}

	last := len(segments) - 1
	for i, cell := range segments[:last] {
		t := 1.0
		if last > 1 {
			t = float64(i) / float64(last-1)
		}
		fr.fillCell(screen, cell, types.Fade(types.ColorSnakeBody, t))
	}

	head := segments[last]
	fr.fillCell(screen, head, types.ColorSnakeHead)

	x := float32(fr.OffsetX + head.X*fr.CellW)
	y := float32(fr.OffsetY + head.Y*fr.CellH)
	vector.StrokeRect(screen, x, y, float32(fr.CellW), float32(fr.CellH), 2, types.Lighten(types.ColorSnakeHead, 1.3), false)
}

func (fr *FieldRenderer) fillCell(screen *ebiten.Image, cell domain.Coord, c color.Color) {
	x := float32(fr.OffsetX + cell.X*fr.CellW + 1)
	y := float32(fr.OffsetY + cell.Y*fr.CellH + 1)

	vector.DrawFilledRect(screen, x, y, float32(fr.CellW-2), float32(fr.CellH-2), c, false)
}

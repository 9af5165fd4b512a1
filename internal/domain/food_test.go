package domain

import (
	"errors"
	"testing"
)

func TestSpawnFoodAvoidsSnake(t *testing.T) {
	gs := newTestState(t, 6)

	// Leave k cells free for every k down to one.
	cells := make([]Coord, 0, gs.Field().Cells())
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			cells = append(cells, Coord{x, y})
		}
	}

	for k := 1; k < len(cells); k++ {
		setSnake(t, gs, cells[:k]...)
		for i := 0; i < 20; i++ {
			if err := gs.SpawnFood(); err != nil {
				t.Fatalf("k=%d: SpawnFood: %v", k, err)
			}
			if gs.body.Contains(gs.Food()) {
				t.Fatalf("k=%d: food %v spawned on the snake", k, gs.Food())
			}
			if !gs.Field().Contains(gs.Food()) {
				t.Fatalf("k=%d: food %v outside the field", k, gs.Food())
			}
		}
	}
}

func TestSpawnFoodFindsLastFreeCell(t *testing.T) {
	gs := newTestState(t, 4)
	var snake []Coord
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 2 && y == 1 {
				continue
			}
			snake = append(snake, Coord{x, y})
		}
	}
	setSnake(t, gs, snake...)

	if err := gs.SpawnFood(); err != nil {
		t.Fatalf("SpawnFood: %v", err)
	}
	if gs.Food() != (Coord{2, 1}) {
		t.Errorf("food = %v, want the only free cell {2 1}", gs.Food())
	}
}

func TestSpawnFoodOnFullBoard(t *testing.T) {
	gs := newTestState(t, 4)
	var snake []Coord
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			snake = append(snake, Coord{x, y})
		}
	}
	setSnake(t, gs, snake...)

	if err := gs.SpawnFood(); !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err = %v, want ErrBoardFull", err)
	}
}

func TestSpawnFoodIsDeterministicPerSeed(t *testing.T) {
	cfg := DefaultGameConfig()
	a, err := NewGameState(cfg, epoch, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGameState(cfg, epoch, 42)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		if a.Food() != b.Food() {
			t.Fatalf("spawn %d: %v != %v", i, a.Food(), b.Food())
		}
		a.SpawnFood()
		b.SpawnFood()
	}
}

package domain

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestBodyMatchesReferenceSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	body := NewBody(1, 0)
	var want []Coord

	for step := 0; step < 2000; step++ {
		if len(want) == 0 || rng.Intn(3) != 0 {
			c := Coord{X: step, Y: -step}
			if err := body.PushHead(c); err != nil {
				t.Fatalf("step %d: PushHead: %v", step, err)
			}
			want = append(want, c)
		} else {
			body.PopTail()
			want = want[1:]
		}

		if body.Len() != len(want) {
			t.Fatalf("step %d: Len = %d, want %d", step, body.Len(), len(want))
		}
		if body.Len() > body.Cap() {
			t.Fatalf("step %d: Len %d exceeds Cap %d", step, body.Len(), body.Cap())
		}
		for i, c := range want {
			if got := body.At(i); got != c {
				t.Fatalf("step %d: At(%d) = %v, want %v", step, i, got, c)
			}
		}
		if len(want) > 0 && body.Head() != want[len(want)-1] {
			t.Fatalf("step %d: Head = %v, want %v", step, body.Head(), want[len(want)-1])
		}
	}
}

func TestBodyGrowthKeepsOrder(t *testing.T) {
	body := NewBody(4, 0)

	// Wrap the ring so that the tail sits in the middle of the storage.
	for i := 0; i < 4; i++ {
		body.PushHead(Coord{X: i})
	}
	body.PopTail()
	body.PopTail()
	body.PushHead(Coord{X: 4})
	body.PushHead(Coord{X: 5})

	before := body.Segments()
	if body.Cap() != 4 {
		t.Fatalf("Cap = %d before growth, want 4", body.Cap())
	}

	if err := body.PushHead(Coord{X: 6}); err != nil {
		t.Fatalf("PushHead: %v", err)
	}
	if body.Cap() != 8 {
		t.Fatalf("Cap = %d after growth, want 8", body.Cap())
	}

	after := body.Segments()
	if len(after) != len(before)+1 {
		t.Fatalf("len after growth = %d, want %d", len(after), len(before)+1)
	}
	for i, c := range before {
		if after[i] != c {
			t.Errorf("segment %d = %v after growth, want %v", i, after[i], c)
		}
	}
	if body.Head() != (Coord{X: 6}) {
		t.Errorf("Head = %v, want {6 0}", body.Head())
	}
}

func TestBodyCapacityNeverShrinks(t *testing.T) {
	body := NewBody(2, 0)
	for i := 0; i < 9; i++ {
		body.PushHead(Coord{X: i})
	}
	grown := body.Cap()
	for body.Len() > 0 {
		body.PopTail()
	}
	body.Clear()

	if body.Cap() != grown {
		t.Errorf("Cap = %d after draining, want %d", body.Cap(), grown)
	}
}

func TestBodyPopTailOnEmpty(t *testing.T) {
	body := NewBody(DefaultBodyCapacity, 0)
	body.PopTail()
	if body.Len() != 0 {
		t.Fatalf("Len = %d, want 0", body.Len())
	}

	body.PushHead(Coord{X: 1, Y: 1})
	body.PopTail()
	body.PushHead(Coord{X: 2, Y: 2})
	if body.Tail() != body.Head() || body.Head() != (Coord{X: 2, Y: 2}) {
		t.Errorf("tail %v, head %v after refill, want both {2 2}", body.Tail(), body.Head())
	}
}

func TestBodyAtOutOfRangePanics(t *testing.T) {
	body := NewBody(DefaultBodyCapacity, 0)
	body.PushHead(Coord{})

	for _, idx := range []int{-1, 1, 8} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d) did not panic", idx)
				}
			}()
			body.At(idx)
		}()
	}
}

func TestBodyLimit(t *testing.T) {
	body := NewBody(2, 3)

	for i := 0; i < 3; i++ {
		if err := body.PushHead(Coord{X: i}); err != nil {
			t.Fatalf("PushHead %d: %v", i, err)
		}
	}
	if body.Cap() != 3 {
		t.Fatalf("Cap = %d, want 3", body.Cap())
	}

	err := body.PushHead(Coord{X: 3})
	if !errors.Is(err, ErrBodyFull) {
		t.Fatalf("PushHead past limit: err = %v, want ErrBodyFull", err)
	}
	if body.Len() != 3 {
		t.Errorf("Len = %d after failed push, want 3", body.Len())
	}
}

func TestBodyContains(t *testing.T) {
	body := NewBody(2, 0)
	body.PushHead(Coord{X: 1, Y: 1})
	body.PushHead(Coord{X: 2, Y: 1})
	body.PushHead(Coord{X: 3, Y: 1})
	body.PopTail()

	if body.Contains(Coord{X: 1, Y: 1}) {
		t.Error("Contains reports a popped segment")
	}
	if !body.Contains(Coord{X: 3, Y: 1}) {
		t.Error("Contains misses the head")
	}
}

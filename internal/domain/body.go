package domain

import "fmt"

const DefaultBodyCapacity = 8

// Body holds the snake's segments in a circular buffer, oldest (tail) first.
// Capacity doubles when a push would overflow it and is never reduced.
type Body struct {
	cells []Coord
	head  int
	tail  int
	len   int
	limit int
}

// NewBody creates an empty body with the given initial capacity. A positive
// limit caps how far the storage may grow; zero means unbounded.
func NewBody(capacity, limit int) *Body {
	if capacity < 1 {
		capacity = 1
	}
	if limit > 0 && capacity > limit {
		capacity = limit
	}
	return &Body{
		cells: make([]Coord, capacity),
		limit: limit,
	}
}

func (b *Body) Len() int {
	return b.len
}

func (b *Body) Cap() int {
	return len(b.cells)
}

// PushHead appends c as the new head segment, growing the storage if needed.
func (b *Body) PushHead(c Coord) error {
	if b.len+1 > len(b.cells) {
		if err := b.grow(); err != nil {
			return err
		}
	}

	if b.len > 0 {
		b.head = (b.head + 1) % len(b.cells)
	}
	b.cells[b.head] = c
	b.len++

	return nil
}

func (b *Body) grow() error {
	oldCap := len(b.cells)
	newCap := oldCap * 2
	if b.limit > 0 && newCap > b.limit {
		newCap = b.limit
	}
	if newCap <= oldCap {
		return fmt.Errorf("grow body beyond %d segments: %w", oldCap, ErrBodyFull)
	}

	cells := make([]Coord, newCap)
	for i := 0; i < b.len; i++ {
		cells[i] = b.At(i)
	}

	b.cells = cells
	b.tail = 0
	b.head = b.len - 1
	if b.head < 0 {
		b.head = 0
	}

	return nil
}

// PopTail drops the oldest segment. It does nothing on an empty body.
func (b *Body) PopTail() {
	if b.len == 0 {
		return
	}
	b.tail = (b.tail + 1) % len(b.cells)
	b.len--
	if b.len == 0 {
		b.head = b.tail
	}
}

// At returns the segment at logical index i, where 0 is the tail.
func (b *Body) At(i int) Coord {
	if i < 0 || i >= b.len {
		panic(fmt.Sprintf("domain: body index %d out of range [0, %d)", i, b.len))
	}
	return b.cells[(b.tail+i)%len(b.cells)]
}

func (b *Body) Head() Coord {
	return b.At(b.len - 1)
}

func (b *Body) Tail() Coord {
	return b.At(0)
}

// Clear empties the body but keeps the allocated storage.
func (b *Body) Clear() {
	b.len = 0
	b.head = 0
	b.tail = 0
}

func (b *Body) Contains(c Coord) bool {
	for i := 0; i < b.len; i++ {
		if b.At(i).Equals(c) {
			return true
		}
	}
	return false
}

// Segments returns a tail-to-head copy of the body.
func (b *Body) Segments() []Coord {
	result := make([]Coord, b.len)
	for i := range result {
		result[i] = b.At(i)
	}
	return result
}

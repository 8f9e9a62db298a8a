package ui

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCenterRect(t *testing.T) {
	r := CenterRect(100, 40, 51, 11)
	if r.X != 24 || r.Y != 14 {
		t.Errorf("CenterRect odd gap = (%d,%d), want (24,14)", r.X, r.Y)
	}
	r = CenterRect(10, 5, 20, 8)
	if r.X != 0 || r.Y != 0 {
		t.Errorf("oversized content should pin to origin, got (%d,%d)", r.X, r.Y)
	}
}

func TestNewGridLayout_Columns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{33, 1},
		{34, 1},
		{69, 2},
		{80, 2},
		{104, 3},
	}
	for _, tt := range tests {
		if got := NewGridLayout(tt.width).Columns; got != tt.want {
			t.Errorf("NewGridLayout(%d).Columns = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestGridLayout_CardRectAndIndexAt(t *testing.T) {
	l := NewGridLayout(80) // 2 columns

	r := l.CardRect(1)
	if r != (Rect{X: 35, Y: 0, W: cardWidth, H: cardHeight}) {
		t.Errorf("CardRect(1) = %+v", r)
	}
	r = l.CardRect(2)
	if r.X != 0 || r.Y != cardHeight {
		t.Errorf("CardRect(2) = %+v", r)
	}

	if i, ok := l.IndexAt(36, 4, 3); !ok || i != 1 {
		t.Errorf("IndexAt(36,4) = %d,%v want 1,true", i, ok)
	}
	if _, ok := l.IndexAt(34, 0, 3); ok {
		t.Error("column gap should miss")
	}
	if _, ok := l.IndexAt(40, cardHeight+1, 3); ok {
		t.Error("cell past the last card should miss")
	}
	if _, ok := l.IndexAt(-1, 0, 3); ok {
		t.Error("negative x should miss")
	}
}

func TestGridLayout_Move(t *testing.T) {
	l := NewGridLayout(80) // 2 columns, 3 cards: [0 1] [2]
	tests := []struct {
		name   string
		from   int
		dx, dy int
		want   int
	}{
		{"right", 0, 1, 0, 1},
		{"right clamps", 1, 1, 0, 1},
		{"left clamps", 0, -1, 0, 0},
		{"down", 0, 0, 1, 2},
		{"down into short row", 1, 0, 1, 2},
		{"up", 2, 0, -1, 0},
		{"up clamps", 0, 0, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Move(tt.from, tt.dx, tt.dy, 3); got != tt.want {
				t.Errorf("Move(%d,%d,%d) = %d, want %d", tt.from, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
	if got := l.Move(0, 1, 1, 0); got != 0 {
		t.Errorf("Move on empty grid = %d, want 0", got)
	}
}

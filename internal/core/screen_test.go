package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorBrightGreen)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorBrightGreen {
		t.Errorf("GetCell(5, 5).Color = %v, expected bright green", s.GetCell(5, 5).Color)
	}

	// Out of bounds writes must be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if s.GetCell(100, 0) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != (Cell{Rune: ' ', Color: ColorDefault}) {
				t.Errorf("after Clear, expected blank cell at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorCyan)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("DrawTextCentered: text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorCyan {
		t.Error("DrawTextCentered should apply the color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r, ColorDefault)

	if s.Get(1, 1) != '┌' {
		t.Errorf("top-left corner = %q, expected '┌'", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("top-right corner = %q, expected '┐'", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("bottom-left corner = %q, expected '└'", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("bottom-right corner = %q, expected '┘'", s.Get(5, 4))
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', ColorGray)

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)

	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}

	// Resized buffer starts blank
	for y := 0; y < 4; y++ {
		if strings.TrimSpace(s.Row(y)) != "" {
			t.Errorf("resized buffer should be blank, row %d = %q", y, s.Row(y))
		}
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len([]rune(row)) != 10 {
		t.Errorf("row length = %d, expected 10", len([]rune(row)))
	}

	if s.Row(-1) != strings.Repeat(" ", 10) {
		t.Error("out of bounds row should be spaces")
	}
}

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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '7', ColorBrightGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '7' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '7'", cell.Rune)
	}
	if cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(3, 4).Color = %d, expected ColorBrightGreen", cell.Color)
	}

	// Out of bounds GetCell returns a default cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default cell", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected default cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Score: 120")
	if s.Row(1) != "  Score: 120        " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped at right edge, no panic
	s.DrawText(15, 2, "overflow")
	if s.Get(19, 2) != 'r' {
		t.Errorf("Expected clipped text to reach last column, got %q", s.Get(19, 2))
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextColored(0, 0, "42", ColorBrightYellow)
	for i, want := range "42" {
		cell := s.GetCell(i, 0)
		if cell.Rune != want || cell.Color != ColorBrightYellow {
			t.Errorf("cell %d = %+v, expected %q colored", i, cell, want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("After Resize, got %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("Content inside the new bounds should be preserved")
	}

	s.Resize(12, 12)
	if s.Get(2, 2) != 'A' {
		t.Error("Content should survive growing the screen")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("Content lost in an earlier shrink should not reappear")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("Expected 1 newline, got %d", strings.Count(got, "\n"))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Top corners not drawn")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Bottom corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Edges not drawn")
	}
	// Interior untouched
	if s.Get(3, 2) != ' ' {
		t.Error("Box interior should stay empty")
	}
}

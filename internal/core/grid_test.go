package core

import (
	"errors"
	"testing"
)

func TestNewMapRejectsEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := NewMap(dims[0], dims[1]); !errors.Is(err, ErrEmptyMap) {
			t.Fatalf("NewMap(%d,%d) err=%v, expected ErrEmptyMap", dims[0], dims[1], err)
		}
	}
}

func TestNewMapStartsEmpty(t *testing.T) {
	m, err := NewMap(7, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(m.Cells()); got != 35 {
		t.Fatalf("cells=%d, expected 35", got)
	}
	if got := m.Count(Empty); got != 35 {
		t.Fatalf("empty cells=%d, expected 35", got)
	}
}

func TestStampFillsHalfOpenRect(t *testing.T) {
	m, _ := NewMap(10, 10)
	m.Stamp(2, 3, 5, 4, Brick)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := Empty
			if x >= 2 && x < 5 && y == 3 {
				want = Brick
			}
			if got := m.At(x, y); got != want {
				t.Fatalf("cell (%d,%d)=%s, expected %s", x, y, got, want)
			}
		}
	}

	m.Stamp(3, 3, 4, 4, Empty)
	if got := m.At(3, 3); got != Empty {
		t.Fatalf("stamping Empty should clear, got %s", got)
	}
	if got := m.Count(Brick); got != 2 {
		t.Fatalf("brick cells=%d, expected 2", got)
	}
}

func TestWallHelpersUseThickness(t *testing.T) {
	m, _ := NewMap(128, 128)
	m.HorizWall(10, 20, 40, Stone)
	if got := m.Count(Stone); got != 10*WallThickness {
		t.Fatalf("horizontal wall cells=%d, expected %d", got, 10*WallThickness)
	}
	if m.At(10, 40+WallThickness-1) != Stone || m.At(10, 40+WallThickness) != Empty {
		t.Fatal("horizontal wall should span exactly WallThickness rows")
	}

	m.Clear()
	m.VertWall(0, 16, 90, Crystal)
	if got := m.Count(Crystal); got != 16*WallThickness {
		t.Fatalf("vertical wall cells=%d, expected %d", got, 16*WallThickness)
	}
	if m.At(90+WallThickness-1, 0) != Crystal || m.At(90+WallThickness, 0) != Empty {
		t.Fatal("vertical wall should span exactly WallThickness columns")
	}
}

func TestStampOutsideMapPanics(t *testing.T) {
	m, _ := NewMap(8, 8)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range rect")
		}
	}()
	m.Stamp(4, 4, 9, 6, Dirt)
}

func TestAtOutsideMapPanics(t *testing.T) {
	m, _ := NewMap(8, 8)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range cell")
		}
	}()
	// x=8 would alias row 1 if only the linear index were checked.
	m.At(8, 0)
}

func TestOccupiedTreatsOutsideAsOpen(t *testing.T) {
	m, _ := NewMap(4, 4)
	m.Stamp(0, 0, 4, 4, Dirt)
	if _, hit := m.Occupied(-1, 2); hit {
		t.Fatal("probe left of the map should not hit")
	}
	if _, hit := m.Occupied(2, 4); hit {
		t.Fatal("probe below the map should not hit")
	}
	if mat, hit := m.Occupied(3, 3); !hit || mat != Dirt {
		t.Fatalf("probe inside map = (%s,%v), expected (dirt,true)", mat, hit)
	}
}

func TestParseMaterialRoundTrip(t *testing.T) {
	for _, mat := range append([]Material{Empty}, Materials...) {
		got, err := ParseMaterial(mat.String())
		if err != nil || got != mat {
			t.Fatalf("ParseMaterial(%q)=(%v,%v)", mat.String(), got, err)
		}
	}
	if _, err := ParseMaterial("lava"); err == nil {
		t.Fatal("expected error for unknown material")
	}
}

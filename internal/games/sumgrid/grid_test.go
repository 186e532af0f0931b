package sumgrid

import "testing"

// scriptedValues replays fixed sequences, cycling when exhausted.
// Gives tests full control over block values and targets.
type scriptedValues struct {
	blocks  []int
	targets []int
	bi, ti  int
}

func (s *scriptedValues) BlockValue() int {
	v := s.blocks[s.bi%len(s.blocks)]
	s.bi++
	return v
}

func (s *scriptedValues) Target() int {
	v := s.targets[s.ti%len(s.targets)]
	s.ti++
	return v
}

// checkGridInvariants verifies position consistency and id uniqueness.
func checkGridInvariants(t *testing.T, g *Grid) {
	t.Helper()

	seen := make(map[int]bool)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			b := g.BlockAt(row, col)
			if b == nil {
				continue
			}
			if b.Row != row || b.Col != col {
				t.Errorf("Block %d at cell (%d,%d) has stored position (%d,%d)",
					b.ID, row, col, b.Row, b.Col)
			}
			if seen[b.ID] {
				t.Errorf("Block id %d appears in more than one cell", b.ID)
			}
			seen[b.ID] = true
			if b.Value < MinBlockValue || b.Value > MaxBlockValue {
				t.Errorf("Block %d has out-of-range value %d", b.ID, b.Value)
			}
		}
	}
}

func TestInitializePrefill(t *testing.T) {
	g := NewGrid(&scriptedValues{blocks: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, targets: []int{15}})
	g.Initialize(PrefillRows)

	if g.Count() != PrefillRows*GridCols {
		t.Errorf("Count() = %d, expected %d", g.Count(), PrefillRows*GridCols)
	}

	// Bottom rows occupied, the rest empty
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			occupied := g.BlockAt(row, col) != nil
			wantOccupied := row >= GridRows-PrefillRows
			if occupied != wantOccupied {
				t.Errorf("Cell (%d,%d) occupied=%v, expected %v", row, col, occupied, wantOccupied)
			}
		}
	}

	checkGridInvariants(t, g)
}

func TestInitializeResetsPreviousState(t *testing.T) {
	g := NewGrid(&scriptedValues{blocks: []int{5}, targets: []int{15}})
	g.Initialize(PrefillRows)
	g.InjectRow()

	g.Initialize(PrefillRows)
	if g.Count() != PrefillRows*GridCols {
		t.Errorf("After re-Initialize, Count() = %d, expected %d", g.Count(), PrefillRows*GridCols)
	}
	checkGridInvariants(t, g)
}

func TestInjectRowShiftsUp(t *testing.T) {
	g := NewGrid(&scriptedValues{blocks: []int{1, 2, 3, 4, 5, 6}, targets: []int{15}})
	g.Initialize(PrefillRows)

	// Remember each block's position before the shift
	before := make(map[int]int) // id -> row
	for _, b := range g.Blocks() {
		before[b.ID] = b.Row
	}

	if overflow := g.InjectRow(); overflow {
		t.Fatal("InjectRow() reported overflow on a grid with empty headroom")
	}

	// Every pre-existing block moved up exactly one row
	for _, b := range g.Blocks() {
		prevRow, existed := before[b.ID]
		if !existed {
			if b.Row != GridRows-1 {
				t.Errorf("Fresh block %d expected in bottom row, got row %d", b.ID, b.Row)
			}
			continue
		}
		if b.Row != prevRow-1 {
			t.Errorf("Block %d moved from row %d to %d, expected %d", b.ID, prevRow, b.Row, prevRow-1)
		}
	}

	if g.Count() != (PrefillRows+1)*GridCols {
		t.Errorf("Count() = %d, expected %d", g.Count(), (PrefillRows+1)*GridCols)
	}
	checkGridInvariants(t, g)
}

func TestInjectRowOverflowLeavesGridUnchanged(t *testing.T) {
	g := NewGrid(&scriptedValues{blocks: []int{7}, targets: []int{15}})
	g.Initialize(PrefillRows)

	// Fill the headroom: each injection raises the stack by one row.
	for i := 0; i < GridRows-PrefillRows; i++ {
		if overflow := g.InjectRow(); overflow {
			t.Fatalf("Unexpected overflow on injection %d", i+1)
		}
	}

	if g.BlockAt(0, 0) == nil {
		t.Fatal("Top row should be occupied after filling the grid")
	}

	// Record full occupancy, then attempt the overflowing injection
	type cell struct{ id, value int }
	var before [GridRows][GridCols]cell
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if b := g.BlockAt(row, col); b != nil {
				before[row][col] = cell{b.ID, b.Value}
			}
		}
	}

	if overflow := g.InjectRow(); !overflow {
		t.Fatal("InjectRow() on a full grid should report overflow")
	}

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			b := g.BlockAt(row, col)
			if b == nil || b.ID != before[row][col].id || b.Value != before[row][col].value {
				t.Fatalf("Overflowing InjectRow() mutated cell (%d,%d)", row, col)
			}
		}
	}
	checkGridInvariants(t, g)
}

func TestRemoveBlocksLeavesHoles(t *testing.T) {
	g := NewGrid(&scriptedValues{blocks: []int{3}, targets: []int{15}})
	g.Initialize(PrefillRows)

	b1 := g.BlockAt(GridRows-2, 1)
	b2 := g.BlockAt(GridRows-2, 4)
	removed := g.RemoveBlocks(map[int]bool{b1.ID: true, b2.ID: true})

	if removed != 2 {
		t.Errorf("RemoveBlocks() = %d, expected 2", removed)
	}
	if g.BlockAt(GridRows-2, 1) != nil || g.BlockAt(GridRows-2, 4) != nil {
		t.Error("Removed cells should be empty")
	}
	// No compaction yet: the block above the hole stays put
	if g.BlockAt(GridRows-3, 1) == nil {
		t.Error("RemoveBlocks must not apply gravity")
	}
	checkGridInvariants(t, g)
}

func TestApplyGravityCompactsColumns(t *testing.T) {
	vals := &scriptedValues{
		blocks:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		targets: []int{15},
	}
	g := NewGrid(vals)
	g.Initialize(PrefillRows)

	// Knock a hole in the middle of column 2
	mid := g.BlockAt(GridRows-2, 2)
	above := g.BlockAt(GridRows-3, 2)
	aboveTop := g.BlockAt(GridRows-4, 2)
	g.RemoveBlocks(map[int]bool{mid.ID: true})

	if moved := g.ApplyGravity(); !moved {
		t.Error("ApplyGravity() should report movement after a removal")
	}

	// The two blocks above the hole fell by one, preserving order
	if got := g.BlockAt(GridRows-2, 2); got == nil || got.ID != above.ID {
		t.Error("Block above the hole should have fallen into it")
	}
	if got := g.BlockAt(GridRows-3, 2); got == nil || got.ID != aboveTop.ID {
		t.Error("Relative vertical order not preserved by gravity")
	}
	if g.BlockAt(GridRows-4, 2) != nil {
		t.Error("Vacated top cell of the column should be empty")
	}
	checkGridInvariants(t, g)
}

func TestApplyGravityIdempotent(t *testing.T) {
	g := NewGrid(&scriptedValues{blocks: []int{2, 4, 6, 8}, targets: []int{15}})
	g.Initialize(PrefillRows)

	// Remove a scattering of blocks
	ids := map[int]bool{
		g.BlockAt(GridRows-1, 0).ID: true,
		g.BlockAt(GridRows-3, 0).ID: true,
		g.BlockAt(GridRows-2, 3).ID: true,
		g.BlockAt(GridRows-4, 5).ID: true,
	}
	g.RemoveBlocks(ids)
	g.ApplyGravity()

	layout := gridLayout(g)

	if moved := g.ApplyGravity(); moved {
		t.Error("Second ApplyGravity() should be a no-op")
	}
	if gridLayout(g) != layout {
		t.Error("Second ApplyGravity() changed the grid")
	}

	// Fully settled: no block has an empty cell directly beneath it
	for col := 0; col < GridCols; col++ {
		for row := 0; row < GridRows-1; row++ {
			if g.BlockAt(row, col) != nil && g.BlockAt(row+1, col) == nil {
				t.Errorf("Column %d not settled: block at row %d floats", col, row)
			}
		}
	}
	checkGridInvariants(t, g)
}

func TestBlockByID(t *testing.T) {
	g := NewGrid(&scriptedValues{blocks: []int{5}, targets: []int{15}})
	g.Initialize(PrefillRows)

	b := g.BlockAt(GridRows-1, 0)
	if got := g.BlockByID(b.ID); got != b {
		t.Error("BlockByID should find an existing block")
	}
	if g.BlockByID(999999) != nil {
		t.Error("BlockByID for an unknown id should return nil")
	}
}

// gridLayout serializes occupancy for comparison.
func gridLayout(g *Grid) string {
	out := make([]byte, 0, GridRows*(GridCols+1))
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if b := g.BlockAt(row, col); b != nil {
				out = append(out, byte('0'+b.Value))
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

// Package sumgrid implements the Sum Game: a grid of numbered blocks fills
// from the bottom, the player selects blocks whose values add up to a
// target, matches clear and blocks fall, and the game ends when a new row
// no longer fits under the top edge.
package sumgrid

// Block is a single numbered tile occupying one grid cell.
// The ID is stable for the block's lifetime; position fields are updated
// whenever the block moves.
type Block struct {
	ID       int
	Value    int
	Row, Col int
	Selected bool
}

// Grid owns the block entities of a fixed 10x6 playfield.
// Row 0 is the top edge; new rows enter at the bottom (GridRows-1).
// Invariants: a block's Row/Col always match the cell that holds it, no
// two blocks share a cell, and no block exists outside the bounds.
type Grid struct {
	cells  [GridRows][GridCols]*Block
	values ValueSource
	nextID int
}

// NewGrid creates an empty grid drawing block values from the given source.
func NewGrid(values ValueSource) *Grid {
	return &Grid{values: values, nextID: 1}
}

// Initialize clears the grid and fills the bottom prefill rows with fresh
// blocks. Used at game start and on restart.
func (g *Grid) Initialize(prefill int) {
	g.cells = [GridRows][GridCols]*Block{}
	for row := GridRows - prefill; row < GridRows; row++ {
		g.fillRow(row)
	}
}

// fillRow populates every cell of the given row with fresh blocks.
func (g *Grid) fillRow(row int) {
	for col := 0; col < GridCols; col++ {
		b := &Block{
			ID:    g.nextID,
			Value: g.values.BlockValue(),
			Row:   row,
			Col:   col,
		}
		g.nextID++
		g.cells[row][col] = b
	}
}

// InjectRow shifts every row up by one and fills the freed bottom row with
// fresh blocks. If the top row holds any block the grid cannot absorb
// another row: nothing is mutated and overflow is reported true. The
// caller treats overflow as the game-over signal.
func (g *Grid) InjectRow() (overflow bool) {
	for col := 0; col < GridCols; col++ {
		if g.cells[0][col] != nil {
			return true
		}
	}

	for row := 0; row < GridRows-1; row++ {
		for col := 0; col < GridCols; col++ {
			b := g.cells[row+1][col]
			g.cells[row][col] = b
			if b != nil {
				b.Row = row
			}
		}
	}
	g.fillRow(GridRows - 1)
	return false
}

// RemoveBlocks empties every cell holding a block whose id is in ids and
// returns how many blocks were removed. Gravity is a separate step.
func (g *Grid) RemoveBlocks(ids map[int]bool) int {
	removed := 0
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			b := g.cells[row][col]
			if b != nil && ids[b.ID] {
				g.cells[row][col] = nil
				removed++
			}
		}
	}
	return removed
}

// ApplyGravity compacts every column downward, preserving the relative
// vertical order of its blocks. Each column is fully settled before the
// next one is processed. Returns whether any block moved.
func (g *Grid) ApplyGravity() (moved bool) {
	for col := 0; col < GridCols; col++ {
		write := GridRows - 1
		for row := GridRows - 1; row >= 0; row-- {
			b := g.cells[row][col]
			if b == nil {
				continue
			}
			if row != write {
				g.cells[write][col] = b
				g.cells[row][col] = nil
				b.Row = write
				moved = true
			}
			write--
		}
	}
	return moved
}

// BlockAt returns the block at (row, col), or nil for empty or
// out-of-bounds cells.
func (g *Grid) BlockAt(row, col int) *Block {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return nil
	}
	return g.cells[row][col]
}

// BlockByID returns the block with the given id, or nil if it is no
// longer in the grid.
func (g *Grid) BlockByID(id int) *Block {
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if b := g.cells[row][col]; b != nil && b.ID == id {
				return b
			}
		}
	}
	return nil
}

// Blocks returns all blocks in row-major order (top-left first).
func (g *Grid) Blocks() []*Block {
	var blocks []*Block
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if b := g.cells[row][col]; b != nil {
				blocks = append(blocks, b)
			}
		}
	}
	return blocks
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if g.cells[row][col] != nil {
				n++
			}
		}
	}
	return n
}

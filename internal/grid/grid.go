// Package grid arranges focusable cells into rows and answers directional
// focus movement queries.
package grid

// Cell is anything that can sit in a grid. IDs must be unique per grid.
type Cell interface {
	ID() string
}

// Direction of a focus move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

type position struct {
	row, col int
}

// Grid is a fixed arrangement of cells plus the id of the focused cell. The
// layout never changes after Build; the focus moves with Focus, Anchor and
// MoveFocus.
// Rows may have different lengths.
type Grid[C Cell] struct {
	rows    [][]C
	order   []C
	index   map[string]position
	focused string
}

// Build lays out leading rows first, each kept as given, then cells row-major
// in rows of columns. Empty leading rows are dropped. Focus starts on the
// first cell.
func Build[C Cell](cells []C, columns int, leading ...[]C) *Grid[C] {
	if columns <= 0 {
		columns = 1
	}
	g := &Grid[C]{index: make(map[string]position)}

	for _, row := range leading {
		if len(row) > 0 {
			g.appendRow(row)
		}
	}
	for start := 0; start < len(cells); start += columns {
		end := min(start+columns, len(cells))
		g.appendRow(cells[start:end])
	}

	if len(g.order) > 0 {
		g.focused = g.order[0].ID()
	}
	return g
}

func (g *Grid[C]) appendRow(row []C) {
	r := len(g.rows)
	copied := make([]C, len(row))
	copy(copied, row)
	for c, cell := range copied {
		g.index[cell.ID()] = position{row: r, col: c}
		g.order = append(g.order, cell)
	}
	g.rows = append(g.rows, copied)
}

// Rows returns the layout. Callers must not modify it.
func (g *Grid[C]) Rows() [][]C {
	return g.rows
}

// Len is the total number of cells.
func (g *Grid[C]) Len() int {
	return len(g.order)
}

// Cells returns all cells in tab order.
func (g *Grid[C]) Cells() []C {
	return g.order
}

// Position returns the row and column of id.
func (g *Grid[C]) Position(id string) (row, col int, ok bool) {
	p, ok := g.index[id]
	return p.row, p.col, ok
}

// Find returns the cell with id.
func (g *Grid[C]) Find(id string) (C, bool) {
	p, ok := g.index[id]
	if !ok {
		var zero C
		return zero, false
	}
	return g.rows[p.row][p.col], true
}

// Move returns the cell focus would land on when moving from currentID.
// Up and down keep the column, clamped to the length of the target row, and
// stay put at the first or last row. Left and right walk tab order and wrap.
// ok is false when currentID is not in the grid.
func (g *Grid[C]) Move(currentID string, dir Direction) (C, bool) {
	p, found := g.index[currentID]
	if !found {
		var zero C
		return zero, false
	}

	switch dir {
	case Up, Down:
		target := p.row + 1
		if dir == Up {
			target = p.row - 1
		}
		if target < 0 || target >= len(g.rows) {
			return g.rows[p.row][p.col], true
		}
		col := min(p.col, len(g.rows[target])-1)
		return g.rows[target][col], true
	case Left, Right:
		i := g.orderIndex(p)
		if dir == Right {
			i = (i + 1) % len(g.order)
		} else {
			i = (i - 1 + len(g.order)) % len(g.order)
		}
		return g.order[i], true
	}
	return g.rows[p.row][p.col], true
}

func (g *Grid[C]) orderIndex(p position) int {
	i := 0
	for r := 0; r < p.row; r++ {
		i += len(g.rows[r])
	}
	return i + p.col
}

// Focused returns the focused cell. ok is false on an empty grid.
func (g *Grid[C]) Focused() (C, bool) {
	return g.Find(g.focused)
}

// FocusedID returns the id of the focused cell, or "" on an empty grid.
func (g *Grid[C]) FocusedID() string {
	return g.focused
}

// Focus moves focus to id if it is in the grid.
func (g *Grid[C]) Focus(id string) bool {
	if _, ok := g.index[id]; !ok {
		return false
	}
	g.focused = id
	return true
}

// Anchor focuses the first of preferred that exists, else the first cell.
func (g *Grid[C]) Anchor(preferred ...string) {
	for _, id := range preferred {
		if g.Focus(id) {
			return
		}
	}
	g.focused = ""
	if len(g.order) > 0 {
		g.focused = g.order[0].ID()
	}
}

// MoveFocus applies Move to the focused cell and focuses the result. A focus
// that fell out of the grid is re-anchored on the first cell first.
func (g *Grid[C]) MoveFocus(dir Direction) (C, bool) {
	if _, ok := g.index[g.focused]; !ok {
		g.Anchor()
	}
	next, ok := g.Move(g.focused, dir)
	if ok {
		g.focused = next.ID()
	}
	return next, ok
}

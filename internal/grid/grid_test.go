package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell string

func (c cell) ID() string { return string(c) }

func cells(n int) []cell {
	out := make([]cell, n)
	for i := range out {
		out[i] = cell(fmt.Sprintf("c%d", i))
	}
	return out
}

func ids(rows [][]cell) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		for _, c := range row {
			out[i] = append(out[i], c.ID())
		}
	}
	return out
}

func TestBuild_RowMajor(t *testing.T) {
	g := Build(cells(7), 3)
	assert.Equal(t, [][]string{
		{"c0", "c1", "c2"},
		{"c3", "c4", "c5"},
		{"c6"},
	}, ids(g.Rows()))
	assert.Equal(t, 7, g.Len())
	assert.Equal(t, "c0", g.FocusedID())
}

func TestBuild_LeadingRows(t *testing.T) {
	g := Build(cells(4), 2, []cell{"back", "top"}, nil, []cell{"photos"})
	assert.Equal(t, [][]string{
		{"back", "top"},
		{"photos"},
		{"c0", "c1"},
		{"c2", "c3"},
	}, ids(g.Rows()))

	row, col, ok := g.Position("photos")
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
}

func TestBuild_Empty(t *testing.T) {
	g := Build[cell](nil, 4)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.FocusedID())
	_, ok := g.Focused()
	assert.False(t, ok)
}

func TestBuild_NonPositiveColumns(t *testing.T) {
	g := Build(cells(2), 0)
	assert.Equal(t, [][]string{{"c0"}, {"c1"}}, ids(g.Rows()))
}

func TestBuild_Idempotent(t *testing.T) {
	content := cells(11)
	lead := []cell{"back"}
	a := Build(content, 4, lead)
	b := Build(content, 4, lead)
	assert.Equal(t, ids(a.Rows()), ids(b.Rows()))
	for _, c := range content {
		ra, ca, _ := a.Position(c.ID())
		rb, cb, _ := b.Position(c.ID())
		assert.Equal(t, [2]int{ra, ca}, [2]int{rb, cb})
	}
}

func TestBuild_CopiesInput(t *testing.T) {
	content := cells(2)
	g := Build(content, 2)
	content[0] = "mutated"
	_, ok := g.Find("c0")
	assert.True(t, ok)
}

func TestMove_DownUpRoundTripUniform(t *testing.T) {
	for _, n := range []int{4, 9, 12, 16} {
		for _, columns := range []int{1, 2, 4} {
			g := Build(cells(n), columns)
			rows := g.Rows()
			for r := 0; r+1 < len(rows); r++ {
				if len(rows[r+1]) != columns {
					continue
				}
				for _, start := range rows[r] {
					down, ok := g.Move(start.ID(), Down)
					require.True(t, ok)
					back, ok := g.Move(down.ID(), Up)
					require.True(t, ok)
					assert.Equal(t, start, back, "n=%d columns=%d", n, columns)
				}
			}
		}
	}
}

func TestMove_ClampsOnRowLengthMismatch(t *testing.T) {
	// Row 0 has one entry, row 1 has three.
	g := Build(cells(3), 3, []cell{"aggregate"})

	up, ok := g.Move("c2", Up)
	require.True(t, ok)
	assert.Equal(t, cell("aggregate"), up)

	back, ok := g.Move("aggregate", Down)
	require.True(t, ok)
	assert.Equal(t, cell("c0"), back, "clamped return is not the origin")
}

func TestMove_DownClampsToShortLastRow(t *testing.T) {
	g := Build(cells(5), 3)
	got, ok := g.Move("c2", Down)
	require.True(t, ok)
	assert.Equal(t, cell("c4"), got)
}

func TestMove_NoopAtEdges(t *testing.T) {
	g := Build(cells(6), 3)

	got, ok := g.Move("c1", Up)
	require.True(t, ok)
	assert.Equal(t, cell("c1"), got)

	got, ok = g.Move("c4", Down)
	require.True(t, ok)
	assert.Equal(t, cell("c4"), got)
}

func TestMove_LeftRightTabOrder(t *testing.T) {
	g := Build(cells(4), 2, []cell{"back"})

	tests := []struct {
		from string
		dir  Direction
		want cell
	}{
		{"back", Right, "c0"},
		{"c1", Right, "c2"},
		{"c3", Right, "back"},
		{"back", Left, "c3"},
		{"c2", Left, "c1"},
		{"c0", Left, "back"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.from, tt.dir), func(t *testing.T) {
			got, ok := g.Move(tt.from, tt.dir)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMove_NotFound(t *testing.T) {
	g := Build(cells(2), 2)
	_, ok := g.Move("missing", Down)
	assert.False(t, ok)
}

func TestAnchor(t *testing.T) {
	g := Build(cells(3), 3, []cell{"back"})

	g.Anchor("missing", "c2")
	assert.Equal(t, "c2", g.FocusedID())

	g.Anchor("missing")
	assert.Equal(t, "back", g.FocusedID())

	assert.False(t, g.Focus("missing"))
	assert.Equal(t, "back", g.FocusedID())
}

func TestMoveFocus(t *testing.T) {
	g := Build(cells(4), 2)
	_, ok := g.MoveFocus(Down)
	require.True(t, ok)
	assert.Equal(t, "c2", g.FocusedID())

	_, ok = g.MoveFocus(Right)
	require.True(t, ok)
	assert.Equal(t, "c3", g.FocusedID())

	focused, ok := g.Focused()
	require.True(t, ok)
	assert.Equal(t, cell("c3"), focused)
}

func TestMoveFocus_EmptyGrid(t *testing.T) {
	g := Build[cell](nil, 2)
	_, ok := g.MoveFocus(Down)
	assert.False(t, ok)
}

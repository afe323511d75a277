package codec

// ZeroCell is the literal cell used for 0-bits.
const ZeroCell = "0"

// Grid is a 2-D arrangement of cells representing an encoded bit
// sequence. A cell is either ZeroCell or the text of an expression that
// verifies against 1. Rows have uniform width except the final row, which
// holds the exact remainder.
//
// Grids are plain values owned by the caller; the codec never aliases a
// returned grid across calls.
type Grid struct {
	Rows  [][]string `json:"rows"`
	Width int        `json:"width"`
}

// CellCount returns the total number of cells across all rows.
func (g *Grid) CellCount() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}

// Flatten returns all cells in row-major order.
func (g *Grid) Flatten() []string {
	out := make([]string, 0, g.CellCount())
	for _, row := range g.Rows {
		out = append(out, row...)
	}
	return out
}

package codec

import (
	"fmt"

	"github.com/roach88/exprgrid/internal/verify"
)

// Decode reverses Encode: it flattens the grid, maps each cell back to a
// bit, regroups bits into bytes, and returns the resulting string.
//
// ZeroCell cells are 0-bits. Every other cell must verify against 1
// within the configured tolerance; a cell that fails - whether it
// evaluates to the wrong value or does not evaluate at all - fails the
// whole decode with an AMBIGUOUS_CELL error locating the cell. That is
// deliberate: a best-effort guess would defeat verifiable equivalence.
func Decode(grid *Grid, opts ...Option) (string, error) {
	o := applyOptions(opts)

	if grid == nil {
		return "", nil
	}
	total := grid.CellCount()
	if total%8 != 0 {
		return "", &CodecError{
			Code:    ErrCodeBitMisaligned,
			Message: fmt.Sprintf("cell count %d is not a multiple of 8", total),
		}
	}

	data := make([]byte, 0, total/8)
	var cur byte
	bits := 0
	for r, row := range grid.Rows {
		for c, cell := range row {
			bit, err := decodeCell(cell, r, c, o.tolerance)
			if err != nil {
				return "", err
			}
			cur = cur<<1 | bit
			bits++
			if bits == 8 {
				data = append(data, cur)
				cur, bits = 0, 0
			}
		}
	}
	return string(data), nil
}

// decodeCell maps one cell to a bit, verifying non-zero cells against 1.
func decodeCell(cell string, row, col int, tolerance float64) (byte, error) {
	if cell == ZeroCell {
		return 0, nil
	}
	ok, err := verify.Verify(cell, 1, tolerance)
	if err != nil || !ok {
		msg := "cell does not verify against 1"
		if err != nil {
			msg = fmt.Sprintf("cell does not evaluate: %v", err)
		}
		return 0, &CodecError{
			Code:    ErrCodeAmbiguousCell,
			Message: msg,
			Row:     row,
			Col:     col,
			Cell:    cell,
		}
	}
	return 1, nil
}

package codec

import (
	"fmt"

	"github.com/roach88/exprgrid/internal/diversity"
)

// Encode converts text into an expression grid.
//
// Each byte of the UTF-8 encoding contributes 8 bits, most significant
// first. 1-bits cycle through a diversity pool generated for the value 1,
// so consecutive 1-bits avoid repeating an expression whenever the pool
// size allows; 0-bits become ZeroCell. The flattened cell count always
// equals 8 × len(bytes).
func Encode(text string, opts ...Option) (*Grid, error) {
	o := applyOptions(opts)

	grid := &Grid{Width: o.width}
	data := []byte(text)
	if len(data) == 0 {
		return grid, nil
	}

	pool, err := diversity.NewGenerator(o.cat, o.tolerance).Generate(1, o.poolSize)
	if err != nil {
		return nil, fmt.Errorf("encode: generating unity pool: %w", err)
	}

	cells := make([]string, 0, 8*len(data))
	next := 0
	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			if b>>uint(shift)&1 == 1 {
				cells = append(cells, pool[next%len(pool)].Text)
				next++
			} else {
				cells = append(cells, ZeroCell)
			}
		}
	}

	for start := 0; start < len(cells); start += o.width {
		end := start + o.width
		if end > len(cells) {
			end = len(cells)
		}
		grid.Rows = append(grid.Rows, cells[start:end])
	}
	return grid, nil
}

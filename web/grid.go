package web

import (
	"fmt"

	"github.com/reelgrid/reelgrid/cards"
)

// grid is the view model the grid template renders
type grid struct {
	Rows        [][]cards.Card
	Empty       bool
	CellPercent string
}

// gridRows partitions list into row-major rows of cols cards each, producing
// ceil(n/cols) rows. Order is preserved; nothing is sorted or reflowed.
func gridRows(list []cards.Card, cols int) [][]cards.Card {
	if cols < 1 {
		cols = 1
	}
	if len(list) == 0 {
		return nil
	}

	rows := make([][]cards.Card, 0, (len(list)+cols-1)/cols)
	for start := 0; start < len(list); start += cols {
		end := start + cols
		if end > len(list) {
			end = len(list)
		}
		rows = append(rows, list[start:end])
	}
	return rows
}

// newGrid builds the grid view model for a card list at the given column count
func newGrid(list []cards.Card, cols int) grid {
	if cols < 1 {
		cols = 1
	}
	return grid{
		Rows:        gridRows(list, cols),
		Empty:       len(list) == 0,
		CellPercent: fmt.Sprintf("%.3f%%", 100.0/float64(cols)),
	}
}

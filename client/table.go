package client

import (
	"collabSheet/contracts"
	"sync"
)

const (
	CellWidth  = 100.0
	CellHeight = 24.0
)

// Rect is a cell's box in table coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

type TableCell struct {
	Id   string
	Text string
	Rect Rect
}

// Table is the local copy of the spreadsheet the user is looking at.
type Table struct {
	mu    sync.RWMutex
	rows  [][]*TableCell
	index map[string]*TableCell
}

func NewTable(grid contracts.Grid) *Table {
	table := &Table{
		rows:  make([][]*TableCell, len(grid)),
		index: map[string]*TableCell{},
	}

	for row, rowData := range grid {
		table.rows[row] = make([]*TableCell, len(rowData))
		for col, text := range rowData {
			cell := &TableCell{
				Id:   contracts.FormatCellId(row, col),
				Text: text,
				Rect: Rect{
					Top:    float64(row) * CellHeight,
					Left:   float64(col) * CellWidth,
					Width:  CellWidth,
					Height: CellHeight,
				},
			}
			table.rows[row][col] = cell
			table.index[cell.Id] = cell
		}
	}

	return table
}

func (t *Table) Cell(cellId string) (TableCell, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cell := t.lookup(cellId)
	if cell == nil {
		return TableCell{}, false
	}
	return *cell, true
}

// SetText replaces the cell text and returns the updated cell; unknown ids leave the table untouched.
func (t *Table) SetText(cellId string, text string) (TableCell, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cell := t.lookup(cellId)
	if cell == nil {
		return TableCell{}, false
	}
	cell.Text = text
	return *cell, true
}

// Rows flattens the table row by row, the shape the save request expects.
func (t *Table) Rows() contracts.Grid {
	t.mu.RLock()
	defer t.mu.RUnlock()

	grid := make(contracts.Grid, len(t.rows))
	for row, cells := range t.rows {
		grid[row] = make([]string, len(cells))
		for col, cell := range cells {
			grid[row][col] = cell.Text
		}
	}
	return grid
}

func (t *Table) lookup(cellId string) *TableCell {
	if cell, ok := t.index[cellId]; ok {
		return cell
	}

	canonicalId, err := contracts.NormalizeCellId(cellId)
	if err != nil {
		return nil
	}
	return t.index[canonicalId]
}

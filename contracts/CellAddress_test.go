package contracts

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFormatCellId(t *testing.T) {
	testCases := map[string][2]int{
		"A1":   {0, 0},
		"J10":  {9, 9},
		"Z1":   {0, 25},
		"AA3":  {2, 26},
		"AZ1":  {0, 51},
		"BA12": {11, 52},
	}

	for expected, position := range testCases {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, FormatCellId(position[0], position[1]))
		})
	}
}

func TestParseCellId(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for row := 0; row < 12; row++ {
			for col := 0; col < 60; col++ {
				actualRow, actualCol, err := ParseCellId(FormatCellId(row, col))
				assert.NoError(t, err)
				assert.Equal(t, row, actualRow)
				assert.Equal(t, col, actualCol)
			}
		}
	})

	t.Run("lower_case", func(t *testing.T) {
		row, col, err := ParseCellId(" b7 ")
		assert.NoError(t, err)
		assert.Equal(t, 6, row)
		assert.Equal(t, 1, col)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, cellId := range []string{"", "A", "1", "A0", "1A", "A-1", "A1B", "cell1", "Ä1"} {
			_, _, err := ParseCellId(cellId)
			assert.ErrorIs(t, err, CellIdInvalidError, cellId)
		}
	})
}

func TestParseCellId_Limits(t *testing.T) {
	row, col, err := ParseCellId("XFD1048576")
	assert.NoError(t, err)
	assert.Equal(t, MaxRows-1, row)
	assert.Equal(t, MaxCols-1, col)

	for _, cellId := range []string{
		"XFE1",
		"A1048577",
		"A4294967297",
		"A99999999999999999999999",
		"AAAAAAAAAAAAAAA1",
		"ZZZZZZZZZZZZZZZZZZZZ1",
	} {
		_, _, err = ParseCellId(cellId)
		assert.ErrorIs(t, err, CellIdInvalidError, cellId)
	}
}

func TestNormalizeCellId(t *testing.T) {
	cellId, err := NormalizeCellId("aa10")
	assert.NoError(t, err)
	assert.Equal(t, "AA10", cellId)

	_, err = NormalizeCellId("10AA")
	assert.ErrorIs(t, err, CellIdInvalidError)
}

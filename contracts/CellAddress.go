package contracts

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const alphabetSize = 26

// Sheet limits, the same as a desktop spreadsheet: 1048576 rows, columns A..XFD.
const (
	MaxRows = 1 << 20
	MaxCols = 1 << 14
)

// https://regex101.com/r/cZ8tQ3/1
var cellIdRegex = regexp.MustCompile(`^([A-Z]+)([1-9]\d*)$`)

// FormatCellId returns A1 notation for zero-based row and col: (0, 0) => A1, (9, 27) => AB10
func FormatCellId(row int, col int) string {
	return columnLetters(col) + strconv.Itoa(row+1)
}

// NormalizeCellId turns any accepted spelling (" b7 ") into canonical A1 notation ("B7").
func NormalizeCellId(cellId string) (string, error) {
	row, col, err := ParseCellId(cellId)
	if err != nil {
		return "", err
	}
	return FormatCellId(row, col), nil
}

func ParseCellId(cellId string) (row int, col int, err error) {
	match := cellIdRegex.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(cellId)))
	if match == nil {
		return 0, 0, fmt.Errorf("cell_id `%s`: %w", cellId, CellIdInvalidError)
	}

	for _, letter := range match[1] {
		col = col*alphabetSize + int(letter-'A') + 1
		if col > MaxCols {
			return 0, 0, fmt.Errorf("cell_id `%s`: column beyond %s: %w", cellId, columnLetters(MaxCols-1), CellIdInvalidError)
		}
	}

	row, err = strconv.Atoi(match[2])
	if err != nil || row > MaxRows {
		return 0, 0, fmt.Errorf("cell_id `%s`: row beyond %d: %w", cellId, MaxRows, CellIdInvalidError)
	}

	return row - 1, col - 1, nil
}

// columnLetters is bijective base-26: 0 => A, 25 => Z, 26 => AA
func columnLetters(col int) string {
	var letters []byte
	for n := col + 1; n > 0; n = (n - 1) / alphabetSize {
		letters = append([]byte{byte('A' + (n-1)%alphabetSize)}, letters...)
	}
	return string(letters)
}

package client

import "unicode/utf8"

// Selection is the caret range inside a cell's text, in characters.
type Selection struct {
	Start int
	End   int
}

// CursorOffset is the label sent with an edit: the number of characters before the end of the selection.
// Without a selection the offset is 0.
func CursorOffset(text string, selection *Selection) int {
	if selection == nil {
		return 0
	}

	offset := selection.End
	if length := utf8.RuneCountInString(text); offset > length {
		offset = length
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

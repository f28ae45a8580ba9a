package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelBoard(t *testing.T) {
	board := NewLabelBoard()

	first := TableCell{Id: "B3", Rect: Rect{Top: 48, Left: 100, Width: CellWidth, Height: CellHeight}}
	second := TableCell{Id: "A1", Rect: Rect{Top: 0, Left: 0, Width: CellWidth, Height: CellHeight}}

	label := board.Place("bob", first)
	assert.Equal(t, Label{User: "bob", CellId: "B3", Top: 28, Left: 100}, label)

	board.Place("alice", second)
	label = board.Place("bob", second)
	assert.Equal(t, Label{User: "bob", CellId: "A1", Top: -LabelOffsetTop, Left: 0}, label)

	assert.Equal(t, 2, board.Len())
	assert.Equal(t, []string{"alice", "bob"}, board.Users())

	stored, ok := board.Get("bob")
	assert.True(t, ok)
	assert.Equal(t, label, stored)

	_, ok = board.Get("carol")
	assert.False(t, ok)
}

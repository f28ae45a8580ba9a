package client

import (
	"sort"
	"sync"
)

// LabelOffsetTop lifts a label above the cell it points at.
const LabelOffsetTop = 20.0

// Label is the floating name tag of a remote user.
type Label struct {
	User   string
	CellId string
	Top    float64
	Left   float64
}

// LabelBoard keeps exactly one label per remote user.
type LabelBoard struct {
	mu     sync.RWMutex
	labels map[string]*Label
}

func NewLabelBoard() *LabelBoard {
	return &LabelBoard{labels: map[string]*Label{}}
}

// Place creates the user's label on first sight and moves it just above cell.
func (b *LabelBoard) Place(user string, cell TableCell) Label {
	b.mu.Lock()
	defer b.mu.Unlock()

	label, ok := b.labels[user]
	if !ok {
		label = &Label{User: user}
		b.labels[user] = label
	}

	label.CellId = cell.Id
	label.Top = cell.Rect.Top - LabelOffsetTop
	label.Left = cell.Rect.Left
	return *label
}

func (b *LabelBoard) Get(user string) (Label, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	label, ok := b.labels[user]
	if !ok {
		return Label{}, false
	}
	return *label, true
}

func (b *LabelBoard) Users() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	users := make([]string, 0, len(b.labels))
	for user := range b.labels {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

func (b *LabelBoard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.labels)
}

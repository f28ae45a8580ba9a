package contracts

type SheetRepository interface {
	GetGrid() (Grid, error)
	SaveGrid(data Grid) error
	SetCell(cellId string, text string) error
	Close() error
}

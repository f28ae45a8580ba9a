package contracts

// CellRecord is a stored cell: its A1 id and the text the users typed into it.
type CellRecord struct {
	Id   string
	Text string
}

type CellSerializer interface {
	Marshal(record CellRecord) []byte
	Unmarshal(data []byte) (CellRecord, error)
}

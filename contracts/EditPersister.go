package contracts

type EditPersister interface {
	Enqueue(update CellUpdate)
	Start()
	Close()
}

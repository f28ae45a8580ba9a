package main

import (
	"collabSheet/contracts"
	"hash/fnv"
	"log/slog"
	"sync"
)

const EditPersisterWorkersCount = 5

const editQueueSize = 64

// EditPersister stores relayed edits in the background so a slow disk never delays the broadcast.
// Edits of one cell always go to the same worker, so they are stored in the order they were relayed.
type EditPersister struct {
	repository contracts.SheetRepository
	queues     []chan contracts.CellUpdate
	logger     *slog.Logger
	wg         sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewEditPersister(repository contracts.SheetRepository, logger *slog.Logger) *EditPersister {
	queues := make([]chan contracts.CellUpdate, EditPersisterWorkersCount)
	for i := range queues {
		queues[i] = make(chan contracts.CellUpdate, editQueueSize)
	}

	return &EditPersister{
		repository: repository,
		queues:     queues,
		logger:     logger,
	}
}

func (persister *EditPersister) Enqueue(update contracts.CellUpdate) {
	persister.mu.RLock()
	defer persister.mu.RUnlock()

	if persister.closed {
		persister.logger.Warn("edit persister is closed, edit not persisted", "cell", update.Id, "user", update.User)
		return
	}

	select {
	case persister.queueFor(update.Id) <- update:
	default:
		persister.logger.Warn("edit queue is full, edit not persisted", "cell", update.Id, "user", update.User)
	}
}

func (persister *EditPersister) Start() {
	for _, queue := range persister.queues {
		persister.wg.Add(1)
		go persister.runWorker(queue)
	}
}

// Close drains queued edits and waits for the workers. Edits enqueued after Close are dropped.
func (persister *EditPersister) Close() {
	persister.mu.Lock()
	if !persister.closed {
		persister.closed = true
		for _, queue := range persister.queues {
			close(queue)
		}
	}
	persister.mu.Unlock()

	persister.wg.Wait()
}

func (persister *EditPersister) queueFor(cellId string) chan contracts.CellUpdate {
	h := fnv.New32a()
	_, _ = h.Write([]byte(cellId))
	return persister.queues[h.Sum32()%uint32(len(persister.queues))]
}

func (persister *EditPersister) runWorker(queue chan contracts.CellUpdate) {
	defer persister.wg.Done()

	for update := range queue {
		if err := persister.repository.SetCell(update.Id, update.Text); err != nil {
			persister.logger.Error("persist edit failed", "cell", update.Id, "user", update.User, "err", err)
		}
	}
}

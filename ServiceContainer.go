package main

import (
	"collabSheet/contracts"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	SheetRepository contracts.SheetRepository
	EditPersister   contracts.EditPersister
	RelayHub        contracts.RelayHub
	ApiController   contracts.ApiController
	Router          *gin.Engine
	Logger          *slog.Logger
}

func BuildServiceContainer(config Config, logOut io.Writer) (container ServiceContainer, err error) {
	container.Logger = slog.New(slog.NewJSONHandler(logOut, nil))

	if config.DatabaseUrl != "" {
		container.SheetRepository, err = NewPostgresSheetRepository(config.DatabaseUrl, config.Rows, config.Cols)
	} else {
		var db *bbolt.DB
		db, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)
		if err == nil {
			container.SheetRepository = NewSheetRepository(db, NewCellRecordSerializer(), config.Rows, config.Cols)
		}
	}
	if err != nil {
		return
	}

	if config.LivePersist {
		container.EditPersister = NewEditPersister(container.SheetRepository, container.Logger)
		container.RelayHub = NewRelayHub(container.EditPersister, config, container.Logger)
	} else {
		container.RelayHub = NewRelayHub(nil, config, container.Logger)
	}

	container.ApiController = NewApiController(container.SheetRepository, container.RelayHub, container.Logger)
	container.Router = SetupRouter(container.ApiController, logOut, config.AllowedOrigins)

	return
}

func (container *ServiceContainer) Start() {
	if container.EditPersister != nil {
		container.EditPersister.Start()
	}
	go container.RelayHub.Run()
}

// Close stops relaying before draining pending edits, then releases the storage.
func (container *ServiceContainer) Close() error {
	container.RelayHub.Close()
	if container.EditPersister != nil {
		container.EditPersister.Close()
	}
	return container.SheetRepository.Close()
}

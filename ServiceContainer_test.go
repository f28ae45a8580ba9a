package main

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"path/filepath"
	"testing"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bbolt_with_live_persist", func(t *testing.T) {
		config := DefaultConfig()
		config.DatabaseFilepath = filepath.Join(t.TempDir(), "sheet.db")
		config.LivePersist = true

		serviceContainer, err := BuildServiceContainer(config, io.Discard)
		require.NoError(t, err)

		// check sheet repository
		assert.IsType(t, &SheetRepository{}, serviceContainer.SheetRepository)
		sheetRepository := serviceContainer.SheetRepository.(*SheetRepository)
		assert.NotNil(t, sheetRepository.db)
		assert.IsType(t, &CellRecordSerializer{}, sheetRepository.serializer)
		assert.Equal(t, DefaultRows, sheetRepository.rows)
		assert.Equal(t, DefaultCols, sheetRepository.cols)

		// check edit persister
		assert.IsType(t, &EditPersister{}, serviceContainer.EditPersister)
		assert.Equal(t, serviceContainer.SheetRepository, serviceContainer.EditPersister.(*EditPersister).repository)

		// check relay hub
		assert.IsType(t, &RelayHub{}, serviceContainer.RelayHub)
		assert.Equal(t, serviceContainer.EditPersister, serviceContainer.RelayHub.(*RelayHub).persister)

		// check api controller
		assert.IsType(t, &ApiController{}, serviceContainer.ApiController)
		apiController := serviceContainer.ApiController.(*ApiController)
		assert.Equal(t, serviceContainer.SheetRepository, apiController.SheetRepository)
		assert.Equal(t, serviceContainer.RelayHub, apiController.RelayHub)

		// check router: 3 spreadsheet routes + health check
		assert.NotNil(t, serviceContainer.Router)
		assert.Len(t, serviceContainer.Router.Routes(), 4)

		serviceContainer.Start()
		assert.NoError(t, serviceContainer.Close())
	})

	t.Run("without_live_persist", func(t *testing.T) {
		config := DefaultConfig()
		config.DatabaseFilepath = filepath.Join(t.TempDir(), "sheet.db")

		serviceContainer, err := BuildServiceContainer(config, io.Discard)
		require.NoError(t, err)

		assert.Nil(t, serviceContainer.EditPersister)
		assert.Nil(t, serviceContainer.RelayHub.(*RelayHub).persister)

		serviceContainer.Start()
		assert.NoError(t, serviceContainer.Close())
	})

	t.Run("invalid_database_path", func(t *testing.T) {
		config := DefaultConfig()
		config.DatabaseFilepath = filepath.Join(t.TempDir(), "missing", "sheet.db")

		_, err := BuildServiceContainer(config, io.Discard)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no such file or directory")
	})
}

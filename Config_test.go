package main

import (
	"collabSheet/contracts"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults_with_env", func(t *testing.T) {
		t.Setenv("CONFIG_FILEPATH", "")
		t.Setenv("DATABASE_FILEPATH", "/tmp/sheet.db")
		t.Setenv("LIVE_PERSIST", "true")
		t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, DefaultListenAddr, config.ListenAddr)
		assert.Equal(t, "/tmp/sheet.db", config.DatabaseFilepath)
		assert.Equal(t, DefaultRows, config.Rows)
		assert.Equal(t, DefaultCols, config.Cols)
		assert.True(t, config.LivePersist)
		assert.Equal(t, DefaultEditRate, config.EditRate)
		assert.Equal(t, DefaultEditBurst, config.EditBurst)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.AllowedOrigins)
	})

	t.Run("yaml_file_with_env_override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9000\"\ndatabase_filepath: file.db\nrows: 3\ncols: 4\nedit_burst: 7\n"), 0600))

		t.Setenv("CONFIG_FILEPATH", path)
		t.Setenv("DATABASE_FILEPATH", "")
		t.Setenv("LISTEN_ADDR", ":9001")

		config, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, ":9001", config.ListenAddr)
		assert.Equal(t, "file.db", config.DatabaseFilepath)
		assert.Equal(t, 3, config.Rows)
		assert.Equal(t, 4, config.Cols)
		assert.Equal(t, 7, config.EditBurst)
	})

	t.Run("missing_database", func(t *testing.T) {
		t.Setenv("CONFIG_FILEPATH", "")
		t.Setenv("DATABASE_FILEPATH", "")
		t.Setenv("DATABASE_URL", "")

		_, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_FILEPATH")
	})

	t.Run("invalid_env", func(t *testing.T) {
		t.Setenv("CONFIG_FILEPATH", "")
		t.Setenv("DATABASE_FILEPATH", "/tmp/sheet.db")
		t.Setenv("EDIT_RATE", "fast")

		_, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "EDIT_RATE")
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Setenv("CONFIG_FILEPATH", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := LoadConfig()

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("rows: [1"), 0600))
		t.Setenv("CONFIG_FILEPATH", path)

		_, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestConfig_Validate(t *testing.T) {
	config := DefaultConfig()
	config.DatabaseFilepath = "/tmp/sheet.db"
	assert.NoError(t, config.Validate())

	config.Rows = contracts.MaxRows + 1
	assert.ErrorContains(t, config.Validate(), "limited")

	config.Rows = DefaultRows
	config.Cols = contracts.MaxCols + 1
	assert.ErrorContains(t, config.Validate(), "limited")
}

package main

import (
	"collabSheet/contracts"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultListenAddr = ":8080"

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	// DatabaseFilepath is the bbolt file, used unless DatabaseUrl is set.
	DatabaseFilepath string `yaml:"database_filepath"`
	DatabaseUrl      string `yaml:"database_url"`
	Rows             int    `yaml:"rows"`
	Cols             int    `yaml:"cols"`
	// LivePersist stores every relayed edit, not only explicit saves.
	LivePersist    bool     `yaml:"live_persist"`
	EditRate       float64  `yaml:"edit_rate"`
	EditBurst      int      `yaml:"edit_burst"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr: DefaultListenAddr,
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		EditRate:   DefaultEditRate,
		EditBurst:  DefaultEditBurst,
	}
}

// LoadConfig reads the optional YAML file named by CONFIG_FILEPATH, then applies environment overrides.
func LoadConfig() (Config, error) {
	config := DefaultConfig()

	if path := os.Getenv("CONFIG_FILEPATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, err
		}
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("%s: %w", path, err)
		}
	}

	err := config.applyEnv()
	if err == nil {
		err = config.Validate()
	}

	return config, err
}

func (config *Config) applyEnv() error {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		config.ListenAddr = v
	}
	if v := os.Getenv("DATABASE_FILEPATH"); v != "" {
		config.DatabaseFilepath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseUrl = v
	}
	if v := strings.TrimSpace(os.Getenv("LIVE_PERSIST")); v != "" {
		livePersist, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LIVE_PERSIST: %w", err)
		}
		config.LivePersist = livePersist
	}
	if v := strings.TrimSpace(os.Getenv("EDIT_RATE")); v != "" {
		editRate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("EDIT_RATE: %w", err)
		}
		config.EditRate = editRate
	}
	if v := strings.TrimSpace(os.Getenv("EDIT_BURST")); v != "" {
		editBurst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EDIT_BURST: %w", err)
		}
		config.EditBurst = editBurst
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		config.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				config.AllowedOrigins = append(config.AllowedOrigins, origin)
			}
		}
	}

	return nil
}

func (config *Config) Validate() error {
	if config.DatabaseFilepath == "" && config.DatabaseUrl == "" {
		return fmt.Errorf("DATABASE_FILEPATH or DATABASE_URL is required")
	}
	if config.Rows <= 0 || config.Cols <= 0 {
		return fmt.Errorf("spreadsheet size should be positive (rows: %d; cols: %d)", config.Rows, config.Cols)
	}
	if config.Rows > contracts.MaxRows || config.Cols > contracts.MaxCols {
		return fmt.Errorf("spreadsheet size is limited to %dx%d (rows: %d; cols: %d)", contracts.MaxRows, contracts.MaxCols, config.Rows, config.Cols)
	}
	if config.EditRate <= 0 || config.EditBurst <= 0 {
		return fmt.Errorf("edit rate and burst should be positive (rate: %v; burst: %d)", config.EditRate, config.EditBurst)
	}
	return nil
}

package config

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// ServerConfig holds the optional host settings read from server.yaml.
type ServerConfig struct {
	Server struct {
		Address string `yaml:"address"`
		DB      string `yaml:"db"`
	} `yaml:"server"`
	Battle struct {
		MaxRounds int `yaml:"max_rounds"`
	} `yaml:"battle"`
	Sim struct {
		Workers int `yaml:"workers"`
	} `yaml:"sim"`
}

const (
	DefaultAddress   = ":8080"
	DefaultDB        = "./data/battler.db"
	DefaultMaxRounds = 200
	DefaultWorkers   = 8
)

// LoadServer reads dir/server.yaml. A missing file yields the defaults.
func LoadServer(dir string) (*ServerConfig, error) {
	var sc ServerConfig
	err := loadYAML(filepath.Join(dir, "server.yaml"), &sc)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if sc.Server.Address == "" {
		sc.Server.Address = DefaultAddress
	}
	if sc.Server.DB == "" {
		sc.Server.DB = DefaultDB
	}
	if sc.Battle.MaxRounds <= 0 {
		sc.Battle.MaxRounds = DefaultMaxRounds
	}
	if sc.Sim.Workers <= 0 {
		sc.Sim.Workers = DefaultWorkers
	}
	return &sc, nil
}

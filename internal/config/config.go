package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = "gradebook.toml"

// DefaultPort is the port the server listens on when none is configured.
const DefaultPort = 3000

// DefaultDataDir holds the seed documents when no paths are configured.
const DefaultDataDir = "data"

// Config holds the gradebook configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
}

// ServerConfig defines the HTTP listener.
type ServerConfig struct {
	Port int `toml:"port"`
}

// DataConfig points at the three seed documents.
type DataConfig struct {
	Courses  string `toml:"courses"`
	Students string `toml:"students"`
	Grades   string `toml:"grades"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultPort},
		Data:   DataInDir(DefaultDataDir),
	}
}

// DataInDir returns a DataConfig for courses.json, students.json and grades.json in dir.
func DataInDir(dir string) DataConfig {
	return DataConfig{
		Courses:  filepath.Join(dir, "courses.json"),
		Students: filepath.Join(dir, "students.json"),
		Grades:   filepath.Join(dir, "grades.json"),
	}
}

// Load reads configuration from the given file.
// Returns default config if the file doesn't exist. Relative data paths in the
// file are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Apply defaults for missing values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}

	base := filepath.Dir(path)
	defaults := DataInDir(DefaultDataDir)
	cfg.Data.Courses = resolve(base, cfg.Data.Courses, defaults.Courses)
	cfg.Data.Students = resolve(base, cfg.Data.Students, defaults.Students)
	cfg.Data.Grades = resolve(base, cfg.Data.Grades, defaults.Grades)

	return &cfg, nil
}

func resolve(base, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Save writes the configuration to the given file.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return c.Server.Addr()
}

// Addr returns the listen address for Port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

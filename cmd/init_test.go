package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hmans/gradebook/internal/config"
)

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFile)

	if err := writeConfig(config.Default(), path, false); err != nil {
		t.Fatalf("writeConfig() error = %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Server.Port != config.DefaultPort {
		t.Errorf("Port = %d, want %d", got.Server.Port, config.DefaultPort)
	}
	if want := filepath.Join(dir, "data", "courses.json"); got.Data.Courses != want {
		t.Errorf("Data.Courses = %q, want %q", got.Data.Courses, want)
	}
}

func TestWriteConfigExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFile)
	if err := os.WriteFile(path, []byte("[server]\nport = 4000\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	err := writeConfig(config.Default(), path, false)
	if !errors.Is(err, errConfigExists) {
		t.Fatalf("writeConfig() error = %v, want %v", err, errConfigExists)
	}
	if got, _ := config.Load(path); got.Server.Port != 4000 {
		t.Errorf("existing config was overwritten: port = %d", got.Server.Port)
	}

	if err := writeConfig(config.Default(), path, true); err != nil {
		t.Fatalf("writeConfig(force) error = %v", err)
	}
	if got, _ := config.Load(path); got.Server.Port != config.DefaultPort {
		t.Errorf("forced write kept port %d", got.Server.Port)
	}
}

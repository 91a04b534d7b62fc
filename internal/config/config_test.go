package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Data.Courses != filepath.Join("data", "courses.json") {
		t.Errorf("Courses = %q, want data/courses.json", cfg.Data.Courses)
	}
	if cfg.Data.Students != filepath.Join("data", "students.json") {
		t.Errorf("Students = %q, want data/students.json", cfg.Data.Students)
	}
	if cfg.Data.Grades != filepath.Join("data", "grades.json") {
		t.Errorf("Grades = %q, want data/grades.json", cfg.Data.Grades)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("Addr() = %q, want \":3000\"", cfg.Addr())
	}
}

func TestDataInDir(t *testing.T) {
	got := DataInDir("/srv/seed")
	want := DataConfig{
		Courses:  "/srv/seed/courses.json",
		Students: "/srv/seed/students.json",
		Grades:   "/srv/seed/grades.json",
	}
	if got != want {
		t.Errorf("DataInDir() = %+v, want %+v", got, want)
	}
}

func TestLoadNonExistent(t *testing.T) {
	// Load from non-existent file should return defaults
	cfg, err := Load("/nonexistent/path/gradebook.toml")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
}

func TestLoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFile)

	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Data:   DataInDir("/abs/seed"),
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", loaded.Server.Port)
	}
	if loaded.Data != cfg.Data {
		t.Errorf("Data = %+v, want %+v", loaded.Data, cfg.Data)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFile)

	content := `[data]
grades = "marks.json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if want := filepath.Join(tmpDir, "marks.json"); cfg.Data.Grades != want {
		t.Errorf("Grades = %q, want %q", cfg.Data.Grades, want)
	}
	if want := filepath.Join(tmpDir, "data", "courses.json"); cfg.Data.Courses != want {
		t.Errorf("Courses = %q, want %q", cfg.Data.Courses, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFile)

	if err := os.WriteFile(path, []byte("[server\nport = "), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hmans/gradebook/internal/config"
	"github.com/hmans/gradebook/internal/store"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "courses.json", `[{"id":1,"name":"Math","description":"Algebra"}]`)
	writeFile(t, dir, "students.json", `[
		{"id":1,"name":"Ada","lastName":"Lovelace","courseId":1},
		{"id":2,"name":"Alan","lastnamme":"Turing","courseId":1}
	]`)
	writeFile(t, dir, "grades.json", `[{"id":1,"courseId":1,"studentId":2,"grade":8.5}]`)

	s, err := Load(config.DataInDir(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := store.Seed{
		Courses: []*store.Course{{ID: 1, Name: "Math", Description: "Algebra"}},
		Students: []*store.Student{
			{ID: 1, Name: "Ada", LastName: "Lovelace", CourseID: 1},
			{ID: 2, Name: "Alan", LastName: "Turing", CourseID: 1},
		},
		Grades: []*store.Grade{{ID: 1, CourseID: 1, StudentID: 2, Grade: 8.5}},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrefersCanonicalLastName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "courses.json", `[]`)
	writeFile(t, dir, "students.json", `[{"id":1,"name":"Ada","lastName":"Lovelace","lastnamme":"Byron","courseId":1}]`)
	writeFile(t, dir, "grades.json", `[]`)

	s, err := Load(config.DataInDir(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := s.Students[0].LastName; got != "Lovelace" {
		t.Errorf("LastName = %q, want \"Lovelace\"", got)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	paths := config.DataConfig{
		Courses: writeFile(t, dir, "courses.yaml", "- id: 1\n  name: Math\n  description: Algebra\n"),
		Students: writeFile(t, dir, "students.yml",
			"- id: 1\n  name: Ada\n  lastnamme: Lovelace\n  courseId: 1\n"),
		Grades: writeFile(t, dir, "grades.yaml", "- id: 1\n  courseId: 1\n  studentId: 1\n  grade: 10\n"),
	}

	s, err := Load(paths)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(s.Courses) != 1 || s.Courses[0].Name != "Math" {
		t.Errorf("Courses = %+v, want one Math course", s.Courses)
	}
	if len(s.Students) != 1 || s.Students[0].LastName != "Lovelace" {
		t.Errorf("Students = %+v, want Ada Lovelace", s.Students)
	}
	if len(s.Grades) != 1 || s.Grades[0].Grade != 10 {
		t.Errorf("Grades = %+v, want one grade of 10", s.Grades)
	}
}

func TestLoadEmptyLists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "courses.json", `[]`)
	writeFile(t, dir, "students.json", `[]`)
	writeFile(t, dir, "grades.json", `[]`)

	s, err := Load(config.DataInDir(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Courses == nil || s.Students == nil || s.Grades == nil {
		t.Errorf("Load() returned nil slices: %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		paths    func(dir string) config.DataConfig
		wantErr  error
		wantText string
	}{
		{
			name: "missing file",
			files: map[string]string{
				"courses.json":  `[]`,
				"students.json": `[]`,
			},
			paths:   config.DataInDir,
			wantErr: os.ErrNotExist,
		},
		{
			name: "malformed json",
			files: map[string]string{
				"courses.json":  `[{"id":1,`,
				"students.json": `[]`,
				"grades.json":   `[]`,
			},
			paths: config.DataInDir,
		},
		{
			name: "object instead of list",
			files: map[string]string{
				"courses.json":  `[]`,
				"students.json": `{"id":1}`,
				"grades.json":   `[]`,
			},
			paths: config.DataInDir,
		},
		{
			name: "trailing data after list",
			files: map[string]string{
				"courses.json":  `[] trailing garbage`,
				"students.json": `[]`,
				"grades.json":   `[]`,
			},
			paths: config.DataInDir,
		},
		{
			name: "null document",
			files: map[string]string{
				"courses.json":  `[]`,
				"students.json": `null`,
				"grades.json":   `[]`,
			},
			paths:   config.DataInDir,
			wantErr: ErrNotAList,
		},
		{
			name: "null record",
			files: map[string]string{
				"courses.json":  `[{"id":1,"name":"Math","description":"Algebra"}]`,
				"students.json": `[]`,
				"grades.json":   `[{"id":1,"courseId":1,"studentId":1,"grade":9}, null]`,
			},
			paths:    config.DataInDir,
			wantErr:  ErrNullRecord,
			wantText: "grades.json: record 1",
		},
		{
			name: "empty yaml document",
			files: map[string]string{
				"courses.json":  `[]`,
				"students.json": `[]`,
				"grades.yaml":   "",
			},
			paths: func(dir string) config.DataConfig {
				p := config.DataInDir(dir)
				p.Grades = filepath.Join(dir, "grades.yaml")
				return p
			},
			wantErr: ErrNotAList,
		},
		{
			name: "unsupported extension",
			files: map[string]string{
				"courses.csv":   "id,name\n",
				"students.json": `[]`,
				"grades.json":   `[]`,
			},
			paths: func(dir string) config.DataConfig {
				p := config.DataInDir(dir)
				p.Courses = filepath.Join(dir, "courses.csv")
				return p
			},
			wantErr: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}

			_, err := Load(tt.paths(dir))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantText != "" && !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("Load() error = %q, want it to mention %q", err, tt.wantText)
			}
		})
	}
}

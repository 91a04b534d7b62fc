package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hmans/gradebook/internal/store"
)

func setupQueryTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()
	testStore := store.NewEmpty()

	// Save and restore the global store
	oldBook := book
	book = testStore

	cleanup := func() {
		book = oldBook
	}

	return testStore, cleanup
}

func seedQueryTestRecords(t *testing.T, s *store.Store) {
	t.Helper()
	s.AddCourse("Mathematics", "Algebra and geometry")
	s.AddCourse("History", "Antiquity to today")
	s.AddStudent("Ada", "Lovelace", 1)
	s.AddStudent("Mary", "Beard", 2)
	s.AddGrade(1, 1, 9.5)
	s.AddGrade(2, 2, 8)
}

func TestExecuteQuery(t *testing.T) {
	testStore, cleanup := setupQueryTestStore(t)
	defer cleanup()
	seedQueryTestRecords(t, testStore)

	t.Run("basic query all courses", func(t *testing.T) {
		result, err := executeQuery(`{ courses { id name } }`, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			Courses []struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"courses"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if len(data.Courses) != 2 {
			t.Errorf("expected 2 courses, got %d", len(data.Courses))
		}
	})

	t.Run("query student with course", func(t *testing.T) {
		result, err := executeQuery(`{ student(id: 2) { name lastName course { name } } }`, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			Student struct {
				Name     string `json:"name"`
				LastName string `json:"lastName"`
				Course   struct {
					Name string `json:"name"`
				} `json:"course"`
			} `json:"student"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if data.Student.LastName != "Beard" {
			t.Errorf("expected lastName 'Beard', got %q", data.Student.LastName)
		}
		if data.Student.Course.Name != "History" {
			t.Errorf("expected course 'History', got %q", data.Student.Course.Name)
		}
	})

	t.Run("query with variables", func(t *testing.T) {
		variables, err := parseVariables(`{"id": 1}`)
		if err != nil {
			t.Fatalf("parseVariables() error = %v", err)
		}

		result, err := executeQuery(`query GetGrade($id: Int) { grade(id: $id) { grade student { name } } }`, variables, "GetGrade")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			Grade struct {
				Grade   float64 `json:"grade"`
				Student struct {
					Name string `json:"name"`
				} `json:"student"`
			} `json:"grade"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if data.Grade.Grade != 9.5 {
			t.Errorf("expected grade 9.5, got %v", data.Grade.Grade)
		}
		if data.Grade.Student.Name != "Ada" {
			t.Errorf("expected student 'Ada', got %q", data.Grade.Student.Name)
		}
	})

	t.Run("operation name selects operation", func(t *testing.T) {
		doc := `
			query Courses { courses { id } }
			query Students { students { id } }`
		result, err := executeQuery(doc, nil, "Students")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}
		if !strings.Contains(string(result), `"students"`) || strings.Contains(string(result), `"courses"`) {
			t.Errorf("unexpected result for operation Students: %s", result)
		}
	})

	t.Run("query nonexistent course returns null", func(t *testing.T) {
		result, err := executeQuery(`{ course(id: 99) { id } }`, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			Course *struct {
				ID int `json:"id"`
			} `json:"course"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if data.Course != nil {
			t.Errorf("expected null course, got %+v", data.Course)
		}
	})

	t.Run("invalid query returns error", func(t *testing.T) {
		_, err := executeQuery(`{ teachers { id } }`, nil, "")
		if err == nil {
			t.Fatal("expected error for invalid query, got nil")
		}
		if !strings.Contains(err.Error(), "graphql") {
			t.Errorf("expected error to contain 'graphql', got %q", err.Error())
		}
	})
}

func TestExecuteMutations(t *testing.T) {
	testStore, cleanup := setupQueryTestStore(t)
	defer cleanup()
	seedQueryTestRecords(t, testStore)

	t.Run("add student", func(t *testing.T) {
		result, err := executeQuery(`mutation { addStudent(name: "Alan", lastName: "Turing", courseId: 1) { id lastnamme } }`, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			AddStudent struct {
				ID        int    `json:"id"`
				Lastnamme string `json:"lastnamme"`
			} `json:"addStudent"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if data.AddStudent.ID != 3 {
			t.Errorf("expected id 3, got %d", data.AddStudent.ID)
		}
		if data.AddStudent.Lastnamme != "Turing" {
			t.Errorf("expected lastnamme 'Turing', got %q", data.AddStudent.Lastnamme)
		}
	})

	t.Run("delete course cascades", func(t *testing.T) {
		result, err := executeQuery(`mutation { delCourse(id: 1) { id } }`, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}

		var data struct {
			DelCourse []struct {
				ID int `json:"id"`
			} `json:"delCourse"`
		}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if len(data.DelCourse) != 1 || data.DelCourse[0].ID != 2 {
			t.Errorf("expected only course 2 to remain, got %+v", data.DelCourse)
		}

		courses, students, grades := testStore.Counts()
		if courses != 1 || students != 1 || grades != 1 {
			t.Errorf("counts after cascade = %d/%d/%d, want 1/1/1", courses, students, grades)
		}
	})
}

func TestParseVariables(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]any
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "number stays json.Number", input: `{"id": 3}`, want: map[string]any{"id": json.Number("3")}},
		{name: "string", input: `{"name": "Ada"}`, want: map[string]any{"name": "Ada"}},
		{name: "invalid", input: `{"id": `, wantErr: true},
		{name: "not an object", input: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVariables(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseVariables(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVariables(%q) error = %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseVariables(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseVariables(%q)[%q] = %#v, want %#v", tt.input, k, got[k], v)
				}
			}
		})
	}
}

func TestFormatGraphQLErrors(t *testing.T) {
	_, cleanup := setupQueryTestStore(t)
	defer cleanup()

	_, err := executeQuery(`{ courses { id title } grades { id mark } }`, nil, "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "graphql errors:") {
		t.Errorf("expected multi-error prefix, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "title") || !strings.Contains(err.Error(), "mark") {
		t.Errorf("expected both unknown fields in error, got %q", err.Error())
	}
}

func TestReadFromStdin(t *testing.T) {
	t.Run("returns without error", func(t *testing.T) {
		result, err := readFromStdin()
		if err != nil {
			t.Fatalf("readFromStdin() error = %v", err)
		}
		// Result will be empty string when stdin is a terminal
		if result != "" {
			t.Logf("readFromStdin() returned %q (may vary by test environment)", result)
		}
	})
}

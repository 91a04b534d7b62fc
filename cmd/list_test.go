package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hmans/gradebook/internal/store"
)

func TestRenderList(t *testing.T) {
	s := store.NewEmpty()
	s.AddCourse("Mathematics", "Algebra and geometry")
	s.AddStudent("Ada", "Lovelace", 1)
	s.AddStudent("Dan", "Gling", 42)
	s.AddGrade(1, 1, 9.5)

	tests := []struct {
		kind     string
		contains []string
	}{
		{"courses", []string{"ID", "NAME", "DESCRIPTION", "Mathematics", "Algebra and geometry"}},
		{"students", []string{"COURSE", "Ada Lovelace", "Mathematics", "42 (missing)"}},
		{"grades", []string{"GRADE", "STUDENT", "9.5", "Ada Lovelace", "Mathematics"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			var buf bytes.Buffer
			if err := renderList(&buf, s, tt.kind, false); err != nil {
				t.Fatalf("renderList() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRenderListEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := renderList(&buf, store.NewEmpty(), "grades", false); err != nil {
		t.Fatalf("renderList() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No grades found.") {
		t.Errorf("output = %q, want empty notice", buf.String())
	}
}

func TestRenderListJSON(t *testing.T) {
	s := store.NewEmpty()
	s.AddStudent("Ada", "Lovelace", 1)

	var buf bytes.Buffer
	if err := renderList(&buf, s, "students", true); err != nil {
		t.Fatalf("renderList() error = %v", err)
	}

	var got []store.Student
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 1 || got[0].LastName != "Lovelace" || got[0].CourseID != 1 {
		t.Errorf("renderList() = %+v", got)
	}

	// An empty store encodes as an empty list, not null.
	buf.Reset()
	if err := renderList(&buf, store.NewEmpty(), "courses", true); err != nil {
		t.Fatalf("renderList() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty courses JSON = %q, want []", buf.String())
	}
}

func TestRenderListUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	if err := renderList(&buf, store.NewEmpty(), "teachers", false); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

package ui

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	tbl := &Table{Columns: []Column{{Title: "ID"}, {Title: "NAME"}, {Title: "DESCRIPTION", MaxWidth: 10}}}
	tbl.AddRow("1", "Math", "Algebra")
	tbl.AddRow("2", "Art", "Painting and drawing")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}

	for _, want := range []string{"ID", "NAME", "DESCRIPTION"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "─") {
		t.Errorf("divider line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Math") || !strings.Contains(lines[2], "Algebra") {
		t.Errorf("row 1 = %q", lines[2])
	}
	if !strings.Contains(lines[3], "Paintin...") {
		t.Errorf("row 2 not truncated: %q", lines[3])
	}
	if strings.Contains(lines[3], "drawing") {
		t.Errorf("row 2 contains truncated text: %q", lines[3])
	}
}

func TestTableShortRows(t *testing.T) {
	tbl := &Table{Columns: []Column{{Title: "A"}, {Title: "B"}}}
	tbl.AddRow("only")

	out := tbl.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("Render() = %q, want row content", out)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcdef", 6, "abcdef"},
		{"long", "abcdefghij", 6, "abc..."},
		{"tiny limit", "abcdef", 2, "ab"},
		{"multibyte", "ÄÖÜäöüß", 5, "ÄÖ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestRenderReference(t *testing.T) {
	if got := RenderReference(7, "Math", false); !strings.Contains(got, "missing") {
		t.Errorf("RenderReference(missing) = %q", got)
	}
	if got := RenderReference(1, "Math", true); !strings.Contains(got, "Math") {
		t.Errorf("RenderReference(found) = %q", got)
	}
}

func TestRenderGrade(t *testing.T) {
	if got := RenderGrade(9.5); !strings.Contains(got, "9.5") {
		t.Errorf("RenderGrade(9.5) = %q", got)
	}
	if got := RenderGrade(10); !strings.Contains(got, "10") || strings.Contains(got, ".") {
		t.Errorf("RenderGrade(10) = %q", got)
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/hmans/gradebook/internal/store"
	"github.com/hmans/gradebook/internal/ui"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:       "list <courses|students|grades>",
	Aliases:   []string{"ls"},
	Short:     "List the loaded records",
	Long:      `Lists all courses, students or grades as loaded from the seed files.`,
	ValidArgs: []string{"courses", "students", "grades"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderList(os.Stdout, book, args[0], listJSON)
	},
}

func renderList(w io.Writer, s *store.Store, kind string, asJSON bool) error {
	var records any
	switch kind {
	case "courses":
		records = s.Courses()
	case "students":
		records = s.Students()
	case "grades":
		records = s.Grades()
	default:
		return fmt.Errorf("unknown record kind %q", kind)
	}

	if asJSON {
		data, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", kind, err)
		}
		_, err = w.Write(pretty.Pretty(data))
		return err
	}

	var tbl *ui.Table
	switch kind {
	case "courses":
		tbl = courseTable(s.Courses())
	case "students":
		tbl = studentTable(s, s.Students())
	case "grades":
		tbl = gradeTable(s, s.Grades())
	}

	if len(tbl.Rows) == 0 {
		_, err := fmt.Fprintln(w, ui.Muted.Render("No "+kind+" found."))
		return err
	}

	_, err := fmt.Fprint(w, tbl.Render())
	return err
}

func courseTable(courses []*store.Course) *ui.Table {
	tbl := &ui.Table{Columns: []ui.Column{
		{Title: "ID"},
		{Title: "NAME", MaxWidth: 30},
		{Title: "DESCRIPTION", MaxWidth: 50},
	}}
	for _, c := range courses {
		tbl.AddRow(ui.RenderID(c.ID), c.Name, c.Description)
	}
	return tbl
}

func studentTable(s *store.Store, students []*store.Student) *ui.Table {
	tbl := &ui.Table{Columns: []ui.Column{
		{Title: "ID"},
		{Title: "NAME", MaxWidth: 40},
		{Title: "COURSE"},
	}}
	for _, st := range students {
		tbl.AddRow(ui.RenderID(st.ID), st.Name+" "+st.LastName, courseRef(s, st.CourseID))
	}
	return tbl
}

func gradeTable(s *store.Store, grades []*store.Grade) *ui.Table {
	tbl := &ui.Table{Columns: []ui.Column{
		{Title: "ID"},
		{Title: "GRADE"},
		{Title: "STUDENT"},
		{Title: "COURSE"},
	}}
	for _, g := range grades {
		tbl.AddRow(ui.RenderID(g.ID), ui.RenderGrade(g.Grade), studentRef(s, g.StudentID), courseRef(s, g.CourseID))
	}
	return tbl
}

func courseRef(s *store.Store, id int) string {
	c := s.Course(id)
	if c == nil {
		return ui.RenderReference(id, "", false)
	}
	return ui.RenderReference(id, c.Name, true)
}

func studentRef(s *store.Store, id int) string {
	st := s.Student(id)
	if st == nil {
		return ui.RenderReference(id, "", false)
	}
	return ui.RenderReference(id, st.Name+" "+st.LastName, true)
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}

package graph

import (
	"context"
	"testing"

	"github.com/hmans/gradebook/internal/store"
)

func intPtr(i int) *int { return &i }

func setupTestResolver(t *testing.T) (*Resolver, *store.Store) {
	t.Helper()
	s := store.NewEmpty()
	return NewResolver(s), s
}

func TestQueryCourse(t *testing.T) {
	resolver, s := setupTestResolver(t)
	ctx := context.Background()

	s.AddCourse("Math", "Algebra")

	t.Run("found", func(t *testing.T) {
		got, err := resolver.Query().Course(ctx, intPtr(1))
		if err != nil {
			t.Fatalf("Course() error = %v", err)
		}
		if got == nil {
			t.Fatal("Course() returned nil")
		}
		if got.Name != "Math" {
			t.Errorf("Course().Name = %q, want %q", got.Name, "Math")
		}
	})

	t.Run("not found", func(t *testing.T) {
		got, err := resolver.Query().Course(ctx, intPtr(2))
		if err != nil {
			t.Fatalf("Course() error = %v", err)
		}
		if got != nil {
			t.Errorf("Course() = %v, want nil", got)
		}
	})

	t.Run("no id", func(t *testing.T) {
		got, err := resolver.Query().Course(ctx, nil)
		if err != nil {
			t.Fatalf("Course() error = %v", err)
		}
		if got != nil {
			t.Errorf("Course() = %v, want nil", got)
		}
	})
}

func TestQueryStudentAndGradeWithoutID(t *testing.T) {
	resolver, s := setupTestResolver(t)
	ctx := context.Background()

	s.AddStudent("Ada", "Lovelace", 1)
	s.AddGrade(1, 1, 9)

	st, err := resolver.Query().Student(ctx, nil)
	if err != nil || st != nil {
		t.Errorf("Student(nil) = %v, %v, want nil, nil", st, err)
	}
	g, err := resolver.Query().Grade(ctx, nil)
	if err != nil || g != nil {
		t.Errorf("Grade(nil) = %v, %v, want nil, nil", g, err)
	}
}

func TestQueryLists(t *testing.T) {
	resolver, s := setupTestResolver(t)
	ctx := context.Background()

	s.AddCourse("Math", "Algebra")
	s.AddCourse("Art", "Painting")
	s.AddStudent("Ada", "Lovelace", 1)
	s.AddGrade(1, 1, 9)

	courses, err := resolver.Query().Courses(ctx)
	if err != nil {
		t.Fatalf("Courses() error = %v", err)
	}
	if len(courses) != 2 || courses[0].Name != "Math" || courses[1].Name != "Art" {
		t.Errorf("Courses() = %v, want [Math Art]", courses)
	}

	students, err := resolver.Query().Students(ctx)
	if err != nil {
		t.Fatalf("Students() error = %v", err)
	}
	if len(students) != 1 {
		t.Errorf("Students() count = %d, want 1", len(students))
	}

	grades, err := resolver.Query().Grades(ctx)
	if err != nil {
		t.Fatalf("Grades() error = %v", err)
	}
	if len(grades) != 1 {
		t.Errorf("Grades() count = %d, want 1", len(grades))
	}
}

func TestReferenceResolvers(t *testing.T) {
	resolver, s := setupTestResolver(t)
	ctx := context.Background()

	course := s.AddCourse("Math", "Algebra")
	student := s.AddStudent("Ada", "Lovelace", course.ID)
	grade := s.AddGrade(course.ID, student.ID, 9.5)
	dangling := s.AddGrade(42, 43, 1)

	t.Run("student course", func(t *testing.T) {
		got, err := resolver.Student().Course(ctx, student)
		if err != nil {
			t.Fatalf("Course() error = %v", err)
		}
		if got != course {
			t.Errorf("Course() = %v, want %v", got, course)
		}
	})

	t.Run("grade course and student", func(t *testing.T) {
		c, err := resolver.Grade().Course(ctx, grade)
		if err != nil {
			t.Fatalf("Course() error = %v", err)
		}
		if c != course {
			t.Errorf("Course() = %v, want %v", c, course)
		}
		st, err := resolver.Grade().Student(ctx, grade)
		if err != nil {
			t.Fatalf("Student() error = %v", err)
		}
		if st != student {
			t.Errorf("Student() = %v, want %v", st, student)
		}
	})

	t.Run("dangling references resolve to nil", func(t *testing.T) {
		c, err := resolver.Grade().Course(ctx, dangling)
		if err != nil {
			t.Fatalf("Course() error = %v", err)
		}
		if c != nil {
			t.Errorf("Course() = %v, want nil", c)
		}
		st, err := resolver.Grade().Student(ctx, dangling)
		if err != nil {
			t.Fatalf("Student() error = %v", err)
		}
		if st != nil {
			t.Errorf("Student() = %v, want nil", st)
		}
	})
}

func TestMutationAdd(t *testing.T) {
	resolver, s := setupTestResolver(t)
	ctx := context.Background()
	mr := resolver.Mutation()

	c, err := mr.AddCourse(ctx, "Math", "Algebra")
	if err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}
	if c.ID != 1 {
		t.Errorf("AddCourse().ID = %d, want 1", c.ID)
	}

	st, err := mr.AddStudent(ctx, "Ada", "Lovelace", c.ID)
	if err != nil {
		t.Fatalf("AddStudent() error = %v", err)
	}
	if st.ID != 1 || st.LastName != "Lovelace" || st.CourseID != 1 {
		t.Errorf("AddStudent() = %+v, want id 1, Lovelace, course 1", st)
	}

	g, err := mr.AddGrade(ctx, c.ID, st.ID, 7.25)
	if err != nil {
		t.Fatalf("AddGrade() error = %v", err)
	}
	if g.ID != 1 || g.Grade != 7.25 {
		t.Errorf("AddGrade() = %+v, want id 1, grade 7.25", g)
	}

	if s.Grade(g.ID) != g {
		t.Error("added grade not retrievable by id")
	}
}

func TestMutationDelete(t *testing.T) {
	resolver, s := setupTestResolver(t)
	ctx := context.Background()
	mr := resolver.Mutation()

	s.AddCourse("Math", "Algebra")
	s.AddCourse("Art", "Painting")
	s.AddStudent("Ada", "Lovelace", 1)
	s.AddStudent("Bob", "Ross", 2)
	s.AddGrade(1, 1, 9)
	s.AddGrade(2, 2, 8)
	s.AddGrade(2, 1, 7)

	t.Run("delete grade", func(t *testing.T) {
		got, err := mr.DelGrade(ctx, intPtr(3))
		if err != nil {
			t.Fatalf("DelGrade() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("DelGrade() count = %d, want 2", len(got))
		}
	})

	t.Run("delete student cascades to grades", func(t *testing.T) {
		got, err := mr.DelStudent(ctx, intPtr(2))
		if err != nil {
			t.Fatalf("DelStudent() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != 1 {
			t.Errorf("DelStudent() = %v, want only student 1", got)
		}
		for _, g := range s.Grades() {
			if g.StudentID == 2 {
				t.Errorf("grade %d for deleted student still present", g.ID)
			}
		}
	})

	t.Run("delete without id is a no-op", func(t *testing.T) {
		got, err := mr.DelCourse(ctx, nil)
		if err != nil {
			t.Fatalf("DelCourse() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("DelCourse() count = %d, want 2", len(got))
		}
	})

	t.Run("delete course cascades", func(t *testing.T) {
		got, err := mr.DelCourse(ctx, intPtr(1))
		if err != nil {
			t.Fatalf("DelCourse() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Art" {
			t.Errorf("DelCourse() = %v, want only Art", got)
		}
		if n := len(s.Students()); n != 0 {
			t.Errorf("students remaining = %d, want 0", n)
		}
		if n := len(s.Grades()); n != 0 {
			t.Errorf("grades remaining = %d, want 0", n)
		}
	})
}

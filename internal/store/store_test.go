package store

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(i int) *int { return &i }

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	return New(Seed{
		Courses: []*Course{
			{ID: 1, Name: "Math", Description: "Algebra"},
			{ID: 2, Name: "History", Description: "Rome"},
		},
		Students: []*Student{
			{ID: 1, Name: "Ada", LastName: "Lovelace", CourseID: 1},
			{ID: 2, Name: "Alan", LastName: "Turing", CourseID: 2},
			{ID: 3, Name: "Grace", LastName: "Hopper", CourseID: 1},
		},
		Grades: []*Grade{
			{ID: 1, CourseID: 1, StudentID: 1, Grade: 9.5},
			{ID: 2, CourseID: 2, StudentID: 2, Grade: 7},
			{ID: 3, CourseID: 1, StudentID: 3, Grade: 8},
			{ID: 4, CourseID: 2, StudentID: 1, Grade: 6.5},
		},
	})
}

func courseIDs(cs []*Course) []int {
	ids := make([]int, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

func studentIDs(ss []*Student) []int {
	ids := make([]int, len(ss))
	for i, s := range ss {
		ids[i] = s.ID
	}
	return ids
}

func gradeIDs(gs []*Grade) []int {
	ids := make([]int, len(gs))
	for i, g := range gs {
		ids[i] = g.ID
	}
	return ids
}

func TestNewEmpty(t *testing.T) {
	s := NewEmpty()
	c, st, g := s.Counts()
	if c != 0 || st != 0 || g != 0 {
		t.Errorf("Counts() = %d, %d, %d, want all zero", c, st, g)
	}
	if got := s.Courses(); len(got) != 0 {
		t.Errorf("Courses() = %v, want empty", got)
	}
}

func TestAddAssignsSizePlusOne(t *testing.T) {
	s := NewEmpty()

	c := s.AddCourse("Math", "Algebra")
	if c.ID != 1 {
		t.Errorf("AddCourse().ID = %d, want 1", c.ID)
	}
	st := s.AddStudent("Ada", "Lovelace", 1)
	if st.ID != 1 {
		t.Errorf("AddStudent().ID = %d, want 1", st.ID)
	}
	g1 := s.AddGrade(1, 1, 9.5)
	g2 := s.AddGrade(1, 1, 8)
	if g1.ID != 1 || g2.ID != 2 {
		t.Errorf("AddGrade() ids = %d, %d, want 1, 2", g1.ID, g2.ID)
	}

	if got := s.Course(c.ID); got != c {
		t.Errorf("Course(%d) = %v, want %v", c.ID, got, c)
	}
	if got := s.Student(st.ID); got != st {
		t.Errorf("Student(%d) = %v, want %v", st.ID, got, st)
	}
	if got := s.Grade(g2.ID); got != g2 {
		t.Errorf("Grade(%d) = %v, want %v", g2.ID, got, g2)
	}
}

func TestAddDoesNotCheckReferences(t *testing.T) {
	s := NewEmpty()

	st := s.AddStudent("Dan", "Gling", 99)
	if st.CourseID != 99 {
		t.Errorf("CourseID = %d, want 99", st.CourseID)
	}
	g := s.AddGrade(42, 43, 1.5)
	want := &Grade{ID: 1, CourseID: 42, StudentID: 43, Grade: 1.5}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("AddGrade() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupMissing(t *testing.T) {
	s := setupTestStore(t)

	if got := s.Course(99); got != nil {
		t.Errorf("Course(99) = %v, want nil", got)
	}
	if got := s.Student(0); got != nil {
		t.Errorf("Student(0) = %v, want nil", got)
	}
	if got := s.Grade(-1); got != nil {
		t.Errorf("Grade(-1) = %v, want nil", got)
	}
}

func TestListIsSnapshot(t *testing.T) {
	s := setupTestStore(t)

	before := s.Courses()
	s.AddCourse("Art", "Painting")
	if len(before) != 2 {
		t.Errorf("snapshot length changed to %d, want 2", len(before))
	}
	if got := len(s.Courses()); got != 3 {
		t.Errorf("len(Courses()) = %d, want 3", got)
	}
}

func TestDeleteCourseCascades(t *testing.T) {
	s := setupTestStore(t)

	remaining := s.DeleteCourse(intPtr(1))

	if diff := cmp.Diff([]int{2}, courseIDs(remaining)); diff != "" {
		t.Errorf("remaining courses mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, studentIDs(s.Students())); diff != "" {
		t.Errorf("students mismatch (-want +got):\n%s", diff)
	}
	// Grade 4 belongs to course 2 even though its student was enrolled in course 1.
	if diff := cmp.Diff([]int{2, 4}, gradeIDs(s.Grades())); diff != "" {
		t.Errorf("grades mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	s := setupTestStore(t)

	remaining := s.DeleteStudent(intPtr(1))

	if diff := cmp.Diff([]int{2, 3}, studentIDs(remaining)); diff != "" {
		t.Errorf("remaining students mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, gradeIDs(s.Grades())); diff != "" {
		t.Errorf("grades mismatch (-want +got):\n%s", diff)
	}
	if got := len(s.Courses()); got != 2 {
		t.Errorf("len(Courses()) = %d, want 2", got)
	}
}

func TestDeleteGradeDoesNotCascade(t *testing.T) {
	s := setupTestStore(t)

	remaining := s.DeleteGrade(intPtr(3))

	if diff := cmp.Diff([]int{1, 2, 4}, gradeIDs(remaining)); diff != "" {
		t.Errorf("remaining grades mismatch (-want +got):\n%s", diff)
	}
	c, st, _ := s.Counts()
	if c != 2 || st != 3 {
		t.Errorf("Counts() = %d courses, %d students, want 2, 3", c, st)
	}
}

func TestDeleteNilIDIsNoop(t *testing.T) {
	s := setupTestStore(t)

	if got := s.DeleteCourse(nil); len(got) != 2 {
		t.Errorf("DeleteCourse(nil) returned %d courses, want 2", len(got))
	}
	if got := s.DeleteStudent(nil); len(got) != 3 {
		t.Errorf("DeleteStudent(nil) returned %d students, want 3", len(got))
	}
	if got := s.DeleteGrade(nil); len(got) != 4 {
		t.Errorf("DeleteGrade(nil) returned %d grades, want 4", len(got))
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	s := setupTestStore(t)

	if got := s.DeleteCourse(intPtr(99)); len(got) != 2 {
		t.Errorf("DeleteCourse(99) returned %d courses, want 2", len(got))
	}
	_, st, g := s.Counts()
	if st != 3 || g != 4 {
		t.Errorf("Counts() = %d students, %d grades, want 3, 4", st, g)
	}
}

func TestIDReuseAfterDelete(t *testing.T) {
	s := NewEmpty()
	s.AddCourse("A", "a")
	s.AddCourse("B", "b")
	original := s.AddCourse("C", "c")

	s.DeleteCourse(intPtr(2))
	added := s.AddCourse("X", "Y")

	if added.ID != 3 {
		t.Fatalf("AddCourse().ID = %d, want 3", added.ID)
	}
	if diff := cmp.Diff([]int{1, 3, 3}, courseIDs(s.Courses())); diff != "" {
		t.Errorf("course ids mismatch (-want +got):\n%s", diff)
	}
	// Lookup returns the first match, which is the older course.
	if got := s.Course(3); got != original {
		t.Errorf("Course(3) = %v, want the original %v", got, original)
	}

	// Deleting the shared id removes both.
	if got := s.DeleteCourse(intPtr(3)); len(got) != 1 {
		t.Errorf("DeleteCourse(3) left %d courses, want 1", len(got))
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := setupTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := s.AddCourse("C", "c")
			s.AddStudent("S", "s", c.ID)
		}()
		go func() {
			defer wg.Done()
			for _, st := range s.Students() {
				_ = s.Course(st.CourseID)
			}
		}()
	}
	wg.Wait()

	c, st, _ := s.Counts()
	if c != 22 || st != 23 {
		t.Errorf("Counts() = %d courses, %d students, want 22, 23", c, st)
	}
}

func TestCascadeIsAtomic(t *testing.T) {
	s := NewEmpty()
	for i := 0; i < 50; i++ {
		c := s.AddCourse("C", "c")
		s.AddStudent("S", "s", c.ID)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for id := 1; id <= 50; id++ {
			s.DeleteCourse(intPtr(id))
		}
	}()

	// Every student seen by a reader must still have its course: courses and their
	// students disappear together.
	for {
		select {
		case <-done:
			return
		default:
		}
		s.mu.RLock()
		for _, st := range s.students.items {
			if s.courses.find(func(c *Course) bool { return c.ID == st.CourseID }) == nil {
				s.mu.RUnlock()
				t.Fatalf("student %d visible without course %d", st.ID, st.CourseID)
			}
		}
		s.mu.RUnlock()
	}
}

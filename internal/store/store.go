// Package store provides a thread-safe in-memory store for courses, students and grades.
// Records live for the lifetime of the process; nothing is written back to disk.
package store

import (
	"sync"
)

// Course is a course students can enrol in.
type Course struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Student belongs to a course. CourseID is not checked against existing courses.
type Student struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	LastName string `json:"lastName" yaml:"lastName"`
	CourseID int    `json:"courseId" yaml:"courseId"`
}

// Grade is a student's mark in a course.
type Grade struct {
	ID        int     `json:"id" yaml:"id"`
	CourseID  int     `json:"courseId" yaml:"courseId"`
	StudentID int     `json:"studentId" yaml:"studentId"`
	Grade     float64 `json:"grade" yaml:"grade"`
}

// Seed holds the initial contents of a Store.
type Seed struct {
	Courses  []*Course
	Students []*Student
	Grades   []*Grade
}

// Store holds the three record sequences. All mutations take the write lock for
// their full duration, so a cascade is never observed half-applied.
type Store struct {
	mu       sync.RWMutex
	courses  seq[Course]
	students seq[Student]
	grades   seq[Grade]
}

// New creates a Store holding the seed records in order.
func New(seed Seed) *Store {
	s := &Store{}
	for _, c := range seed.Courses {
		s.courses.push(c)
	}
	for _, st := range seed.Students {
		s.students.push(st)
	}
	for _, g := range seed.Grades {
		s.grades.push(g)
	}
	return s
}

// NewEmpty creates a Store with no records.
func NewEmpty() *Store {
	return New(Seed{})
}

// Counts returns the number of courses, students and grades.
func (s *Store) Counts() (courses, students, grades int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.courses.len(), s.students.len(), s.grades.len()
}

// Courses returns all courses in insertion order.
func (s *Store) Courses() []*Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.courses.all()
}

// Students returns all students in insertion order.
func (s *Store) Students() []*Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.students.all()
}

// Grades returns all grades in insertion order.
func (s *Store) Grades() []*Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.grades.all()
}

// Course returns the first course with the given id, or nil.
func (s *Store) Course(id int) *Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.courses.find(func(c *Course) bool { return c.ID == id })
}

// Student returns the first student with the given id, or nil.
func (s *Store) Student(id int) *Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.students.find(func(st *Student) bool { return st.ID == id })
}

// Grade returns the first grade with the given id, or nil.
func (s *Store) Grade(id int) *Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.grades.find(func(g *Grade) bool { return g.ID == id })
}

// AddCourse appends a course. Its id is the number of courses before the append plus one,
// which can repeat an id still held by another course after a non-tail delete.
func (s *Store) AddCourse(name, description string) *Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.courses.push(&Course{
		ID:          s.courses.len() + 1,
		Name:        name,
		Description: description,
	})
}

// AddStudent appends a student. The course id is stored as given.
func (s *Store) AddStudent(name, lastName string, courseID int) *Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.students.push(&Student{
		ID:       s.students.len() + 1,
		Name:     name,
		LastName: lastName,
		CourseID: courseID,
	})
}

// AddGrade appends a grade. Neither referenced id is checked.
func (s *Store) AddGrade(courseID, studentID int, grade float64) *Grade {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grades.push(&Grade{
		ID:        s.grades.len() + 1,
		CourseID:  courseID,
		StudentID: studentID,
		Grade:     grade,
	})
}

// DeleteCourse removes every course with the given id together with the students
// and grades that reference it, and returns the remaining courses.
// A nil id matches nothing.
func (s *Store) DeleteCourse(id *int) []*Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != nil {
		s.courses.removeWhere(func(c *Course) bool { return c.ID == *id })
		s.students.removeWhere(func(st *Student) bool { return st.CourseID == *id })
		s.grades.removeWhere(func(g *Grade) bool { return g.CourseID == *id })
	}
	return s.courses.all()
}

// DeleteStudent removes every student with the given id and their grades,
// and returns the remaining students.
func (s *Store) DeleteStudent(id *int) []*Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != nil {
		s.students.removeWhere(func(st *Student) bool { return st.ID == *id })
		s.grades.removeWhere(func(g *Grade) bool { return g.StudentID == *id })
	}
	return s.students.all()
}

// DeleteGrade removes every grade with the given id and returns the remaining grades.
func (s *Store) DeleteGrade(id *int) []*Grade {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != nil {
		s.grades.removeWhere(func(g *Grade) bool { return g.ID == *id })
	}
	return s.grades.all()
}

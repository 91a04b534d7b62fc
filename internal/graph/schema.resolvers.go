package graph

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.84

import (
	"context"

	"github.com/hmans/gradebook/internal/ctxlog"
	"github.com/hmans/gradebook/internal/store"
)

// Course is the resolver for the course field.
func (r *gradeResolver) Course(ctx context.Context, obj *store.Grade) (*store.Course, error) {
	return r.Store.Course(obj.CourseID), nil
}

// Student is the resolver for the student field.
func (r *gradeResolver) Student(ctx context.Context, obj *store.Grade) (*store.Student, error) {
	return r.Store.Student(obj.StudentID), nil
}

// AddCourse is the resolver for the addCourse field.
func (r *mutationResolver) AddCourse(ctx context.Context, name string, description string) (*store.Course, error) {
	c := r.Store.AddCourse(name, description)
	ctxlog.FromContext(ctx).Debug("course added", "id", c.ID)
	return c, nil
}

// AddStudent is the resolver for the addStudent field.
func (r *mutationResolver) AddStudent(ctx context.Context, name string, lastName string, courseID int) (*store.Student, error) {
	s := r.Store.AddStudent(name, lastName, courseID)
	ctxlog.FromContext(ctx).Debug("student added", "id", s.ID, "courseId", courseID)
	return s, nil
}

// AddGrade is the resolver for the addGrade field.
func (r *mutationResolver) AddGrade(ctx context.Context, courseID int, studentID int, grade float64) (*store.Grade, error) {
	g := r.Store.AddGrade(courseID, studentID, grade)
	ctxlog.FromContext(ctx).Debug("grade added", "id", g.ID, "courseId", courseID, "studentId", studentID)
	return g, nil
}

// DelCourse is the resolver for the delCourse field.
func (r *mutationResolver) DelCourse(ctx context.Context, id *int) ([]*store.Course, error) {
	remaining := r.Store.DeleteCourse(id)
	ctxlog.FromContext(ctx).Debug("course deleted", "id", optionalID(id), "remaining", len(remaining))
	return remaining, nil
}

// DelStudent is the resolver for the delStudent field.
func (r *mutationResolver) DelStudent(ctx context.Context, id *int) ([]*store.Student, error) {
	remaining := r.Store.DeleteStudent(id)
	ctxlog.FromContext(ctx).Debug("student deleted", "id", optionalID(id), "remaining", len(remaining))
	return remaining, nil
}

// DelGrade is the resolver for the delGrade field.
func (r *mutationResolver) DelGrade(ctx context.Context, id *int) ([]*store.Grade, error) {
	remaining := r.Store.DeleteGrade(id)
	ctxlog.FromContext(ctx).Debug("grade deleted", "id", optionalID(id), "remaining", len(remaining))
	return remaining, nil
}

// Courses is the resolver for the courses field.
func (r *queryResolver) Courses(ctx context.Context) ([]*store.Course, error) {
	return r.Store.Courses(), nil
}

// Students is the resolver for the students field.
func (r *queryResolver) Students(ctx context.Context) ([]*store.Student, error) {
	return r.Store.Students(), nil
}

// Grades is the resolver for the grades field.
func (r *queryResolver) Grades(ctx context.Context) ([]*store.Grade, error) {
	return r.Store.Grades(), nil
}

// Course is the resolver for the course field.
func (r *queryResolver) Course(ctx context.Context, id *int) (*store.Course, error) {
	if id == nil {
		return nil, nil
	}
	return r.Store.Course(*id), nil
}

// Student is the resolver for the student field.
func (r *queryResolver) Student(ctx context.Context, id *int) (*store.Student, error) {
	if id == nil {
		return nil, nil
	}
	return r.Store.Student(*id), nil
}

// Grade is the resolver for the grade field.
func (r *queryResolver) Grade(ctx context.Context, id *int) (*store.Grade, error) {
	if id == nil {
		return nil, nil
	}
	return r.Store.Grade(*id), nil
}

// Course is the resolver for the course field.
func (r *studentResolver) Course(ctx context.Context, obj *store.Student) (*store.Course, error) {
	return r.Store.Course(obj.CourseID), nil
}

// Grade returns GradeResolver implementation.
func (r *Resolver) Grade() GradeResolver { return &gradeResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Student returns StudentResolver implementation.
func (r *Resolver) Student() StudentResolver { return &studentResolver{r} }

type gradeResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type studentResolver struct{ *Resolver }

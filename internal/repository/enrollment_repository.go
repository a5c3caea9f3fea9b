package repository

import (
	"kampus_backend/internal/model"
	"kampus_backend/pkg/docstore"
)

// EnrollmentRepository enrollments 集合的数据访问
type EnrollmentRepository struct {
	Store docstore.Store
}

func NewEnrollmentRepository(store docstore.Store) *EnrollmentRepository {
	return &EnrollmentRepository{Store: store}
}

func (r *EnrollmentRepository) ListByStudent(studentID string) ([]docstore.Document, error) {
	return r.Store.Query(model.CollectionEnrollments, map[string]any{"student_id": studentID})
}

func (r *EnrollmentRepository) ListByCourse(courseID string) ([]docstore.Document, error) {
	return r.Store.Query(model.CollectionEnrollments, map[string]any{"course_id": courseID})
}

func (r *EnrollmentRepository) Exists(studentID, courseID string) (bool, error) {
	docs, err := r.Store.Query(model.CollectionEnrollments, map[string]any{
		"student_id": studentID,
		"course_id":  courseID,
	})
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func (r *EnrollmentRepository) Create(studentID, courseID string, progress int) (string, error) {
	enrollment := model.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Progress:  progress,
		Status:    model.EnrollmentStatusActive,
	}
	doc, err := model.ToDocument(enrollment)
	if err != nil {
		return "", err
	}
	return r.Store.Create(model.CollectionEnrollments, doc)
}

func (r *EnrollmentRepository) Delete(enrollmentID string) error {
	return r.Store.Delete(model.CollectionEnrollments, enrollmentID)
}

package service

import (
	"kampus_backend/internal/repository"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"
)

type EnrollmentService struct {
	repo *repository.EnrollmentRepository
}

func NewEnrollmentService(repo *repository.EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{repo: repo}
}

func (s *EnrollmentService) ListByStudent(studentID string) ([]docstore.Document, error) {
	return s.repo.ListByStudent(studentID)
}

func (s *EnrollmentService) ListByCourse(courseID string) ([]docstore.Document, error) {
	return s.repo.ListByCourse(courseID)
}

// Enroll (student, course) 已有选课记录时返回冲突，否则新建active记录
func (s *EnrollmentService) Enroll(studentID, courseID string, progress int) (string, error) {
	if studentID == "" {
		return "", util.RequiredField("student_id")
	}
	if courseID == "" {
		return "", util.RequiredField("course_id")
	}

	exists, err := s.repo.Exists(studentID, courseID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", util.ErrAlreadyEnrolled
	}
	return s.repo.Create(studentID, courseID, progress)
}

func (s *EnrollmentService) Unenroll(enrollmentID string) error {
	if enrollmentID == "" {
		return util.RequiredField("enrollment_id")
	}
	return s.repo.Delete(enrollmentID)
}

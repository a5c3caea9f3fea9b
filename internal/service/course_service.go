package service

import (
	"kampus_backend/internal/repository"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"
)

type CourseService struct {
	repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) ListCourses(teacherID string) ([]docstore.Document, error) {
	return s.repo.List(teacherID)
}

func (s *CourseService) GetCourse(courseID string) (docstore.Document, error) {
	course, err := s.repo.Get(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

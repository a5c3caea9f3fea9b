package service

import (
	"kampus_backend/internal/repository"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"
)

type AssignmentService struct {
	repo *repository.AssignmentRepository
}

func NewAssignmentService(repo *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{repo: repo}
}

func (s *AssignmentService) ListAssignments(courseID string) ([]docstore.Document, error) {
	return s.repo.List(courseID)
}

func (s *AssignmentService) GetAssignment(assignmentID string) (docstore.Document, error) {
	assignment, err := s.repo.Get(assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, util.ErrAssignmentNotFound
	}
	return assignment, nil
}

func (s *AssignmentService) CreateAssignment(fields docstore.Document) (string, error) {
	for _, field := range []string{"course_id", "title", "description"} {
		if !fields.Has(field) {
			return "", util.RequiredField(field)
		}
	}
	return s.repo.Create(fields)
}

func (s *AssignmentService) UpdateAssignment(assignmentID string, updates docstore.Document) error {
	assignment, err := s.repo.Get(assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return util.ErrAssignmentNotFound
	}

	payload := updates.Clone()
	delete(payload, "id")
	return s.repo.Update(assignmentID, payload)
}

func (s *AssignmentService) DeleteAssignment(assignmentID string) error {
	assignment, err := s.repo.Get(assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return util.ErrAssignmentNotFound
	}
	return s.repo.Delete(assignmentID)
}

package service

import (
	"kampus_backend/internal/repository"
	"kampus_backend/pkg/docstore"
)

type ModuleService struct {
	repo *repository.ModuleRepository
}

func NewModuleService(repo *repository.ModuleRepository) *ModuleService {
	return &ModuleService{repo: repo}
}

func (s *ModuleService) ListModules(courseID string) ([]docstore.Document, error) {
	return s.repo.ListByCourse(courseID)
}

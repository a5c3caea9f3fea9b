package service

import (
	"kampus_backend/internal/model"
	"kampus_backend/internal/repository"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListUsers(role string) ([]docstore.Document, error) {
	return s.repo.List(role)
}

func (s *UserService) GetUser(userID string) (docstore.Document, error) {
	user, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateUser(userID string, updates docstore.Document) error {
	user, err := s.repo.Get(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return util.ErrUserNotFound
	}

	payload := updates.Clone()
	delete(payload, "id")
	return s.repo.Update(userID, payload)
}

func (s *UserService) DeleteUser(userID string) error {
	user, err := s.repo.Get(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return util.ErrUserNotFound
	}
	return s.repo.Delete(userID)
}

// GetUserStats 按角色统计用户数，未知角色按student计
func (s *UserService) GetUserStats() (*model.UserStats, error) {
	users, err := s.repo.List("")
	if err != nil {
		return nil, err
	}

	stats := &model.UserStats{Total: len(users)}
	for _, user := range users {
		role := user.String("role")
		if role == "" {
			role = model.RoleStudent
		}
		switch role {
		case model.RoleStudent:
			stats.Students++
		case model.RoleTeacher:
			stats.Teachers++
		case model.RoleAdmin:
			stats.Admins++
		}
	}
	return stats, nil
}

package repository

import (
	"errors"

	"kampus_backend/internal/model"
	"kampus_backend/pkg/docstore"
)

// UserRepository users 集合的数据访问
type UserRepository struct {
	Store docstore.Store
}

func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{Store: store}
}

// List role 为空时返回全部用户
func (r *UserRepository) List(role string) ([]docstore.Document, error) {
	filter := map[string]any{}
	if role != "" {
		filter["role"] = role
	}
	return r.Store.Query(model.CollectionUsers, filter)
}

// Get 不存在时返回 (nil, nil)
func (r *UserRepository) Get(userID string) (docstore.Document, error) {
	doc, err := r.Store.Get(model.CollectionUsers, userID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *UserRepository) Update(userID string, updates docstore.Document) error {
	return r.Store.Update(model.CollectionUsers, userID, updates)
}

func (r *UserRepository) Delete(userID string) error {
	return r.Store.Delete(model.CollectionUsers, userID)
}

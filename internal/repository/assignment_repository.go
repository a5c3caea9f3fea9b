package repository

import (
	"errors"

	"kampus_backend/internal/model"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"
)

// AssignmentRepository assignments 集合的数据访问
type AssignmentRepository struct {
	Store docstore.Store
}

func NewAssignmentRepository(store docstore.Store) *AssignmentRepository {
	return &AssignmentRepository{Store: store}
}

// List courseID 为空时返回全部作业
func (r *AssignmentRepository) List(courseID string) ([]docstore.Document, error) {
	filter := map[string]any{}
	if courseID != "" {
		filter["course_id"] = courseID
	}
	return r.Store.Query(model.CollectionAssignments, filter)
}

// Get 不存在时返回 (nil, nil)
func (r *AssignmentRepository) Get(assignmentID string) (docstore.Document, error) {
	doc, err := r.Store.Get(model.CollectionAssignments, assignmentID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *AssignmentRepository) Create(fields docstore.Document) (string, error) {
	doc := fields.Clone()
	doc["created_at"] = util.NowISO()
	return r.Store.Create(model.CollectionAssignments, doc)
}

func (r *AssignmentRepository) Update(assignmentID string, updates docstore.Document) error {
	doc := updates.Clone()
	doc["updated_at"] = util.NowISO()
	return r.Store.Update(model.CollectionAssignments, assignmentID, doc)
}

func (r *AssignmentRepository) Delete(assignmentID string) error {
	return r.Store.Delete(model.CollectionAssignments, assignmentID)
}

package repository

import (
	"errors"

	"kampus_backend/internal/model"
	"kampus_backend/pkg/docstore"
)

// CourseRepository courses 集合的数据访问
type CourseRepository struct {
	Store docstore.Store
}

func NewCourseRepository(store docstore.Store) *CourseRepository {
	return &CourseRepository{Store: store}
}

// List teacherID 为空时返回全部课程
func (r *CourseRepository) List(teacherID string) ([]docstore.Document, error) {
	filter := map[string]any{}
	if teacherID != "" {
		filter["teacher_id"] = teacherID
	}
	return r.Store.Query(model.CollectionCourses, filter)
}

// Get 不存在时返回 (nil, nil)
func (r *CourseRepository) Get(courseID string) (docstore.Document, error) {
	doc, err := r.Store.Get(model.CollectionCourses, courseID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

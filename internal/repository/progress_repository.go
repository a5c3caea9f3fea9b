package repository

import (
	"kampus_backend/internal/model"
	"kampus_backend/pkg/docstore"
)

// ProgressRepository user_progress 与 course_progress 两个集合的数据访问。
// 写入都是按复合键upsert：已有记录就合并更新，否则新建并盖上键字段。
type ProgressRepository struct {
	Store docstore.Store
}

func NewProgressRepository(store docstore.Store) *ProgressRepository {
	return &ProgressRepository{Store: store}
}

// GetModuleProgress 按复合键查找，不存在时返回 (nil, nil)
func (r *ProgressRepository) GetModuleProgress(userID, courseID, moduleID string) (docstore.Document, error) {
	docs, err := r.Store.Query(model.CollectionUserProgress, map[string]any{
		"user_id":   userID,
		"course_id": courseID,
		"module_id": moduleID,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (r *ProgressRepository) ListModuleProgress(userID, courseID string) ([]docstore.Document, error) {
	return r.Store.Query(model.CollectionUserProgress, map[string]any{
		"user_id":   userID,
		"course_id": courseID,
	})
}

func (r *ProgressRepository) SaveModuleProgress(userID, courseID, moduleID string, payload docstore.Document) error {
	existing, err := r.GetModuleProgress(userID, courseID, moduleID)
	if err != nil {
		return err
	}
	if existing != nil {
		return r.Store.Update(model.CollectionUserProgress, existing.String("id"), payload)
	}

	doc := payload.Clone()
	doc["user_id"] = userID
	doc["course_id"] = courseID
	doc["module_id"] = moduleID
	_, err = r.Store.Create(model.CollectionUserProgress, doc)
	return err
}

// GetCourseProgress 不存在时返回 (nil, nil)
func (r *ProgressRepository) GetCourseProgress(userID, courseID string) (docstore.Document, error) {
	docs, err := r.Store.Query(model.CollectionCourseProgress, map[string]any{
		"user_id":   userID,
		"course_id": courseID,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (r *ProgressRepository) SaveCourseProgress(userID, courseID string, payload docstore.Document) error {
	existing, err := r.GetCourseProgress(userID, courseID)
	if err != nil {
		return err
	}
	if existing != nil {
		return r.Store.Update(model.CollectionCourseProgress, existing.String("id"), payload)
	}

	doc := payload.Clone()
	doc["user_id"] = userID
	doc["course_id"] = courseID
	_, err = r.Store.Create(model.CollectionCourseProgress, doc)
	return err
}

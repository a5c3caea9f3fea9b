package repository

import (
	"sort"

	"kampus_backend/internal/model"
	"kampus_backend/pkg/docstore"
	"kampus_backend/pkg/logger"

	"go.uber.org/zap"
)

// ModuleRepository course_modules 集合的数据访问
type ModuleRepository struct {
	Store docstore.Store
}

func NewModuleRepository(store docstore.Store) *ModuleRepository {
	return &ModuleRepository{Store: store}
}

// ListByCourse 按 order 升序返回课程的全部模块。
// 排序查询失败（排序索引缺失）时退回普通查询，order 缺失按 0 处理。
func (r *ModuleRepository) ListByCourse(courseID string) ([]docstore.Document, error) {
	filter := map[string]any{"course_id": courseID}

	docs, err := r.Store.QueryOrdered(model.CollectionCourseModules, filter, "order")
	if err != nil {
		logger.Log.Warn("Ordered module query failed, falling back to unordered fetch",
			zap.String("course_id", courseID),
			zap.Error(err),
		)
		docs, err = r.Store.Query(model.CollectionCourseModules, filter)
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Int("order") < docs[j].Int("order")
	})
	return docs, nil
}

package model

import "kampus_backend/pkg/docstore"

// ModuleProgress 用户与单个模块的交互状态。
// 复合键 (user_id, course_id, module_id) 全局唯一，存储ID另行生成。
type ModuleProgress struct {
	ID                 string `json:"id,omitempty"`
	UserID             string `json:"user_id"`
	CourseID           string `json:"course_id"`
	ModuleID           string `json:"module_id"`
	LastAccessedAt     string `json:"last_accessed_at,omitempty"`
	TimesAccessed      int    `json:"times_accessed,omitempty"`
	Completed          bool   `json:"completed"`
	CompletedAt        string `json:"completed_at,omitempty"`
	ProgressPercentage int    `json:"progress_percentage,omitempty"`
}

func ModuleProgressFromDocument(doc docstore.Document) (*ModuleProgress, error) {
	var mp ModuleProgress
	if err := FromDocument(doc, &mp); err != nil {
		return nil, err
	}
	return &mp, nil
}

// CourseProgress 派生的课程级汇总，每次重算整体覆盖，可随时由模块进度重建
type CourseProgress struct {
	ID                 string `json:"id,omitempty"`
	UserID             string `json:"user_id"`
	CourseID           string `json:"course_id"`
	TotalModules       int    `json:"total_modules"`
	CompletedModules   int    `json:"completed_modules"`
	ProgressPercentage int    `json:"progress_percentage"`
	UpdatedAt          string `json:"updated_at,omitempty"`
}

func CourseProgressFromDocument(doc docstore.Document) (*CourseProgress, error) {
	var cp CourseProgress
	if err := FromDocument(doc, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

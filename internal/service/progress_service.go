package service

import (
	"math"

	"kampus_backend/internal/model"
	"kampus_backend/internal/repository"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"
)

// ProgressService 进度聚合核心：维护模块级进度记录，并在每次变更后
// 重算课程级汇总。汇总完全由模块进度+课程目录派生，失败后下一次
// 成功的触发会整体重建，自行恢复一致。
type ProgressService struct {
	progressRepo *repository.ProgressRepository
	moduleRepo   *repository.ModuleRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, moduleRepo *repository.ModuleRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		moduleRepo:   moduleRepo,
	}
}

// SaveModuleAccess 记录一次模块访问。首次访问 times_accessed=1，之后每次+1；
// progress_percentage 只升不降，访问事件可以抬高它但不能压低。
// 不校验课程/模块是否真实存在，目录无效也照常建记录。
func (s *ProgressService) SaveModuleAccess(userID, courseID, moduleID string, progressPercentage *int) error {
	if err := validateProgressKey(userID, courseID, moduleID); err != nil {
		return err
	}

	existingDoc, err := s.progressRepo.GetModuleProgress(userID, courseID, moduleID)
	if err != nil {
		return err
	}

	payload := docstore.Document{
		"last_accessed_at": util.NowISO(),
		"times_accessed":   1,
		"completed":        false,
	}

	if existingDoc != nil {
		existing, err := model.ModuleProgressFromDocument(existingDoc)
		if err != nil {
			return err
		}
		payload["times_accessed"] = existing.TimesAccessed + 1
		payload["completed"] = existing.Completed
		if progressPercentage != nil {
			payload["progress_percentage"] = max(existing.ProgressPercentage, *progressPercentage)
		}
	} else if progressPercentage != nil {
		payload["progress_percentage"] = max(0, *progressPercentage)
	}

	if err := s.progressRepo.SaveModuleProgress(userID, courseID, moduleID, payload); err != nil {
		return err
	}
	return s.refreshCourseProgress(userID, courseID)
}

// SaveModuleProgress 保存客户端自定义进度字段。未知字段原样透传；
// completed 强制保持现状（只有MarkModuleComplete能置完成），
// progress_percentage 单调不降，调用方省略时沿用已存值。
func (s *ProgressService) SaveModuleProgress(userID, courseID, moduleID string, progressData map[string]any) error {
	if err := validateProgressKey(userID, courseID, moduleID); err != nil {
		return err
	}

	existingDoc, err := s.progressRepo.GetModuleProgress(userID, courseID, moduleID)
	if err != nil {
		return err
	}

	payload := docstore.Document(progressData).Clone()
	if payload == nil {
		payload = docstore.Document{}
	}
	payload["last_accessed_at"] = util.NowISO()
	payload["completed"] = false

	if existingDoc != nil {
		existing, err := model.ModuleProgressFromDocument(existingDoc)
		if err != nil {
			return err
		}
		payload["completed"] = existing.Completed

		if _, supplied := progressData["progress_percentage"]; supplied {
			payload["progress_percentage"] = max(existing.ProgressPercentage, payload.Int("progress_percentage"))
		} else {
			payload["progress_percentage"] = existing.ProgressPercentage
		}
	}

	if err := s.progressRepo.SaveModuleProgress(userID, courseID, moduleID, payload); err != nil {
		return err
	}
	return s.refreshCourseProgress(userID, courseID)
}

// MarkModuleComplete 置完成，幂等。重复调用会刷新 completed_at，沿用线上行为
func (s *ProgressService) MarkModuleComplete(userID, courseID, moduleID string) error {
	if err := validateProgressKey(userID, courseID, moduleID); err != nil {
		return err
	}

	now := util.NowISO()
	payload := docstore.Document{
		"completed":           true,
		"completed_at":        now,
		"last_accessed_at":    now,
		"progress_percentage": 100,
	}

	if err := s.progressRepo.SaveModuleProgress(userID, courseID, moduleID, payload); err != nil {
		return err
	}
	return s.refreshCourseProgress(userID, courseID)
}

// GetModuleProgress 不存在时返回 (nil, nil)，由边界层决定404
func (s *ProgressService) GetModuleProgress(userID, courseID, moduleID string) (docstore.Document, error) {
	return s.progressRepo.GetModuleProgress(userID, courseID, moduleID)
}

func (s *ProgressService) ListCourseModuleProgress(userID, courseID string) ([]docstore.Document, error) {
	return s.progressRepo.ListModuleProgress(userID, courseID)
}

// GetCourseProgress 汇总还没算过时返回全零对象而不是不存在，
// 和模块级查询的缺失语义刻意不同
func (s *ProgressService) GetCourseProgress(userID, courseID string) (*model.CourseProgress, error) {
	doc, err := s.progressRepo.GetCourseProgress(userID, courseID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return &model.CourseProgress{UserID: userID, CourseID: courseID}, nil
	}
	return model.CourseProgressFromDocument(doc)
}

// refreshCourseProgress 重算课程级汇总。total取目录当前模块数，不在选课时固定。
// 读-改-写之间没有事务，同一 (user, course) 的并发触发可能互相覆盖，
// 后续任意一次成功触发会重建出正确值。
func (s *ProgressService) refreshCourseProgress(userID, courseID string) error {
	modules, err := s.moduleRepo.ListByCourse(courseID)
	if err != nil {
		return err
	}
	totalModules := len(modules)

	progress, err := s.progressRepo.ListModuleProgress(userID, courseID)
	if err != nil {
		return err
	}
	completedModules := 0
	for _, doc := range progress {
		if doc.Bool("completed") {
			completedModules++
		}
	}

	progressPercentage := 0
	if totalModules > 0 {
		progressPercentage = int(math.Round(float64(completedModules) / float64(totalModules) * 100))
	}

	payload := docstore.Document{
		"total_modules":       totalModules,
		"completed_modules":   completedModules,
		"progress_percentage": progressPercentage,
		"updated_at":          util.NowISO(),
	}
	return s.progressRepo.SaveCourseProgress(userID, courseID, payload)
}

func validateProgressKey(userID, courseID, moduleID string) error {
	if userID == "" {
		return util.RequiredField("user_id")
	}
	if courseID == "" {
		return util.RequiredField("course_id")
	}
	if moduleID == "" {
		return util.RequiredField("module_id")
	}
	return nil
}

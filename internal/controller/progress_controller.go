package controller

import (
	"net/http"

	"kampus_backend/internal/service"
	"kampus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type moduleAccessRequest struct {
	UserID             string `json:"user_id" binding:"required"`
	CourseID           string `json:"course_id" binding:"required"`
	ModuleID           string `json:"module_id" binding:"required"`
	ProgressPercentage *int   `json:"progress_percentage" binding:"omitempty,min=0,max=100"`
}

type moduleProgressRequest struct {
	UserID       string         `json:"user_id" binding:"required"`
	CourseID     string         `json:"course_id" binding:"required"`
	ModuleID     string         `json:"module_id" binding:"required"`
	ProgressData map[string]any `json:"progressData"`
}

type moduleCompleteRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	CourseID string `json:"course_id" binding:"required"`
	ModuleID string `json:"module_id" binding:"required"`
}

// @Summary 记录模块访问
// @Description 记录一次模块访问并重算课程进度汇总
// @Tags 学习进度
// @Accept json
// @Produce json
// @Param body body moduleAccessRequest true "访问信息"
// @Success 200 {object} util.Response
// @Router /api/progress/access [post]
func (c *ProgressController) SaveModuleAccess(ctx *gin.Context) {
	var req moduleAccessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "user_id, course_id and module_id are required")
		return
	}

	if err := c.ProgressService.SaveModuleAccess(req.UserID, req.CourseID, req.ModuleID, req.ProgressPercentage); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Module access saved"})
}

// @Summary 保存模块进度
// @Description 保存客户端自定义的模块进度字段
// @Tags 学习进度
// @Accept json
// @Produce json
// @Param body body moduleProgressRequest true "进度数据"
// @Success 200 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) SaveModuleProgress(ctx *gin.Context) {
	var req moduleProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "user_id, course_id and module_id are required")
		return
	}

	if err := c.ProgressService.SaveModuleProgress(req.UserID, req.CourseID, req.ModuleID, req.ProgressData); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Module progress saved"})
}

// @Summary 标记模块完成
// @Description 将模块置为完成，幂等
// @Tags 学习进度
// @Accept json
// @Produce json
// @Param body body moduleCompleteRequest true "模块标识"
// @Success 200 {object} util.Response
// @Router /api/progress/complete [post]
func (c *ProgressController) MarkModuleComplete(ctx *gin.Context) {
	var req moduleCompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "user_id, course_id and module_id are required")
		return
	}

	if err := c.ProgressService.MarkModuleComplete(req.UserID, req.CourseID, req.ModuleID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Module marked complete"})
}

// @Summary 查询单个模块进度
// @Tags 学习进度
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/module/{userId}/{courseId}/{moduleId} [get]
func (c *ProgressController) GetModuleProgress(ctx *gin.Context) {
	progress, err := c.ProgressService.GetModuleProgress(
		ctx.Param("userId"),
		ctx.Param("courseId"),
		ctx.Param("moduleId"),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if progress == nil {
		util.Error(ctx, http.StatusNotFound, "Progress not found")
		return
	}

	util.Success(ctx, progress)
}

// @Summary 查询课程内全部模块进度
// @Tags 学习进度
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/course/{userId}/{courseId} [get]
func (c *ProgressController) ListCourseModuleProgress(ctx *gin.Context) {
	progress, err := c.ProgressService.ListCourseModuleProgress(
		ctx.Param("userId"),
		ctx.Param("courseId"),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 查询课程进度汇总
// @Description 还没有汇总记录时返回全零对象
// @Tags 学习进度
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/course/{userId}/{courseId}/summary [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	summary, err := c.ProgressService.GetCourseProgress(
		ctx.Param("userId"),
		ctx.Param("courseId"),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

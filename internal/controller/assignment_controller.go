package controller

import (
	"kampus_backend/internal/service"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// @Summary 作业列表
// @Description 可按 course_id 过滤
// @Tags 作业
// @Produce json
// @Param course_id query string false "课程ID"
// @Success 200 {object} util.Response
// @Router /api/assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.AssignmentService.ListAssignments(ctx.Query("course_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// @Summary 作业详情
// @Tags 作业
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	assignment, err := c.AssignmentService.GetAssignment(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// @Summary 创建作业
// @Description course_id、title、description 必填
// @Tags 作业
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var fields docstore.Document
	if err := ctx.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		util.BadRequest(ctx, "No assignment data provided")
		return
	}

	id, err := c.AssignmentService.CreateAssignment(fields)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"message": "Assignment created successfully", "id": id})
}

// @Summary 更新作业
// @Tags 作业
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var updates docstore.Document
	if err := ctx.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		util.BadRequest(ctx, "No update data provided")
		return
	}

	assignmentID := ctx.Param("id")
	if err := c.AssignmentService.UpdateAssignment(assignmentID, updates); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Assignment updated successfully", "id": assignmentID})
}

// @Summary 删除作业
// @Tags 作业
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	assignmentID := ctx.Param("id")
	if err := c.AssignmentService.DeleteAssignment(assignmentID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Assignment deleted successfully", "id": assignmentID})
}

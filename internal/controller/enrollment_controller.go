package controller

import (
	"kampus_backend/internal/service"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

type enrollRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
	Progress  int    `json:"progress" binding:"omitempty,min=0,max=100"`
}

// @Summary 查询选课记录
// @Description 按 student_id 或 course_id 过滤；都不传时返回空列表
// @Tags 选课
// @Produce json
// @Param student_id query string false "学生ID"
// @Param course_id query string false "课程ID"
// @Success 200 {object} util.Response
// @Router /api/enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	studentID := ctx.Query("student_id")
	courseID := ctx.Query("course_id")

	var (
		enrollments []docstore.Document
		err         error
	)
	switch {
	case studentID != "":
		enrollments, err = c.EnrollmentService.ListByStudent(studentID)
	case courseID != "":
		enrollments, err = c.EnrollmentService.ListByCourse(courseID)
	default:
		// 不带过滤条件时返回空数组，前端依赖这个行为
		util.Success(ctx, []docstore.Document{})
		return
	}

	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// @Summary 创建选课
// @Description 同一 (student, course) 重复选课返回409
// @Tags 选课
// @Accept json
// @Produce json
// @Param body body enrollRequest true "选课信息"
// @Success 201 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req enrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "course_id and student_id are required")
		return
	}

	id, err := c.EnrollmentService.Enroll(req.StudentID, req.CourseID, req.Progress)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": id})
}

// @Summary 退课
// @Tags 选课
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	if err := c.EnrollmentService.Unenroll(ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Enrollment deleted"})
}

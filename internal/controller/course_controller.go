package controller

import (
	"kampus_backend/internal/service"
	"kampus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	ModuleService *service.ModuleService
}

func NewCourseController(courseService *service.CourseService, moduleService *service.ModuleService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		ModuleService: moduleService,
	}
}

// @Summary 课程列表
// @Description 可按 teacher_id 过滤
// @Tags 课程
// @Produce json
// @Param teacher_id query string false "教师ID"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses(ctx.Query("teacher_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.GetCourse(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary 课程模块列表
// @Description 按 order 升序返回课程的全部模块
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/modules [get]
func (c *CourseController) ListCourseModules(ctx *gin.Context) {
	modules, err := c.ModuleService.ListModules(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, modules)
}

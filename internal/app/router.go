package app

import (
	"kampus_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		courses := api.Group("/courses")
		{
			courses.GET("", c.course.ListCourses)
			courses.GET("/:id", c.course.GetCourse)
			courses.GET("/:id/modules", c.course.ListCourseModules)
		}

		users := api.Group("/users")
		{
			users.GET("", c.user.ListUsers)
			users.GET("/stats", c.user.GetUserStats)
			users.GET("/:id", c.user.GetUser)
			users.PUT("/:id", c.user.UpdateUser)
			users.DELETE("/:id", c.user.DeleteUser)
		}

		assignments := api.Group("/assignments")
		{
			assignments.GET("", c.assignment.ListAssignments)
			assignments.POST("", c.assignment.CreateAssignment)
			assignments.GET("/:id", c.assignment.GetAssignment)
			assignments.PUT("/:id", c.assignment.UpdateAssignment)
			assignments.DELETE("/:id", c.assignment.DeleteAssignment)
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.GET("", c.enrollment.ListEnrollments)
			enrollments.POST("", c.enrollment.CreateEnrollment)
			enrollments.DELETE("/:id", c.enrollment.DeleteEnrollment)
		}

		progress := api.Group("/progress")
		{
			progress.POST("", c.progress.SaveModuleProgress)
			progress.POST("/access", c.progress.SaveModuleAccess)
			progress.POST("/complete", c.progress.MarkModuleComplete)
			progress.GET("/module/:userId/:courseId/:moduleId", c.progress.GetModuleProgress)
			progress.GET("/course/:userId/:courseId", c.progress.ListCourseModuleProgress)
			progress.GET("/course/:userId/:courseId/summary", c.progress.GetCourseProgress)
		}
	}
}

package controller

import (
	"kampus_backend/internal/service"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary 用户列表
// @Description 可按角色过滤
// @Tags 用户
// @Produce json
// @Param role query string false "角色 student/teacher/admin"
// @Success 200 {object} util.Response
// @Router /api/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers(ctx.Query("role"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// @Summary 用户统计
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/stats [get]
func (c *UserController) GetUserStats(ctx *gin.Context) {
	stats, err := c.UserService.GetUserStats()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 用户详情
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.UserService.GetUser(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary 更新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var updates docstore.Document
	if err := ctx.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		util.BadRequest(ctx, "No update data provided")
		return
	}

	userID := ctx.Param("id")
	if err := c.UserService.UpdateUser(userID, updates); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "User updated successfully", "id": userID})
}

// @Summary 删除用户
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	userID := ctx.Param("id")
	if err := c.UserService.DeleteUser(userID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "User deleted successfully", "id": userID})
}

package controller

import (
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GoalController struct {
	GoalService *service.GoalService
	UserService *service.UserService
}

func NewGoalController(goalService *service.GoalService, userService *service.UserService) *GoalController {
	return &GoalController{
		GoalService: goalService,
		UserService: userService,
	}
}

// @Summary 获取学习目标推荐
// @Description 按当前用户画像对目标目录评分分组；未登录或未测评时全部返回others
// @Tags 学习目标
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/goals/recommendations [get]
func (c *GoalController) GetRecommendations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var result *service.RecommendationResult
	var err error
	if claims != nil {
		user, ferr := c.UserService.GetProfile(claims.UserID)
		if ferr != nil && ferr != gorm.ErrRecordNotFound {
			util.LogInternalError(ctx, ferr)
			return
		}
		result, err = c.GoalService.GetRecommendations(service.ScoringProfile(user))
	} else {
		result, err = c.GoalService.GetRecommendations(nil)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 搜索学习目标
// @Description 按关键词、类别、难度过滤目标目录
// @Tags 学习目标
// @Produce json
// @Param q query string false "关键词"
// @Param category query string false "类别"
// @Param difficulty query string false "难度(beginner/intermediate/advanced/all)"
// @Success 200 {object} util.Response
// @Router /api/goals/search [get]
func (c *GoalController) SearchGoals(ctx *gin.Context) {
	goals, err := c.GoalService.SearchGoals(
		ctx.Query("q"),
		ctx.Query("category"),
		ctx.Query("difficulty"),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

// @Summary 目标列表（管理端）
// @Tags 学习目标
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/admin/goals [get]
func (c *GoalController) ListGoals(ctx *gin.Context) {
	page, limit := pagination(ctx)
	goals, total, err := c.GoalService.ListGoals(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  goals,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 创建学习目标（管理端）
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param goal body service.CatalogGoalRequest true "目标"
// @Success 201 {object} util.Response
// @Router /api/admin/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	var req service.CatalogGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// @Summary 更新学习目标（管理端）
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "目标ID"
// @Param goal body service.CatalogGoalRequest true "目标"
// @Success 200 {object} util.Response
// @Router /api/admin/goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	var req service.CatalogGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateGoal(ctx.Param("id"), req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// @Summary 删除学习目标（管理端）
// @Tags 学习目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/admin/goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	if err := c.GoalService.DeleteGoal(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

func pagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

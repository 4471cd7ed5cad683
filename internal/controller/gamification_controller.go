package controller

import (
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	GamificationService *service.GamificationService
	UserService         *service.UserService
}

func NewGamificationController(gamificationService *service.GamificationService, userService *service.UserService) *GamificationController {
	return &GamificationController{
		GamificationService: gamificationService,
		UserService:         userService,
	}
}

// @Summary 经验值排行榜
// @Tags 游戏化
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "榜单长度，默认10"
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (c *GamificationController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	entries, err := c.GamificationService.Leaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

// @Summary 我的排名
// @Description 返回当前用户的经验值、等级与榜上排名（未上榜为0）
// @Tags 游戏化
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/leaderboard/me [get]
func (c *GamificationController) GetMyRank(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	rank, err := c.GamificationService.Rank(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"rank":  rank,
		"xp":    user.XP,
		"level": service.LevelForXP(user.XP),
	})
}

package controller

import (
	"learnsphere_backend/internal/scoring"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"
	"learnsphere_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// @Summary 获取测评题目
// @Description 下发启用中的入学测评题，不含答案标记
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/assessment/quiz [get]
func (c *AssessmentController) GetQuiz(ctx *gin.Context) {
	questions, err := c.AssessmentService.GetQuizQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary 提交测评
// @Description 对整卷评分、生成报告并回写学习画像与经验值
// @Tags 测评
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param submission body service.SubmitRequest true "作答"
// @Success 200 {object} util.Response
// @Router /api/assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssessmentService.Submit(user.UserID, req)
	if err != nil {
		if err == util.ErrEmptySubmission {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.AssessmentCounter.WithLabelValues(string(scoring.DeriveLevel(result.TotalScore))).Inc()
	util.Success(ctx, result)
}

// @Summary 获取最近一次测评报告
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/assessment/report [get]
func (c *AssessmentController) GetReport(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.AssessmentService.GetLatestReport(user.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// @Summary 题目列表（管理端）
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Param category query string false "类别"
// @Success 200 {object} util.Response
// @Router /api/admin/questions [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	page, limit := pagination(ctx)
	questions, total, err := c.AssessmentService.ListQuestions(page, limit, ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  questions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 创建题目（管理端）
// @Tags 测评
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body service.QuestionRequest true "题目"
// @Success 201 {object} util.Response
// @Router /api/admin/questions [post]
func (c *AssessmentController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.AssessmentService.CreateQuestion(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// @Summary 更新题目（管理端）
// @Tags 测评
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "题目ID"
// @Param question body service.QuestionRequest true "题目"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *AssessmentController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.AssessmentService.UpdateQuestion(ctx.Param("id"), req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// @Summary 删除题目（管理端）
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *AssessmentController) DeleteQuestion(ctx *gin.Context) {
	if err := c.AssessmentService.DeleteQuestion(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 提交记录列表（管理端）
// @Tags 测评
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/admin/submissions [get]
func (c *AssessmentController) ListSubmissions(ctx *gin.Context) {
	page, limit := pagination(ctx)
	submissions, total, err := c.AssessmentService.ListSubmissions(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  submissions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

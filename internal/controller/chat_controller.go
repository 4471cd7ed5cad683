package controller

import (
	"io"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	AIService         *service.AIService
	AssessmentService *service.AssessmentService
}

func NewChatController(aiService *service.AIService, assessmentService *service.AssessmentService) *ChatController {
	return &ChatController{
		AIService:         aiService,
		AssessmentService: assessmentService,
	}
}

type ChatRequest struct {
	Prompt  string                  `json:"prompt" binding:"required,max=4000"`
	History []service.AIChatMessage `json:"history" binding:"max=20"`
	Stream  bool                    `json:"stream"`
}

// @Summary AI学习导师问答
// @Description 结合学生最近一次测评报告回答学习问题，stream=true时走SSE流式输出
// @Tags AI助教
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param chat body ChatRequest true "问题"
// @Success 200 {object} util.Response
// @Router /api/chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// 测评摘要作为上下文，让回答贴合学生水平
	context := c.AssessmentService.ReportSummary(user.UserID)

	if req.Stream {
		c.streamChat(ctx, req, context)
		return
	}

	answer, err := c.AIService.Chat(req.Prompt, context)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"answer": answer})
}

func (c *ChatController) streamChat(ctx *gin.Context, req ChatRequest, context string) {
	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	out, errChan := c.AIService.ChatStream(req.Prompt, context, req.History)

	ctx.Stream(func(w io.Writer) bool {
		select {
		case chunk, ok := <-out:
			if !ok {
				ctx.SSEvent("done", "")
				return false
			}
			ctx.SSEvent("message", chunk)
			return true
		case err, ok := <-errChan:
			if ok && err != nil {
				ctx.SSEvent("error", err.Error())
			}
			return false
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}

package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrEmptySubmission     = errors.New("submission contains no responses")
	ErrAssessmentSubmitted = errors.New("assessment already submitted")
)

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/response"
	"github.com/madrasaty/exam-backend/internal/service"
	"github.com/madrasaty/exam-backend/internal/store"
	"github.com/madrasaty/exam-backend/internal/validator"
)

// SubmissionHandler handles student answer submission.
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// SubmitAnswers godoc
// POST /api/v1/submissions
// Records a student's answer set for an exam. The student is created on first
// submission for its (name, class) pair.
func (h *SubmissionHandler) SubmitAnswers(c *gin.Context) {
	var req model.SubmitAnswersRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	studentID, err := h.submissionService.Submit(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		case errors.Is(err, store.ErrExamNotFound):
			response.Fail(c, http.StatusBadRequest, response.ErrUnknownExam)
		case errors.Is(err, store.ErrQuestionNotInExam):
			response.Fail(c, http.StatusBadRequest, response.ErrQuestionNotInExam)
		case errors.Is(err, store.ErrChoiceNotInQuestion):
			response.Fail(c, http.StatusBadRequest, response.ErrChoiceNotInQuestion)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"ok":         true,
		"student_id": studentID,
	})
}

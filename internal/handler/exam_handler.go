package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/response"
	"github.com/madrasaty/exam-backend/internal/service"
	"github.com/madrasaty/exam-backend/internal/store"
	"github.com/madrasaty/exam-backend/internal/validator"
)

// ExamHandler handles exam authoring and catalog endpoints.
type ExamHandler struct {
	examService *service.ExamService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(examService *service.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

// CreateExam godoc
// POST /api/v1/exams
// Authors a new exam with its question tree as one atomic unit.
func (h *ExamHandler) CreateExam(c *gin.Context) {
	var req model.CreateExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	exam, err := h.examService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"exam_id": exam.ID})
}

// ListTeacherExams godoc
// GET /api/v1/teachers/:teacher_id/exams
// Lists a teacher's exams, newest first.
func (h *ExamHandler) ListTeacherExams(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacher_id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	exams, err := h.examService.ListByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

// GetExam godoc
// GET /api/v1/exams/:exam_id
// Returns the exam with its ordered questions and choices.
func (h *ExamHandler) GetExam(c *gin.Context) {
	examID, err := strconv.ParseInt(c.Param("exam_id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	full, err := h.examService.GetFull(c.Request.Context(), examID)
	if err != nil {
		if errors.Is(err, store.ErrExamNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrExamNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, full)
}

// ListAvailableExams godoc
// GET /api/v1/exams?class=&subject=&month=
// Lists the exams exactly matching all three filters.
func (h *ExamHandler) ListAvailableExams(c *gin.Context) {
	class := c.Query("class")
	subject := c.Query("subject")
	month := c.Query("month")

	exams, err := h.examService.ListAvailable(c.Request.Context(), class, subject, month)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

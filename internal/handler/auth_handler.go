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

// AuthHandler handles teacher login by code.
type AuthHandler struct {
	identityService *service.IdentityService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identityService *service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

// TeacherLogin godoc
// POST /api/v1/teacher-login
// Resolves a teacher from its unique login code.
func (h *AuthHandler) TeacherLogin(c *gin.Context) {
	var req model.TeacherLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.identityService.LookupTeacherByCode(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTeacherNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrInvalidTeacherCode)
		case errors.Is(err, service.ErrMissingField):
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"teacher_id": teacher.ID,
		"name":       teacher.Name,
	})
}

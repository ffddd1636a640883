package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
	"github.com/rs/zerolog"
)

// ErrMissingField is returned when a required field is empty. The wrapped
// message names the field.
var ErrMissingField = errors.New("missing required field")

// IdentityService resolves teachers and students.
type IdentityService struct {
	store store.IdentityStore
	log   zerolog.Logger
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(st store.IdentityStore, log zerolog.Logger) *IdentityService {
	return &IdentityService{
		store: st,
		log:   log.With().Str("component", "identity_service").Logger(),
	}
}

// LookupTeacherByCode returns the teacher owning the given login code.
// Returns store.ErrTeacherNotFound for an unknown code.
func (s *IdentityService) LookupTeacherByCode(ctx context.Context, code string) (*model.Teacher, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: code", ErrMissingField)
	}
	return s.store.GetTeacherByCode(ctx, code)
}

// ResolveStudent returns the stable id for (name, class), creating the
// student on first use. Calling it twice with the same pair yields the same
// id.
func (s *IdentityService) ResolveStudent(ctx context.Context, name, class string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: student_name", ErrMissingField)
	}
	if strings.TrimSpace(class) == "" {
		return 0, fmt.Errorf("%w: student_class", ErrMissingField)
	}
	return s.store.ResolveStudent(ctx, name, class)
}

// EnsureDefaultTeacher seeds one teacher with the given name and code when no
// teachers exist yet. Safe to call on every startup.
func (s *IdentityService) EnsureDefaultTeacher(ctx context.Context, name, code string) error {
	count, err := s.store.CountTeachers(ctx)
	if err != nil {
		return fmt.Errorf("count teachers: %w", err)
	}
	if count > 0 {
		return nil
	}

	t := &model.Teacher{Name: name, Code: code}
	if err := s.store.CreateTeacher(ctx, t); err != nil {
		// A concurrent replica may have seeded between the count and the
		// insert.
		if errors.Is(err, store.ErrDuplicateTeacherCode) {
			return nil
		}
		return fmt.Errorf("seed teacher: %w", err)
	}

	s.log.Info().Int64("teacher_id", t.ID).Msg("Default teacher seeded")
	return nil
}

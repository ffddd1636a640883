package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
	"github.com/rs/zerolog"
)

// SubmissionService records student answer sets against authored exams.
type SubmissionService struct {
	store store.SubmissionStore
	log   zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(st store.SubmissionStore, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{
		store: st,
		log:   log.With().Str("component", "submission_service").Logger(),
	}
}

// Submit resolves the student from (name, class) and records one answer row
// per entry, all-or-nothing. Answers may be empty. Every question must belong
// to the exam and every choice to its question; violations surface as the
// store's sentinel errors and nothing is written. Repeated submissions by the
// same student append new rows.
func (s *SubmissionService) Submit(ctx context.Context, req *model.SubmitAnswersRequest) (int64, error) {
	if strings.TrimSpace(req.StudentName) == "" {
		return 0, fmt.Errorf("%w: student_name", ErrMissingField)
	}
	if strings.TrimSpace(req.StudentClass) == "" {
		return 0, fmt.Errorf("%w: student_class", ErrMissingField)
	}
	if req.ExamID == 0 {
		return 0, fmt.Errorf("%w: exam_id", ErrMissingField)
	}

	studentID, err := s.store.RecordSubmission(ctx, req.StudentName, req.StudentClass, req.ExamID, req.Answers)
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Int64("student_id", studentID).
		Int64("exam_id", req.ExamID).
		Int("answers", len(req.Answers)).
		Msg("Submission recorded")
	return studentID, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ExamService handles exam authoring, the catalog read paths and the Redis
// full-exam cache. Exams are immutable once authored, so cached payloads
// never go stale.
type ExamService struct {
	store    store.ExamStore
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(st store.ExamStore, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *ExamService {
	return &ExamService{
		store:    st,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "exam_service").Logger(),
	}
}

// Create authors a new exam with its full question tree as one atomic unit
// and returns the committed exam. Questions may be empty.
func (s *ExamService) Create(ctx context.Context, req *model.CreateExamRequest) (*model.Exam, error) {
	if req.TeacherID == 0 {
		return nil, fmt.Errorf("%w: teacher_id", ErrMissingField)
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, fmt.Errorf("%w: subject", ErrMissingField)
	}
	if strings.TrimSpace(req.Class) == "" {
		return nil, fmt.Errorf("%w: class", ErrMissingField)
	}
	if strings.TrimSpace(req.Month) == "" {
		return nil, fmt.Errorf("%w: month", ErrMissingField)
	}

	exam := &model.Exam{
		TeacherID: req.TeacherID,
		Subject:   req.Subject,
		Class:     req.Class,
		Month:     req.Month,
	}
	if err := s.store.CreateExam(ctx, exam, req.Questions); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("exam_id", exam.ID).
		Int64("teacher_id", exam.TeacherID).
		Int("questions", len(req.Questions)).
		Msg("Exam created")
	return exam, nil
}

// ListByTeacher returns a teacher's exams, newest first.
func (s *ExamService) ListByTeacher(ctx context.Context, teacherID int64) ([]model.Exam, error) {
	exams, err := s.store.ListExamsByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if exams == nil {
		exams = []model.Exam{}
	}
	return exams, nil
}

// ListAvailable returns the exams exactly matching class, subject and month.
func (s *ExamService) ListAvailable(ctx context.Context, class, subject, month string) ([]model.Exam, error) {
	if strings.TrimSpace(class) == "" {
		return nil, fmt.Errorf("%w: class", ErrMissingField)
	}
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("%w: subject", ErrMissingField)
	}
	if strings.TrimSpace(month) == "" {
		return nil, fmt.Errorf("%w: month", ErrMissingField)
	}

	exams, err := s.store.ListExamsFor(ctx, class, subject, month)
	if err != nil {
		return nil, err
	}
	if exams == nil {
		exams = []model.Exam{}
	}
	return exams, nil
}

// GetFull returns the reconstituted exam tree, served from the Redis cache
// when possible. Cache failures degrade to a direct store read.
func (s *ExamService) GetFull(ctx context.Context, examID int64) (*model.FullExam, error) {
	key := cacheKey(examID)

	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var full model.FullExam
		if err := json.Unmarshal(data, &full); err == nil {
			return &full, nil
		}
		s.log.Warn().Int64("exam_id", examID).Msg("Corrupt cache entry, rereading")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Int64("exam_id", examID).Msg("Cache read failed")
	}

	full, err := s.store.GetFullExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(full); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Int64("exam_id", examID).Msg("Cache write failed")
		}
	}
	return full, nil
}

// PrewarmCache loads every exam into Redis. Called once at startup so the
// first readers after a restart do not all hit PostgreSQL.
func (s *ExamService) PrewarmCache(ctx context.Context) error {
	ids, err := s.store.ListExamIDs(ctx)
	if err != nil {
		return fmt.Errorf("list exam ids: %w", err)
	}

	warmed := 0
	for _, id := range ids {
		if _, err := s.GetFull(ctx, id); err != nil {
			s.log.Warn().Err(err).Int64("exam_id", id).Msg("Failed to warm exam, skipping")
			continue
		}
		warmed++
	}

	s.log.Info().Int("warmed", warmed).Int("total", len(ids)).Msg("Exam cache prewarmed")
	return nil
}

func cacheKey(examID int64) string {
	return fmt.Sprintf("exam:%d:full", examID)
}

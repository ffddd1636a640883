// Package store defines the persistence contracts shared by the postgres and
// memory implementations. Services depend on these interfaces only, so the
// core stays testable without a database.
package store

import (
	"context"

	"github.com/madrasaty/exam-backend/internal/model"
)

// IdentityStore manages teacher and student identities.
type IdentityStore interface {
	// ResolveStudent returns the id of the student matching (name, class),
	// creating one atomically if none exists. Concurrent calls for the same
	// pair resolve to the same id.
	ResolveStudent(ctx context.Context, name, class string) (int64, error)

	// GetTeacherByCode looks a teacher up by its unique login code.
	// Returns ErrTeacherNotFound when no teacher has the code.
	GetTeacherByCode(ctx context.Context, code string) (*model.Teacher, error)

	// CreateTeacher inserts a new teacher. Returns ErrDuplicateTeacherCode
	// when the code is already taken.
	CreateTeacher(ctx context.Context, t *model.Teacher) error

	// CountTeachers reports how many teachers exist. Used by the bootstrap
	// seed.
	CountTeachers(ctx context.Context) (int, error)
}

// ExamStore persists exams with their question trees and serves the catalog
// read paths.
type ExamStore interface {
	// CreateExam writes the exam and its full question/choice tree as one
	// atomic unit and fills in exam.ID and exam.CreatedAt. The input order
	// of questions and of each question's choices is the order reads will
	// return.
	CreateExam(ctx context.Context, exam *model.Exam, questions []model.QuestionInput) error

	// ListExamsByTeacher returns a teacher's exams, newest first.
	ListExamsByTeacher(ctx context.Context, teacherID int64) ([]model.Exam, error)

	// ListExamsFor returns the exams exactly matching all three filters.
	ListExamsFor(ctx context.Context, class, subject, month string) ([]model.Exam, error)

	// GetFullExam reconstitutes the exam tree. Returns ErrExamNotFound for
	// an unknown id; an exam with no questions yields an empty slice.
	GetFullExam(ctx context.Context, examID int64) (*model.FullExam, error)

	// ListExamIDs returns every exam id. Used for cache prewarming.
	ListExamIDs(ctx context.Context) ([]int64, error)
}

// SubmissionStore records student answer sets.
type SubmissionStore interface {
	// RecordSubmission resolves (or creates) the student and writes one
	// answer row per entry, all inside one atomic unit. Every question must
	// belong to the exam and every choice to its question; violations
	// return ErrExamNotFound, ErrQuestionNotInExam or ErrChoiceNotInQuestion
	// and leave nothing written. Returns the resolved student id.
	RecordSubmission(ctx context.Context, studentName, studentClass string, examID int64, answers []model.AnswerInput) (int64, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
)

// CreateExam inserts the exam and its question/choice tree in one transaction.
// Rows are inserted in input order, so the ascending serial ids double as the
// authoring order and reads order by them. Any failure rolls the whole exam
// back.
func (s *Store) CreateExam(ctx context.Context, exam *model.Exam, questions []model.QuestionInput) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO exams (teacher_id, subject, class, month)
		 VALUES ($1, $2, $3, $4)
		 RETURNING exam_id, created_at`,
		exam.TeacherID, exam.Subject, exam.Class, exam.Month,
	).Scan(&exam.ID, &exam.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert exam: %w", err)
	}

	for _, q := range questions {
		var questionID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO questions (exam_id, question_text, score)
			 VALUES ($1, $2, $3)
			 RETURNING question_id`,
			exam.ID, q.Text, q.Score,
		).Scan(&questionID)
		if err != nil {
			return fmt.Errorf("insert question: %w", err)
		}

		for _, c := range q.Choices {
			if _, err := tx.Exec(ctx,
				`INSERT INTO choices (question_id, choice_text, is_correct)
				 VALUES ($1, $2, $3)`,
				questionID, c.Text, c.IsCorrect,
			); err != nil {
				return fmt.Errorf("insert choice: %w", err)
			}
		}
	}

	return tx.Commit(ctx)
}

// ListExamsByTeacher retrieves a teacher's exams, newest first.
func (s *Store) ListExamsByTeacher(ctx context.Context, teacherID int64) ([]model.Exam, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT exam_id, teacher_id, subject, class, month, created_at
		 FROM exams WHERE teacher_id = $1
		 ORDER BY created_at DESC, exam_id DESC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExams(rows)
}

// ListExamsFor retrieves the exams exactly matching class, subject and month.
func (s *Store) ListExamsFor(ctx context.Context, class, subject, month string) ([]model.Exam, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT exam_id, teacher_id, subject, class, month, created_at
		 FROM exams WHERE class = $1 AND subject = $2 AND month = $3
		 ORDER BY created_at DESC, exam_id DESC`, class, subject, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExams(rows)
}

// GetFullExam loads the exam row, its questions in authoring order and each
// question's choices grouped by question_id, also in authoring order.
func (s *Store) GetFullExam(ctx context.Context, examID int64) (*model.FullExam, error) {
	full := &model.FullExam{Questions: []model.QuestionWithChoices{}}

	err := s.pool.QueryRow(ctx,
		`SELECT exam_id, teacher_id, subject, class, month, created_at
		 FROM exams WHERE exam_id = $1`, examID,
	).Scan(&full.Exam.ID, &full.Exam.TeacherID, &full.Exam.Subject,
		&full.Exam.Class, &full.Exam.Month, &full.Exam.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrExamNotFound
		}
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT question_id, exam_id, question_text, score
		 FROM questions WHERE exam_id = $1
		 ORDER BY question_id`, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questionIDs []int64
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.ExamID, &q.Text, &q.Score); err != nil {
			return nil, err
		}
		full.Questions = append(full.Questions, model.QuestionWithChoices{
			Question: q,
			Choices:  []model.Choice{},
		})
		questionIDs = append(questionIDs, q.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(questionIDs) == 0 {
		return full, nil
	}

	choiceRows, err := s.pool.Query(ctx,
		`SELECT choice_id, question_id, choice_text, is_correct
		 FROM choices WHERE question_id = ANY($1)
		 ORDER BY choice_id`, questionIDs)
	if err != nil {
		return nil, err
	}
	defer choiceRows.Close()

	byQuestion := make(map[int64]int, len(questionIDs))
	for i, id := range questionIDs {
		byQuestion[id] = i
	}
	for choiceRows.Next() {
		var c model.Choice
		if err := choiceRows.Scan(&c.ID, &c.QuestionID, &c.Text, &c.IsCorrect); err != nil {
			return nil, err
		}
		i := byQuestion[c.QuestionID]
		full.Questions[i].Choices = append(full.Questions[i].Choices, c)
	}
	return full, choiceRows.Err()
}

// ListExamIDs returns every exam id, oldest first.
func (s *Store) ListExamIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.pool.Query(ctx, `SELECT exam_id FROM exams ORDER BY exam_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanExams(rows pgx.Rows) ([]model.Exam, error) {
	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(&e.ID, &e.TeacherID, &e.Subject, &e.Class, &e.Month, &e.CreatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
)

// RecordSubmission resolves the student and writes the answer rows inside one
// transaction. The question/choice sets of the exam are loaded first and every
// answer is checked against them, so a submission referencing another exam's
// question or another question's choice is rejected before anything commits.
func (s *Store) RecordSubmission(ctx context.Context, studentName, studentClass string, examID int64, answers []model.AnswerInput) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var studentID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO students (name, class) VALUES ($1, $2)
		 ON CONFLICT (name, class) DO UPDATE SET name = EXCLUDED.name
		 RETURNING student_id`, studentName, studentClass,
	).Scan(&studentID)
	if err != nil {
		return 0, fmt.Errorf("resolve student: %w", err)
	}

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM exams WHERE exam_id = $1)`, examID,
	).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("check exam: %w", err)
	}
	if !exists {
		return 0, store.ErrExamNotFound
	}

	choiceToQuestion, examQuestions, err := loadExamKey(ctx, tx, examID)
	if err != nil {
		return 0, err
	}
	for _, a := range answers {
		if !examQuestions[a.QuestionID] {
			return 0, store.ErrQuestionNotInExam
		}
		if choiceToQuestion[a.ChoiceID] != a.QuestionID {
			return 0, store.ErrChoiceNotInQuestion
		}
	}

	batch := &pgx.Batch{}
	for _, a := range answers {
		batch.Queue(
			`INSERT INTO answers (student_id, exam_id, question_id, choice_id)
			 VALUES ($1, $2, $3, $4)`,
			studentID, examID, a.QuestionID, a.ChoiceID)
	}
	br := tx.SendBatch(ctx, batch)
	for range answers {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("insert answer: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return studentID, nil
}

// loadExamKey returns the exam's question id set and the choice→question
// mapping used to validate submitted answers.
func loadExamKey(ctx context.Context, tx pgx.Tx, examID int64) (map[int64]int64, map[int64]bool, error) {
	questions := make(map[int64]bool)
	rows, err := tx.Query(ctx,
		`SELECT question_id FROM questions WHERE exam_id = $1`, examID)
	if err != nil {
		return nil, nil, err
	}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, nil, err
		}
		questions[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	choices := make(map[int64]int64)
	choiceRows, err := tx.Query(ctx,
		`SELECT c.choice_id, c.question_id
		 FROM choices c
		 JOIN questions q ON q.question_id = c.question_id
		 WHERE q.exam_id = $1`, examID)
	if err != nil {
		return nil, nil, err
	}
	for choiceRows.Next() {
		var choiceID, questionID int64
		if err := choiceRows.Scan(&choiceID, &questionID); err != nil {
			choiceRows.Close()
			return nil, nil, err
		}
		choices[choiceID] = questionID
	}
	choiceRows.Close()
	if err := choiceRows.Err(); err != nil {
		return nil, nil, err
	}
	return choices, questions, nil
}

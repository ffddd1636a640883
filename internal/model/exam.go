package model

import "time"

// Exam is a scored multiple-choice assessment owned by one teacher and scoped
// to a class, subject and month. An exam is created atomically with its full
// question tree and is immutable afterwards.
type Exam struct {
	ID        int64     `json:"exam_id"`
	TeacherID int64     `json:"teacher_id"`
	Subject   string    `json:"subject"`
	Class     string    `json:"class"`
	Month     string    `json:"month"`
	CreatedAt time.Time `json:"created_at"`
}

// Question is one scored prompt within an exam. Sibling questions keep their
// authoring order on every read.
type Question struct {
	ID     int64  `json:"question_id"`
	ExamID int64  `json:"exam_id"`
	Text   string `json:"question_text"`
	Score  int    `json:"score"`
}

// Choice is one selectable option of a question, flagged correct or not.
type Choice struct {
	ID         int64  `json:"choice_id"`
	QuestionID int64  `json:"question_id"`
	Text       string `json:"choice_text"`
	IsCorrect  bool   `json:"is_correct"`
}

// QuestionWithChoices pairs a question with its ordered choice list.
type QuestionWithChoices struct {
	Question
	Choices []Choice `json:"choices"`
}

// FullExam is the reconstituted exam tree: the exam row plus its questions in
// authoring order, each with its choices in authoring order.
type FullExam struct {
	Exam      Exam                  `json:"exam"`
	Questions []QuestionWithChoices `json:"questions"`
}

// ChoiceInput is one choice of a question being authored.
type ChoiceInput struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionInput is one question of an exam being authored. Choices may be
// empty.
type QuestionInput struct {
	Text    string        `json:"text" binding:"required"`
	Score   int           `json:"score"`
	Choices []ChoiceInput `json:"choices" binding:"omitempty,dive"`
}

// CreateExamRequest is the payload for authoring a new exam. Questions may be
// empty; their array order is the order students will see.
type CreateExamRequest struct {
	TeacherID int64           `json:"teacher_id" binding:"required"`
	Subject   string          `json:"subject" binding:"required"`
	Class     string          `json:"class" binding:"required"`
	Month     string          `json:"month" binding:"required"`
	Questions []QuestionInput `json:"questions" binding:"omitempty,dive"`
}

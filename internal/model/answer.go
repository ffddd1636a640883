package model

// Answer records a student's selected choice for one question of one exam.
// Repeated submissions append new rows; consumers decide how to fold them.
type Answer struct {
	ID         int64 `json:"answer_id"`
	StudentID  int64 `json:"student_id"`
	ExamID     int64 `json:"exam_id"`
	QuestionID int64 `json:"question_id"`
	ChoiceID   int64 `json:"choice_id"`
}

// AnswerInput is one (question, chosen choice) pair of a submission.
type AnswerInput struct {
	QuestionID int64 `json:"question_id" binding:"required"`
	ChoiceID   int64 `json:"choice_id" binding:"required"`
}

// SubmitAnswersRequest is the payload for recording a student's answer set.
// The student is resolved (or created) from the (name, class) pair.
type SubmitAnswersRequest struct {
	StudentName  string        `json:"student_name" binding:"required"`
	StudentClass string        `json:"student_class" binding:"required"`
	ExamID       int64         `json:"exam_id" binding:"required"`
	Answers      []AnswerInput `json:"answers" binding:"omitempty,dive"`
}

package store

import "errors"

var (
	// ErrTeacherNotFound is returned when no teacher matches a lookup.
	ErrTeacherNotFound = errors.New("teacher not found")
	// ErrDuplicateTeacherCode is returned when a teacher code is already taken.
	ErrDuplicateTeacherCode = errors.New("teacher with this code already exists")
	// ErrExamNotFound is returned when an exam id does not exist.
	ErrExamNotFound = errors.New("exam not found")
	// ErrQuestionNotInExam is returned when a submitted question id does not
	// belong to the target exam.
	ErrQuestionNotInExam = errors.New("question does not belong to exam")
	// ErrChoiceNotInQuestion is returned when a submitted choice id does not
	// belong to its question.
	ErrChoiceNotInQuestion = errors.New("choice does not belong to question")
)

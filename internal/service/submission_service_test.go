package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/service"
	"github.com/madrasaty/exam-backend/internal/store"
	"github.com/madrasaty/exam-backend/internal/store/memory"
	"github.com/rs/zerolog"
)

// authorExam creates a one-question, two-choice exam directly in the store and
// returns its ids.
func authorExam(t *testing.T, st *memory.Store) (examID, questionID, choiceID int64) {
	t.Helper()
	ctx := context.Background()

	exam := &model.Exam{TeacherID: 1, Subject: "Math", Class: "5A", Month: "Jan"}
	err := st.CreateExam(ctx, exam, []model.QuestionInput{
		{Text: "2+2?", Score: 5, Choices: []model.ChoiceInput{
			{Text: "4", IsCorrect: true},
			{Text: "5"},
		}},
	})
	if err != nil {
		t.Fatalf("create exam failed: %v", err)
	}

	full, err := st.GetFullExam(ctx, exam.ID)
	if err != nil {
		t.Fatalf("get full exam failed: %v", err)
	}
	return exam.ID, full.Questions[0].ID, full.Questions[0].Choices[0].ID
}

func TestSubmitCreatesStudentAndAnswers(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	svc := service.NewSubmissionService(st, zerolog.Nop())
	identity := service.NewIdentityService(st, zerolog.Nop())

	examID, questionID, choiceID := authorExam(t, st)

	studentID, err := svc.Submit(ctx, &model.SubmitAnswersRequest{
		StudentName:  "Sara",
		StudentClass: "5A",
		ExamID:       examID,
		Answers:      []model.AnswerInput{{QuestionID: questionID, ChoiceID: choiceID}},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// The student created during submission is the one identity resolution
	// finds afterwards.
	resolved, err := identity.ResolveStudent(ctx, "Sara", "5A")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved != studentID {
		t.Fatalf("expected resolve to return %d, got %d", studentID, resolved)
	}

	answers := st.Answers()
	if len(answers) != 1 {
		t.Fatalf("expected 1 answer row, got %d", len(answers))
	}
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	svc := service.NewSubmissionService(st, zerolog.Nop())

	examID, _, _ := authorExam(t, st)

	cases := []struct {
		name string
		req  model.SubmitAnswersRequest
	}{
		{"missing name", model.SubmitAnswersRequest{StudentClass: "5A", ExamID: examID}},
		{"missing class", model.SubmitAnswersRequest{StudentName: "Sara", ExamID: examID}},
		{"missing exam", model.SubmitAnswersRequest{StudentName: "Sara", StudentClass: "5A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(ctx, &tc.req); !errors.Is(err, service.ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
		})
	}
	if len(st.Answers()) != 0 {
		t.Fatal("rejected submissions must not write answers")
	}
}

func TestSubmitRejectsForeignReferences(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	svc := service.NewSubmissionService(st, zerolog.Nop())

	examID, questionID, choiceID := authorExam(t, st)

	// Unknown exam.
	_, err := svc.Submit(ctx, &model.SubmitAnswersRequest{
		StudentName: "Sara", StudentClass: "5A", ExamID: 9999,
	})
	if !errors.Is(err, store.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound, got %v", err)
	}

	// Question from another exam.
	other := &model.Exam{TeacherID: 1, Subject: "Science", Class: "5A", Month: "Jan"}
	if err := st.CreateExam(ctx, other, nil); err != nil {
		t.Fatalf("create exam failed: %v", err)
	}
	_, err = svc.Submit(ctx, &model.SubmitAnswersRequest{
		StudentName: "Sara", StudentClass: "5A", ExamID: other.ID,
		Answers: []model.AnswerInput{{QuestionID: questionID, ChoiceID: choiceID}},
	})
	if !errors.Is(err, store.ErrQuestionNotInExam) {
		t.Fatalf("expected ErrQuestionNotInExam, got %v", err)
	}

	// Choice that does not belong to the question.
	_, err = svc.Submit(ctx, &model.SubmitAnswersRequest{
		StudentName: "Sara", StudentClass: "5A", ExamID: examID,
		Answers: []model.AnswerInput{{QuestionID: questionID, ChoiceID: 9999}},
	})
	if !errors.Is(err, store.ErrChoiceNotInQuestion) {
		t.Fatalf("expected ErrChoiceNotInQuestion, got %v", err)
	}

	if len(st.Answers()) != 0 {
		t.Fatal("rejected submissions must not write answers")
	}
}

func TestSubmitEmptyAnswersAndResubmission(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	svc := service.NewSubmissionService(st, zerolog.Nop())

	examID, questionID, choiceID := authorExam(t, st)

	if _, err := svc.Submit(ctx, &model.SubmitAnswersRequest{
		StudentName: "Omar", StudentClass: "5A", ExamID: examID,
	}); err != nil {
		t.Fatalf("empty submission failed: %v", err)
	}

	// Resubmission appends; there is no de-duplication.
	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(ctx, &model.SubmitAnswersRequest{
			StudentName: "Omar", StudentClass: "5A", ExamID: examID,
			Answers: []model.AnswerInput{{QuestionID: questionID, ChoiceID: choiceID}},
		}); err != nil {
			t.Fatalf("resubmission failed: %v", err)
		}
	}
	if len(st.Answers()) != 2 {
		t.Fatalf("expected 2 appended answer rows, got %d", len(st.Answers()))
	}
}

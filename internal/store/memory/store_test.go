package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
)

func TestResolveStudentIsStable(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	first, err := st.ResolveStudent(ctx, "Sara", "5A")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	second, err := st.ResolveStudent(ctx, "Sara", "5A")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected same id for same (name, class), got %d and %d", first, second)
	}

	other, err := st.ResolveStudent(ctx, "Sara", "5B")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if other == first {
		t.Fatalf("different class must resolve to a different student")
	}
}

func TestTeacherLookup(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	teacher := &model.Teacher{Name: "أحمد", Code: "TCH123"}
	if err := st.CreateTeacher(ctx, teacher); err != nil {
		t.Fatalf("create teacher failed: %v", err)
	}
	if teacher.ID == 0 {
		t.Fatal("expected teacher id to be assigned")
	}

	got, err := st.GetTeacherByCode(ctx, "TCH123")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.ID != teacher.ID || got.Name != "أحمد" {
		t.Fatalf("unexpected teacher: %+v", got)
	}

	if _, err := st.GetTeacherByCode(ctx, "nonexistent"); !errors.Is(err, store.ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}

	dup := &model.Teacher{Name: "Other", Code: "TCH123"}
	if err := st.CreateTeacher(ctx, dup); !errors.Is(err, store.ErrDuplicateTeacherCode) {
		t.Fatalf("expected ErrDuplicateTeacherCode, got %v", err)
	}
}

func TestCreateExamPreservesOrder(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	exam := &model.Exam{TeacherID: 1, Subject: "Math", Class: "5A", Month: "Jan"}
	questions := []model.QuestionInput{
		{Text: "2+2?", Score: 5, Choices: []model.ChoiceInput{
			{Text: "4", IsCorrect: true},
			{Text: "5", IsCorrect: false},
		}},
		{Text: "3x3?", Score: 10, Choices: []model.ChoiceInput{
			{Text: "6"},
			{Text: "9", IsCorrect: true},
			{Text: "12"},
		}},
	}
	if err := st.CreateExam(ctx, exam, questions); err != nil {
		t.Fatalf("create exam failed: %v", err)
	}

	full, err := st.GetFullExam(ctx, exam.ID)
	if err != nil {
		t.Fatalf("get full exam failed: %v", err)
	}
	if full.Exam.Subject != "Math" || full.Exam.Class != "5A" || full.Exam.Month != "Jan" {
		t.Fatalf("exam fields did not round-trip: %+v", full.Exam)
	}
	if len(full.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(full.Questions))
	}
	if full.Questions[0].Text != "2+2?" || full.Questions[1].Text != "3x3?" {
		t.Fatalf("question order not preserved: %q, %q", full.Questions[0].Text, full.Questions[1].Text)
	}
	choices := full.Questions[1].Choices
	if len(choices) != 3 || choices[0].Text != "6" || choices[1].Text != "9" || choices[2].Text != "12" {
		t.Fatalf("choice order not preserved: %+v", choices)
	}
	if !full.Questions[0].Choices[0].IsCorrect || full.Questions[0].Choices[1].IsCorrect {
		t.Fatalf("is_correct flags did not round-trip: %+v", full.Questions[0].Choices)
	}
}

func TestGetFullExamEdgeCases(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	if _, err := st.GetFullExam(ctx, 42); !errors.Is(err, store.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound, got %v", err)
	}

	empty := &model.Exam{TeacherID: 1, Subject: "Science", Class: "6B", Month: "Feb"}
	if err := st.CreateExam(ctx, empty, nil); err != nil {
		t.Fatalf("create exam failed: %v", err)
	}
	full, err := st.GetFullExam(ctx, empty.ID)
	if err != nil {
		t.Fatalf("get full exam failed: %v", err)
	}
	if full.Questions == nil || len(full.Questions) != 0 {
		t.Fatalf("expected empty question list, got %+v", full.Questions)
	}
}

func TestListExamsByTeacherNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	st.SetClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	})

	for _, subject := range []string{"Math", "Science", "History"} {
		exam := &model.Exam{TeacherID: 7, Subject: subject, Class: "5A", Month: "Jan"}
		if err := st.CreateExam(ctx, exam, nil); err != nil {
			t.Fatalf("create exam failed: %v", err)
		}
	}
	other := &model.Exam{TeacherID: 8, Subject: "Art", Class: "5A", Month: "Jan"}
	if err := st.CreateExam(ctx, other, nil); err != nil {
		t.Fatalf("create exam failed: %v", err)
	}

	exams, err := st.ListExamsByTeacher(ctx, 7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(exams) != 3 {
		t.Fatalf("expected 3 exams, got %d", len(exams))
	}
	if exams[0].Subject != "History" || exams[2].Subject != "Math" {
		t.Fatalf("expected newest first, got %+v", exams)
	}
}

func TestListExamsForExactMatch(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	a := &model.Exam{TeacherID: 1, Subject: "Math", Class: "5A", Month: "Jan"}
	b := &model.Exam{TeacherID: 1, Subject: "Math", Class: "5A", Month: "Feb"}
	c := &model.Exam{TeacherID: 1, Subject: "Math", Class: "5B", Month: "Jan"}
	for _, e := range []*model.Exam{a, b, c} {
		if err := st.CreateExam(ctx, e, nil); err != nil {
			t.Fatalf("create exam failed: %v", err)
		}
	}

	exams, err := st.ListExamsFor(ctx, "5A", "Math", "Jan")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(exams) != 1 || exams[0].ID != a.ID {
		t.Fatalf("expected only the exact match, got %+v", exams)
	}
}

func TestRecordSubmission(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	exam := &model.Exam{TeacherID: 1, Subject: "Math", Class: "5A", Month: "Jan"}
	if err := st.CreateExam(ctx, exam, []model.QuestionInput{
		{Text: "2+2?", Score: 5, Choices: []model.ChoiceInput{
			{Text: "4", IsCorrect: true},
			{Text: "5"},
		}},
	}); err != nil {
		t.Fatalf("create exam failed: %v", err)
	}
	full, err := st.GetFullExam(ctx, exam.ID)
	if err != nil {
		t.Fatalf("get full exam failed: %v", err)
	}
	questionID := full.Questions[0].ID
	choiceID := full.Questions[0].Choices[0].ID

	studentID, err := st.RecordSubmission(ctx, "Sara", "5A", exam.ID, []model.AnswerInput{
		{QuestionID: questionID, ChoiceID: choiceID},
	})
	if err != nil {
		t.Fatalf("record submission failed: %v", err)
	}

	resolved, err := st.ResolveStudent(ctx, "Sara", "5A")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved != studentID {
		t.Fatalf("expected submission to create student %d, resolve returned %d", studentID, resolved)
	}

	answers := st.Answers()
	if len(answers) != 1 {
		t.Fatalf("expected 1 answer row, got %d", len(answers))
	}
	a := answers[0]
	if a.StudentID != studentID || a.ExamID != exam.ID || a.QuestionID != questionID || a.ChoiceID != choiceID {
		t.Fatalf("unexpected answer row: %+v", a)
	}

	// Unknown exam writes nothing.
	if _, err := st.RecordSubmission(ctx, "Omar", "5A", 9999, nil); !errors.Is(err, store.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound, got %v", err)
	}

	// Foreign question is rejected before anything is written.
	otherExam := &model.Exam{TeacherID: 1, Subject: "Science", Class: "5A", Month: "Jan"}
	if err := st.CreateExam(ctx, otherExam, nil); err != nil {
		t.Fatalf("create exam failed: %v", err)
	}
	if _, err := st.RecordSubmission(ctx, "Sara", "5A", otherExam.ID, []model.AnswerInput{
		{QuestionID: questionID, ChoiceID: choiceID},
	}); !errors.Is(err, store.ErrQuestionNotInExam) {
		t.Fatalf("expected ErrQuestionNotInExam, got %v", err)
	}
	if len(st.Answers()) != 1 {
		t.Fatalf("rejected submission must not write rows")
	}
}

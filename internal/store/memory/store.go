// Package memory provides a mutex-guarded in-memory implementation of the
// store interfaces, used by unit tests and local experiments.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
)

// Store keeps all entities in process memory. The single mutex serializes
// every operation, which also makes student resolution race-free.
type Store struct {
	clock func() time.Time

	mu        sync.Mutex
	nextID    int64
	teachers  []model.Teacher
	students  []model.Student
	exams     []model.Exam
	questions []model.Question
	choices   []model.Choice
	answers   []model.Answer
}

var (
	_ store.IdentityStore   = (*Store)(nil)
	_ store.ExamStore       = (*Store)(nil)
	_ store.SubmissionStore = (*Store)(nil)
)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{clock: time.Now}
}

// SetClock overrides the timestamp source. Tests use it to control exam
// creation times.
func (s *Store) SetClock(clock func() time.Time) {
	s.clock = clock
}

func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

// ResolveStudent returns the id for (name, class), creating the student if
// the pair is new.
func (s *Store) ResolveStudent(_ context.Context, name, class string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveStudentLocked(name, class), nil
}

func (s *Store) resolveStudentLocked(name, class string) int64 {
	for _, st := range s.students {
		if st.Name == name && st.Class == class {
			return st.ID
		}
	}
	st := model.Student{ID: s.allocID(), Name: name, Class: class}
	s.students = append(s.students, st)
	return st.ID
}

// GetTeacherByCode looks a teacher up by its unique login code.
func (s *Store) GetTeacherByCode(_ context.Context, code string) (*model.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.teachers {
		if t.Code == code {
			found := t
			return &found, nil
		}
	}
	return nil, store.ErrTeacherNotFound
}

// CreateTeacher inserts a new teacher.
func (s *Store) CreateTeacher(_ context.Context, t *model.Teacher) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.teachers {
		if existing.Code == t.Code {
			return store.ErrDuplicateTeacherCode
		}
	}
	t.ID = s.allocID()
	s.teachers = append(s.teachers, *t)
	return nil
}

// CountTeachers reports how many teachers exist.
func (s *Store) CountTeachers(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.teachers), nil
}

// CreateExam appends the exam and its tree in input order.
func (s *Store) CreateExam(_ context.Context, exam *model.Exam, questions []model.QuestionInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exam.ID = s.allocID()
	exam.CreatedAt = s.clock()
	s.exams = append(s.exams, *exam)

	for _, q := range questions {
		question := model.Question{
			ID:     s.allocID(),
			ExamID: exam.ID,
			Text:   q.Text,
			Score:  q.Score,
		}
		s.questions = append(s.questions, question)
		for _, c := range q.Choices {
			s.choices = append(s.choices, model.Choice{
				ID:         s.allocID(),
				QuestionID: question.ID,
				Text:       c.Text,
				IsCorrect:  c.IsCorrect,
			})
		}
	}
	return nil
}

// ListExamsByTeacher returns a teacher's exams, newest first.
func (s *Store) ListExamsByTeacher(_ context.Context, teacherID int64) ([]model.Exam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exams []model.Exam
	for _, e := range s.exams {
		if e.TeacherID == teacherID {
			exams = append(exams, e)
		}
	}
	sortNewestFirst(exams)
	return exams, nil
}

// ListExamsFor returns the exams exactly matching class, subject and month.
func (s *Store) ListExamsFor(_ context.Context, class, subject, month string) ([]model.Exam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exams []model.Exam
	for _, e := range s.exams {
		if e.Class == class && e.Subject == subject && e.Month == month {
			exams = append(exams, e)
		}
	}
	sortNewestFirst(exams)
	return exams, nil
}

// GetFullExam reconstitutes the exam tree in insertion order.
func (s *Store) GetFullExam(_ context.Context, examID int64) (*model.FullExam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	full := &model.FullExam{Questions: []model.QuestionWithChoices{}}
	found := false
	for _, e := range s.exams {
		if e.ID == examID {
			full.Exam = e
			found = true
			break
		}
	}
	if !found {
		return nil, store.ErrExamNotFound
	}

	for _, q := range s.questions {
		if q.ExamID != examID {
			continue
		}
		qc := model.QuestionWithChoices{Question: q, Choices: []model.Choice{}}
		for _, c := range s.choices {
			if c.QuestionID == q.ID {
				qc.Choices = append(qc.Choices, c)
			}
		}
		full.Questions = append(full.Questions, qc)
	}
	return full, nil
}

// ListExamIDs returns every exam id, oldest first.
func (s *Store) ListExamIDs(_ context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.exams))
	for _, e := range s.exams {
		ids = append(ids, e.ID)
	}
	return ids, nil
}

// RecordSubmission resolves the student and appends the answer rows, checking
// each answer against the exam's question/choice sets first. A rejected
// submission writes no answers; the student row, like in the postgres
// implementation, is resolved regardless.
func (s *Store) RecordSubmission(_ context.Context, studentName, studentClass string, examID int64, answers []model.AnswerInput) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	studentID := s.resolveStudentLocked(studentName, studentClass)

	examExists := false
	for _, e := range s.exams {
		if e.ID == examID {
			examExists = true
			break
		}
	}
	if !examExists {
		return 0, store.ErrExamNotFound
	}

	examQuestions := make(map[int64]bool)
	for _, q := range s.questions {
		if q.ExamID == examID {
			examQuestions[q.ID] = true
		}
	}
	choiceToQuestion := make(map[int64]int64)
	for _, c := range s.choices {
		if examQuestions[c.QuestionID] {
			choiceToQuestion[c.ID] = c.QuestionID
		}
	}
	for _, a := range answers {
		if !examQuestions[a.QuestionID] {
			return 0, store.ErrQuestionNotInExam
		}
		if choiceToQuestion[a.ChoiceID] != a.QuestionID {
			return 0, store.ErrChoiceNotInQuestion
		}
	}

	for _, a := range answers {
		s.answers = append(s.answers, model.Answer{
			ID:         s.allocID(),
			StudentID:  studentID,
			ExamID:     examID,
			QuestionID: a.QuestionID,
			ChoiceID:   a.ChoiceID,
		})
	}
	return studentID, nil
}

// Answers returns a copy of every recorded answer. Test helper.
func (s *Store) Answers() []model.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

func sortNewestFirst(exams []model.Exam) {
	sort.SliceStable(exams, func(i, j int) bool {
		if !exams[i].CreatedAt.Equal(exams[j].CreatedAt) {
			return exams[i].CreatedAt.After(exams[j].CreatedAt)
		}
		return exams[i].ID > exams[j].ID
	})
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/madrasaty/exam-backend/internal/model"
	"github.com/madrasaty/exam-backend/internal/store"
)

// ResolveStudent returns the id for (name, class), inserting a row if the
// pair is new. The upsert leans on the UNIQUE (name, class) constraint so two
// racing calls cannot create duplicate students; the DO UPDATE no-op makes
// RETURNING yield the existing id on conflict.
func (s *Store) ResolveStudent(ctx context.Context, name, class string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO students (name, class) VALUES ($1, $2)
		 ON CONFLICT (name, class) DO UPDATE SET name = EXCLUDED.name
		 RETURNING student_id`, name, class,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetTeacherByCode retrieves a teacher by its unique login code.
func (s *Store) GetTeacherByCode(ctx context.Context, code string) (*model.Teacher, error) {
	t := &model.Teacher{Code: code}
	err := s.pool.QueryRow(ctx,
		`SELECT teacher_id, name FROM teachers WHERE code = $1`, code,
	).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrTeacherNotFound
		}
		return nil, err
	}
	return t, nil
}

// CreateTeacher inserts a new teacher.
func (s *Store) CreateTeacher(ctx context.Context, t *model.Teacher) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO teachers (name, code) VALUES ($1, $2) RETURNING teacher_id`,
		t.Name, t.Code,
	).Scan(&t.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.ErrDuplicateTeacherCode
		}
		return err
	}
	return nil
}

// CountTeachers reports how many teachers exist.
func (s *Store) CountTeachers(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
)

type PgxStudentRepository struct {
	BaseRepository
}

func newPgxStudentRepository(db *pgxpool.Pool) portsrepo.StudentRepository {
	return &PgxStudentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.StudentRepository = (*PgxStudentRepository)(nil)

const studentColumns = `student_id, code, full_name, email, major, created_at`

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var s domain.Student
	err := row.Scan(
		&s.StudentID,
		&s.Code,
		&s.FullName,
		&s.Email,
		&s.Major,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan student row: %w", err)
	}
	return &s, nil
}

func (r *PgxStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	query := `
        INSERT INTO students (student_id, code, full_name, email, major, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		student.StudentID,
		student.Code,
		student.FullName,
		student.Email,
		student.Major,
		student.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("student code taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save student: %w", err)
	}
	return nil
}

func (r *PgxStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1;`
	return scanStudent(r.Pool.QueryRow(ctx, query, studentID))
}

func (r *PgxStudentRepository) FindStudentByCode(ctx context.Context, code string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE code = $1;`
	return scanStudent(r.Pool.QueryRow(ctx, query, code))
}

func (r *PgxStudentRepository) FindStudents(ctx context.Context, limit, offset int, keyword string) ([]domain.Student, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + studentColumns + ` FROM students`
	args := []interface{}{}
	argPos := 1
	if keyword != "" {
		query += fmt.Sprintf(" WHERE full_name ILIKE $%d OR code ILIKE $%d", argPos, argPos)
		args = append(args, "%"+keyword+"%")
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", rows.Err())
	}
	return students, nil
}

func (r *PgxStudentRepository) UpdateStudent(ctx context.Context, student domain.Student) error {
	query := `
        UPDATE students
        SET full_name = $1, email = $2, major = $3
        WHERE student_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		student.FullName,
		student.Email,
		student.Major,
		student.StudentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("student not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxStudentRepository) DeleteStudent(ctx context.Context, studentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1;`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("student not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// StudentRepository persists student records.
type StudentRepository interface {
	SaveStudent(ctx context.Context, student domain.Student) error
	FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	FindStudentByCode(ctx context.Context, code string) (*domain.Student, error)
	FindStudents(ctx context.Context, limit, offset int, keyword string) ([]domain.Student, error)
	UpdateStudent(ctx context.Context, student domain.Student) error
	DeleteStudent(ctx context.Context, studentID string) error
}

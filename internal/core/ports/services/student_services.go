package services

import (
	"context"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
)

// StudentSvcFacade defines the student registry operations.
type StudentSvcFacade interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error)
	GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context, limit, offset int, keyword string) ([]domain.Student, error)
	UpdateStudent(ctx context.Context, studentID string, req dto.UpdateStudentRequest) (*domain.Student, error)
	DeleteStudent(ctx context.Context, studentID string) error
}

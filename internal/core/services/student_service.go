package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
)

type studentService struct {
	studentRepo portsrepo.StudentRepository
}

// NewStudentService creates a new studentService.
func NewStudentService(studentRepo portsrepo.StudentRepository) portssvc.StudentSvcFacade {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
	if _, err := s.studentRepo.FindStudentByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("student code %s is taken: %w", req.Code, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check student code availability: %w", err)
	}

	student := domain.Student{
		StudentID: uuid.NewString(),
		Code:      req.Code,
		FullName:  req.FullName,
		Email:     req.Email,
		Major:     req.Major,
		CreatedAt: time.Now(),
	}

	if err := s.studentRepo.SaveStudent(ctx, student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	return s.studentRepo.FindStudentByID(ctx, studentID)
}

func (s *studentService) ListStudents(ctx context.Context, limit, offset int, keyword string) ([]domain.Student, error) {
	return s.studentRepo.FindStudents(ctx, limit, offset, keyword)
}

func (s *studentService) UpdateStudent(ctx context.Context, studentID string, req dto.UpdateStudentRequest) (*domain.Student, error) {
	student, err := s.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	student.FullName = req.FullName
	student.Email = req.Email
	student.Major = req.Major

	if err := s.studentRepo.UpdateStudent(ctx, *student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, studentID string) error {
	return s.studentRepo.DeleteStudent(ctx, studentID)
}

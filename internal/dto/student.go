package dto

import (
	"time"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// CreateStudentRequest carries the fields for creating a student.
type CreateStudentRequest struct {
	Code     string `json:"code" binding:"required,max=20"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Major    string `json:"major"`
}

// UpdateStudentRequest carries the mutable student fields.
type UpdateStudentRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Major    string `json:"major"`
}

// ListStudentsParams defines query parameters for listing students.
type ListStudentsParams struct {
	Limit   int    `form:"limit,default=20"`
	Offset  int    `form:"offset,default=0"`
	Keyword string `form:"keyword"`
}

// StudentResponse is the outward view of a student.
type StudentResponse struct {
	StudentID string    `json:"studentID"`
	Code      string    `json:"code"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Major     string    `json:"major"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID: s.StudentID,
		Code:      s.Code,
		FullName:  s.FullName,
		Email:     s.Email,
		Major:     s.Major,
		CreatedAt: s.CreatedAt,
	}
}

// ListStudentsResponse wraps a page of students.
type ListStudentsResponse struct {
	Students []StudentResponse `json:"students"`
}

func ToListStudentsResponse(students []domain.Student) ListStudentsResponse {
	responses := make([]StudentResponse, len(students))
	for i := range students {
		responses[i] = ToStudentResponse(&students[i])
	}
	return ListStudentsResponse{Students: responses}
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
	"github.com/stackforge-labs/webapp_suite/internal/middleware"
)

// studentHandler handles HTTP requests for the student registry.
type studentHandler struct {
	studentService portssvc.StudentSvcFacade
}

// newStudentHandler creates a new studentHandler.
func newStudentHandler(ss portssvc.StudentSvcFacade) *studentHandler {
	return &studentHandler{studentService: ss}
}

// registerStudentRoutes registers all student-related routes.
func registerStudentRoutes(rg *gin.RouterGroup, ss portssvc.StudentSvcFacade) {
	h := newStudentHandler(ss)

	students := rg.Group("/students")
	{
		students.POST("", h.createStudent)
		students.GET("", h.listStudents)
		students.GET("/:id", h.getStudent)
		students.PUT("/:id", h.updateStudent)
		students.DELETE("/:id", h.deleteStudent)
	}
}

// createStudent godoc
// @Summary Create a student
// @Tags students
// @Accept  json
// @Produce  json
// @Param   student body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Code taken"
// @Security BearerAuth
// @Router /students [post]
func (h *studentHandler) createStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Student creation failed", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create student")
		return
	}

	logger.Info("Student created", slog.String("student_id", student.StudentID))
	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// listStudents godoc
// @Summary List students
// @Description Supports a keyword filter over name and code
// @Tags students
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Param   keyword query string false "Keyword over name and code"
// @Success 200 {object} dto.ListStudentsResponse
// @Security BearerAuth
// @Router /students [get]
func (h *studentHandler) listStudents(c *gin.Context) {
	var params dto.ListStudentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	students, err := h.studentService.ListStudents(c.Request.Context(), params.Limit, params.Offset, params.Keyword)
	if err != nil {
		respondError(c, err, "Failed to list students")
		return
	}

	c.JSON(http.StatusOK, dto.ToListStudentsResponse(students))
}

// getStudent godoc
// @Summary Get a student by ID
// @Tags students
// @Produce  json
// @Param   id path string true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *studentHandler) getStudent(c *gin.Context) {
	student, err := h.studentService.GetStudentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve student")
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// updateStudent godoc
// @Summary Update a student
// @Description Student code is immutable; all other fields are replaced
// @Tags students
// @Accept  json
// @Produce  json
// @Param   id path string true "Student ID"
// @Param   student body dto.UpdateStudentRequest true "Student fields"
// @Success 200 {object} dto.StudentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /students/{id} [put]
func (h *studentHandler) updateStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		logger.Warn("Student update failed", slog.String("student_id", c.Param("id")), slog.String("error", err.Error()))
		respondError(c, err, "Failed to update student")
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// deleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce  json
// @Param   id path string true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Security BearerAuth
// @Router /students/{id} [delete]
func (h *studentHandler) deleteStudent(c *gin.Context) {
	if err := h.studentService.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete student")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted"})
}

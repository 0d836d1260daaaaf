package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/utils"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

// ErrorResponse is the error body shape shared by every endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}

type StudentHandler struct {
	store     *MemStore
	validator *validator.Validator
	logger    utils.Logger
}

func NewStudentHandler(store *MemStore, v *validator.Validator, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		store:     store,
		validator: v,
		logger:    logger,
	}
}

// ListStudents returns every student record.
// @Router /api/students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListStudents())
}

// CreateStudent adds a student; the store assigns the id.
// @Router /api/students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req validator.StudentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if errs := h.validator.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: errs.Error()})
		return
	}

	created := h.store.CreateStudent(models.Student{
		Name:      req.Name,
		Email:     req.Email,
		Major:     req.Major,
		Year:      req.Year,
		StudentID: req.StudentID,
	})

	h.logger.Info("student created", "id", created.ID)
	c.JSON(http.StatusCreated, created)
}

// UpdateStudent replaces the full record keyed by id.
// @Router /api/students/:id [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req validator.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if errs := h.validator.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: errs.Error()})
		return
	}

	updated, ok := h.store.UpdateStudent(c.Param("id"), models.Student{
		Name:      req.Name,
		Email:     req.Email,
		Major:     req.Major,
		Year:      req.Year,
		StudentID: req.StudentID,
	})
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "student not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteStudent removes a student by id, or 404.
// @Router /api/students/:id [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteStudent(id) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "student not found"})
		return
	}

	h.logger.Info("student deleted", "id", id)
	c.Status(http.StatusNoContent)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a student by email and external student number.
// @Router /api/students/login [post]
func (h *StudentHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	student, ok := h.store.FindStudentByEmail(req.Email)
	if !ok || student.StudentID == "" || student.StudentID != req.Password {
		h.logger.Warn("student login rejected", "email", req.Email)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid email or student ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": student})
}

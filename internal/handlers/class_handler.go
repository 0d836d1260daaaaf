package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
	"github.com/Avishake00/schl-scheduler-frontend/internal/utils"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

type ClassHandler struct {
	store     *MemStore
	validator *validator.Validator
	logger    utils.Logger
}

func NewClassHandler(store *MemStore, v *validator.Validator, logger utils.Logger) *ClassHandler {
	return &ClassHandler{
		store:     store,
		validator: v,
		logger:    logger,
	}
}

// ListClasses returns every scheduled class.
// @Router /api/classes [get]
func (h *ClassHandler) ListClasses(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListClasses())
}

// GetClass returns one class by id, or 404.
// @Router /api/classes/:id [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	class, ok := h.store.GetClass(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "class not found"})
		return
	}
	c.JSON(http.StatusOK, class)
}

// ListClassesByDate filters by exact calendar date.
// @Router /api/classes/date/:date [get]
func (h *ClassHandler) ListClassesByDate(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListClassesByDate(c.Param("date")))
}

// ListClassesForStudent filters by roster membership.
// @Router /api/classes/student/:id [get]
func (h *ClassHandler) ListClassesForStudent(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListClassesForStudent(c.Param("id")))
}

// ListClassesForStudentOnDate filters by roster membership and date.
// @Router /api/classes/student/:id/date/:date [get]
func (h *ClassHandler) ListClassesForStudentOnDate(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListClassesForStudentOnDate(c.Param("id"), c.Param("date")))
}

// CreateClass schedules a class; the store assigns the id.
// @Router /api/classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req validator.ClassCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if errs := h.validator.Validate(&req); errs != nil {
		h.logger.Warn("rejected class payload", "error", errs.Error())
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: errs.Error()})
		return
	}

	created := h.store.CreateClass(models.Class{
		Subject:     req.Subject,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		TeacherID:   req.TeacherID,
		StudentIDs:  req.StudentIDs,
		Room:        req.Room,
		Description: req.Description,
		Category:    models.ClassCategory(req.Category),
		Materials:   req.Materials,
	})

	h.logger.Info("class created", "id", created.ID, "subject", created.Subject)
	c.JSON(http.StatusCreated, created)
}

// DeleteClass removes a class by id, or 404.
// @Router /api/classes/:id [delete]
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteClass(id) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "class not found"})
		return
	}

	h.logger.Info("class deleted", "id", id)
	c.Status(http.StatusNoContent)
}

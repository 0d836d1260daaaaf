package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Avishake00/schl-scheduler-frontend/internal/utils"
	"github.com/Avishake00/schl-scheduler-frontend/internal/validator"
)

// SetupRouter builds the mock backend: every endpoint the client consumes,
// served from the in-memory store.
func SetupRouter(store *MemStore, v *validator.Validator, logger utils.Logger) *gin.Engine {
	router := gin.New()
	SetupMiddleware(router, logger)

	classHandler := NewClassHandler(store, v, logger)
	studentHandler := NewStudentHandler(store, v, logger)

	api := router.Group("/api")
	{
		classes := api.Group("/classes")
		{
			classes.GET("", classHandler.ListClasses)
			classes.GET("/:id", classHandler.GetClass)
			classes.GET("/date/:date", classHandler.ListClassesByDate)
			classes.GET("/student/:id", classHandler.ListClassesForStudent)
			classes.GET("/student/:id/date/:date", classHandler.ListClassesForStudentOnDate)
			classes.POST("", classHandler.CreateClass)
			classes.DELETE("/:id", classHandler.DeleteClass)
		}

		students := api.Group("/students")
		{
			students.GET("", studentHandler.ListStudents)
			students.POST("", studentHandler.CreateStudent)
			students.PUT("/:id", studentHandler.UpdateStudent)
			students.DELETE("/:id", studentHandler.DeleteStudent)
			students.POST("/login", studentHandler.Login)
		}
	}

	return router
}

package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires every route of the report server.
func NewRouter(h *Handler, allowOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Logger(logger, h.svc.Generation))
	r.Use(CORS(allowOrigins))

	r.GET("/health", h.Health)
	r.GET("/semesters", h.Semesters)
	r.GET("/courses", h.Courses)
	r.GET("/teachers", h.Teachers)
	r.GET("/unassigned", h.Unassigned)
	r.GET("/faculties", h.Faculties)
	r.POST("/sections/filter", h.FilterSections)
	r.POST("/classrooms/filter", h.FilterClassrooms)
	r.GET("/admitted", h.Admitted)
	r.GET("/directory", h.Directory)
	r.GET("/resources", h.Resources)
	r.GET("/audit", h.Audit)
	r.POST("/reload", h.Reload)

	reports := r.Group("/reports")
	{
		reports.POST("", h.CreateReport)
		reports.GET("", h.ListReports)
		reports.GET("/:id", h.GetReport)
		reports.DELETE("/:id", h.DeleteReport)
	}
	return r
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rhyrak/go-dashboard/internal/csvio"
	"github.com/rhyrak/go-dashboard/internal/dashboard"
	"github.com/rhyrak/go-dashboard/internal/store"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// ReportRepo persists generated reports.
type ReportRepo interface {
	Save(ctx context.Context, kind string, params, payload any) (*store.Report, error)
	Get(ctx context.Context, id string) (*store.Report, error)
	List(ctx context.Context) ([]store.Report, error)
	Delete(ctx context.Context, id string) error
}

// Handler serves the dashboard views and the report store over HTTP.
type Handler struct {
	svc     *dashboard.Service
	reports ReportRepo
	loader  dashboard.Loader
	logger  *zap.Logger
}

// NewHandler wires a handler; loader is used by Reload.
func NewHandler(svc *dashboard.Service, reports ReportRepo, loader dashboard.Loader, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, reports: reports, loader: loader, logger: logger}
}

// render replies with JSON, or with CSV when the query asks for
// format=csv. rows must be a slice of csv-tagged structs for CSV.
func render(c *gin.Context, rows any) {
	if strings.EqualFold(c.Query("format"), "csv") {
		out, err := csvio.ExportString(rows)
		if err != nil {
			Fail(c, err)
			return
		}
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
		return
	}
	OK(c, rows)
}

// bindOptionalJSON decodes the body into dst; an empty body leaves dst
// untouched.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Health reports liveness and the snapshot generation.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "generation": h.svc.Generation()})
}

// Semesters lists section semesters, latest first.
func (h *Handler) Semesters(c *gin.Context) {
	OK(c, h.svc.Semesters())
}

// Courses serves the course summary; query: semester, capacityBonus.
func (h *Handler) Courses(c *gin.Context) {
	var q dashboard.CourseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, err.Error())
		return
	}
	render(c, h.svc.Courses(q))
}

// Teachers serves the teaching load per teacher.
func (h *Handler) Teachers(c *gin.Context) {
	render(c, h.svc.Teachers(c.Query("semester")))
}

// Unassigned serves sections without a teacher.
func (h *Handler) Unassigned(c *gin.Context) {
	render(c, h.svc.Unassigned(c.Query("semester")))
}

// Faculties serves the faculty rollup.
func (h *Handler) Faculties(c *gin.Context) {
	render(c, h.svc.Faculties(c.Query("semester")))
}

// FilterSections applies a SectionFilter body; an empty body matches all.
func (h *Handler) FilterSections(c *gin.Context) {
	var f model.SectionFilter
	if err := bindOptionalJSON(c, &f); err != nil {
		BadRequest(c, err.Error())
		return
	}
	render(c, h.svc.Sections(f))
}

// FilterClassrooms applies a ClassroomFilter body.
func (h *Handler) FilterClassrooms(c *gin.Context) {
	var f model.ClassroomFilter
	if err := bindOptionalJSON(c, &f); err != nil {
		BadRequest(c, err.Error())
		return
	}
	render(c, h.svc.Classrooms(f))
}

// Admitted serves the admitted-but-unregistered report.
func (h *Handler) Admitted(c *gin.Context) {
	var q dashboard.AdmittedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, err.Error())
		return
	}
	OK(c, h.svc.Admitted(q))
}

// Directory serves the merged student directory.
func (h *Handler) Directory(c *gin.Context) {
	var q dashboard.AdmittedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, err.Error())
		return
	}
	render(c, h.svc.Directory(q))
}

// Resources serves the room slot analysis.
func (h *Handler) Resources(c *gin.Context) {
	var q dashboard.ResourceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		BadRequest(c, err.Error())
		return
	}
	OK(c, h.svc.Resources(q))
}

// Audit serves the data checks.
func (h *Handler) Audit(c *gin.Context) {
	OK(c, h.svc.Audit())
}

// Reload rereads the snapshot. The old one stays on failure.
func (h *Handler) Reload(c *gin.Context) {
	if err := h.svc.Reload(c.Request.Context(), h.loader); err != nil {
		_ = c.Error(err)
		ErrorWithDetails(c, http.StatusInternalServerError, CodeReloadFailed, "reload failed", err.Error())
		return
	}
	OK(c, gin.H{"generation": h.svc.Generation()})
}

type createReportRequest struct {
	Kind   string          `json:"kind" binding:"required"`
	Params json.RawMessage `json:"params"`
}

// CreateReport generates a view and stores it.
func (h *Handler) CreateReport(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	payload, err := h.svc.GenerateJSON(req.Kind, req.Params)
	if err != nil {
		if errors.Is(err, dashboard.ErrUnknownReport) {
			Fail(c, err)
			return
		}
		BadRequest(c, err.Error())
		return
	}

	params := req.Params
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}
	report, err := h.reports.Save(c.Request.Context(), req.Kind, params, payload)
	if err != nil {
		Fail(c, err)
		return
	}
	h.logger.Info("report saved", zap.String("id", report.ID), zap.String("kind", report.Kind))
	Created(c, report)
}

// ListReports lists saved reports without payloads, newest first.
func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, reports)
}

// GetReport returns one saved report with its payload.
func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.reports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, report)
}

// DeleteReport removes a saved report.
func (h *Handler) DeleteReport(c *gin.Context) {
	if err := h.reports.Delete(c.Request.Context(), c.Param("id")); err != nil {
		Fail(c, err)
		return
	}
	OK(c, gin.H{"id": c.Param("id")})
}

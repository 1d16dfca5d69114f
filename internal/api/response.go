package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhyrak/go-dashboard/internal/dashboard"
	"github.com/rhyrak/go-dashboard/internal/store"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details string      `json:"details,omitempty"`
}

// Error codes.
const (
	CodeOK           = 0
	CodeBadRequest   = 40000
	CodeNotFound     = 40400
	CodeInternal     = 50000
	CodeReloadFailed = 50001
)

// OK replies 200 with data in the envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: CodeOK, Message: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: CodeOK, Message: "success", Data: data})
}

func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{Code: code, Message: message})
}

func ErrorWithDetails(c *gin.Context, httpStatus int, code int, message, details string) {
	c.JSON(httpStatus, Response{Code: code, Message: message, Details: details})
}

func BadRequest(c *gin.Context, details string) {
	ErrorWithDetails(c, http.StatusBadRequest, CodeBadRequest, "bad request", details)
}

// Fail maps err to a status code and records it on the context for the
// request logger.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, store.ErrReportNotFound):
		ErrorWithDetails(c, http.StatusNotFound, CodeNotFound, "not found", err.Error())
	case errors.Is(err, dashboard.ErrUnknownReport):
		BadRequest(c, err.Error())
	default:
		Error(c, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

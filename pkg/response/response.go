// Package response writes the uniform JSON envelope used by every endpoint:
// {success, message, data?, error?} plus pagination on list endpoints.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursehub/pkg/apperr"
)

type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes totalPages = ceil(total/limit).
func NewPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

func Success(c *gin.Context, status int, message string, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func Paginated(c *gin.Context, message string, data any, p *Pagination) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Pagination: p})
}

func Fail(c *gin.Context, status int, message, code string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, Envelope{Success: false, Message: message, Error: code})
}

// FailValidation reports binding failures with field details in data.
func FailValidation(c *gin.Context, details any) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation failed",
		Error:   "VALIDATION_ERROR",
		Data:    details,
	})
}

// FromError maps a tagged service error onto the envelope. Internal causes
// are replaced with a generic message; callers log them separately.
func FromError(c *gin.Context, err error) {
	c.JSON(StatusOf(err), Envelope{
		Success: false,
		Message: apperr.MessageOf(err),
		Error:   apperr.CodeOf(err),
	})
}

// StatusOf selects the HTTP status for a tagged error kind.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"coursehub/pkg/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return env
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, http.StatusCreated, "Course created successfully", gin.H{"id": "c-1"})
	})
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d", w.Code)
	}
	env := decode(t, w)
	if !env.Success || env.Message != "Course created successfully" {
		t.Errorf("envelope = %+v", env)
	}
	if env.Error != "" {
		t.Error("success envelope must omit error")
	}
}

func TestFailEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Fail(c, http.StatusForbidden, "Insufficient permissions", "INSUFFICIENT_PERMISSIONS")
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d", w.Code)
	}
	env := decode(t, w)
	if env.Success {
		t.Error("success must be false")
	}
	if env.Error != "INSUFFICIENT_PERMISSIONS" {
		t.Errorf("error = %s", env.Error)
	}
}

func TestFromErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.Validation("INVALID_ROLE", "bad role"), http.StatusBadRequest},
		{apperr.Unauthorized("INVALID_CREDENTIALS", "nope"), http.StatusUnauthorized},
		{apperr.Forbidden("INSUFFICIENT_PERMISSIONS", "nope"), http.StatusForbidden},
		{apperr.NotFound("COURSE_NOT_FOUND", "missing"), http.StatusNotFound},
		{apperr.Conflict("EMAIL_ALREADY_EXISTS", "dupe"), http.StatusConflict},
		{errors.New("pq: connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := record(func(c *gin.Context) { FromError(c, tc.err) })
		if w.Code != tc.want {
			t.Errorf("FromError(%v) status = %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}

func TestFromErrorHidesInternalCause(t *testing.T) {
	w := record(func(c *gin.Context) {
		FromError(c, errors.New("dial tcp 10.0.0.5:5432: connect refused"))
	})
	env := decode(t, w)
	if env.Message != "internal server error" {
		t.Errorf("message = %q, internal detail must not leak", env.Message)
	}
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
	}
	for _, tc := range cases {
		p := NewPagination(1, tc.limit, tc.total)
		if p.TotalPages != tc.want {
			t.Errorf("total=%d limit=%d totalPages=%d, want %d", tc.total, tc.limit, p.TotalPages, tc.want)
		}
	}
}

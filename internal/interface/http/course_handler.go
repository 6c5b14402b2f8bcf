package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"coursehub/internal/application"
	"coursehub/internal/domain/entity"
	"coursehub/internal/interface/middleware"
	"coursehub/pkg/response"
	"coursehub/pkg/validation"
)

type CourseHandler struct {
	Svc    *application.CourseService
	Logger *logrus.Logger
}

func NewCourseHandler(svc *application.CourseService, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{Svc: svc, Logger: logger}
}

type createCourseRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=200"`
	Description string   `json:"description" binding:"required,min=10,max=2000"`
	Content     string   `json:"content" binding:"omitempty"`
	Duration    int      `json:"duration" binding:"required,gte=1"`
	Price       float64  `json:"price" binding:"gte=0"`
	MaxStudents int      `json:"maxStudents" binding:"omitempty,gte=1,lte=1000"`
	Thumbnail   string   `json:"thumbnail" binding:"omitempty,url"`
	CategoryIDs []string `json:"categoryIds" binding:"omitempty,dive,uuid"`
}

type updateCourseRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=200"`
	Description *string  `json:"description" binding:"omitempty,min=10,max=2000"`
	Content     *string  `json:"content"`
	Duration    *int     `json:"duration" binding:"omitempty,gte=1"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	MaxStudents *int     `json:"maxStudents" binding:"omitempty,gte=1,lte=1000"`
	Thumbnail   *string  `json:"thumbnail" binding:"omitempty,url"`
	Status      *string  `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	CategoryIDs []string `json:"categoryIds" binding:"omitempty,dive,uuid"`
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func identity(c *gin.Context) (string, entity.Role) {
	return c.GetString(middleware.CtxUserID), entity.Role(c.GetString(middleware.CtxUserRole))
}

// List GET /api/courses — published courses only
func (h *CourseHandler) List(c *gin.Context) {
	courses, page, limit, total, err := h.Svc.List(c.Request.Context(), application.ListParams{
		Page:       intQuery(c, "page", 0),
		Limit:      intQuery(c, "limit", 0),
		Search:     c.Query("search"),
		CategoryID: c.Query("category"),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, "Courses retrieved successfully", gin.H{"courses": courses}, response.NewPagination(page, limit, total))
}

// Get GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Course retrieved successfully", gin.H{"course": course})
}

// Create POST /api/courses (instructor or admin)
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, validation.ToDetails(err))
		return
	}

	uid, _ := identity(c)
	course, err := h.Svc.Create(c.Request.Context(), application.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Duration:    req.Duration,
		Price:       req.Price,
		MaxStudents: req.MaxStudents,
		Thumbnail:   req.Thumbnail,
		CategoryIDs: req.CategoryIDs,
	}, uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Course created successfully", gin.H{"course": course})
}

// Update PUT /api/courses/:id (owner or admin)
func (h *CourseHandler) Update(c *gin.Context) {
	var req updateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, validation.ToDetails(err))
		return
	}

	in := application.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Duration:    req.Duration,
		Price:       req.Price,
		MaxStudents: req.MaxStudents,
		Thumbnail:   req.Thumbnail,
		CategoryIDs: req.CategoryIDs,
	}
	if req.Status != nil {
		status := entity.CourseStatus(*req.Status)
		in.Status = &status
	}

	uid, role := identity(c)
	course, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in, uid, role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Course updated successfully", gin.H{"course": course})
}

// Delete DELETE /api/courses/:id (owner or admin)
func (h *CourseHandler) Delete(c *gin.Context) {
	uid, role := identity(c)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid, role); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Course deleted successfully", nil)
}

// Publish POST /api/courses/:id/publish (owner or admin)
func (h *CourseHandler) Publish(c *gin.Context) {
	uid, role := identity(c)
	course, err := h.Svc.Publish(c.Request.Context(), c.Param("id"), uid, role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Course published successfully", gin.H{"course": course})
}

// Archive POST /api/courses/:id/archive (owner or admin)
func (h *CourseHandler) Archive(c *gin.Context) {
	uid, role := identity(c)
	course, err := h.Svc.Archive(c.Request.Context(), c.Param("id"), uid, role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Course archived successfully", gin.H{"course": course})
}

// MyCourses GET /api/instructor/courses (instructor or admin)
func (h *CourseHandler) MyCourses(c *gin.Context) {
	uid, _ := identity(c)
	courses, page, limit, total, err := h.Svc.InstructorCourses(c.Request.Context(), uid, intQuery(c, "page", 0), intQuery(c, "limit", 0))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, "Courses retrieved successfully", gin.H{"courses": courses}, response.NewPagination(page, limit, total))
}

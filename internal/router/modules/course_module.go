package modules

import (
	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/entity"
	handlers "coursehub/internal/interface/http"
	"coursehub/internal/interface/middleware"
	"coursehub/pkg/helpers"
)

type CourseModule struct {
	Handler *handlers.CourseHandler
	JWT     *helpers.JWTManager
}

func NewCourseModule(h *handlers.CourseHandler, jwt *helpers.JWTManager) *CourseModule {
	return &CourseModule{Handler: h, JWT: jwt}
}

func (m *CourseModule) Register(rg *gin.RouterGroup) {
	// Public catalog
	rg.GET("/courses", m.Handler.List)
	rg.GET("/courses/:id", m.Handler.Get)

	// Instructor/admin endpoints. The instructor listing lives under
	// /instructor/courses because a static /courses/instructor segment
	// would conflict with the :id wildcard.
	manage := rg.Group("/courses")
	manage.Use(middleware.Auth(m.JWT))
	manage.Use(middleware.RequireRoles(entity.RoleInstructor, entity.RoleAdmin))
	{
		manage.POST("", m.Handler.Create)
		manage.PUT("/:id", m.Handler.Update)
		manage.DELETE("/:id", m.Handler.Delete)
		manage.POST("/:id/publish", m.Handler.Publish)
		manage.POST("/:id/archive", m.Handler.Archive)
	}

	mine := rg.Group("/instructor/courses")
	mine.Use(middleware.Auth(m.JWT))
	mine.Use(middleware.RequireRoles(entity.RoleInstructor, entity.RoleAdmin))
	{
		mine.GET("", m.Handler.MyCourses)
	}
}

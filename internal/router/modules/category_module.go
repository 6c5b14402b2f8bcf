package modules

import (
	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/entity"
	handlers "coursehub/internal/interface/http"
	"coursehub/internal/interface/middleware"
	"coursehub/pkg/helpers"
)

type CategoryModule struct {
	Handler *handlers.CategoryHandler
	JWT     *helpers.JWTManager
}

func NewCategoryModule(h *handlers.CategoryHandler, jwt *helpers.JWTManager) *CategoryModule {
	return &CategoryModule{Handler: h, JWT: jwt}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", m.Handler.List)
	rg.GET("/categories/:id", m.Handler.Get)

	admin := rg.Group("/categories")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireRoles(entity.RoleAdmin))
	{
		admin.POST("", m.Handler.Create)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}

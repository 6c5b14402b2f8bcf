package modules

import (
	"github.com/gin-gonic/gin"

	handlers "coursehub/internal/interface/http"
)

type SystemModule struct {
	Handler *handlers.SystemHandler
}

func NewSystemModule(h *handlers.SystemHandler) *SystemModule {
	return &SystemModule{Handler: h}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("", m.Handler.Index)
}

package home

import (
	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/go-nextapp/internal/app/domain"
	"github.com/FACorreiaa/go-nextapp/internal/app/models"
)

type HomeHandlers struct {
	*domain.BaseHandler
}

func NewHomeHandlers(base *domain.BaseHandler) *HomeHandlers {
	return &HomeHandlers{BaseHandler: base}
}

func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	h.RenderPage(c, models.RouteHome, "Home")
}

package handler

import (
	"net/http"

	"kiosco/internal/middleware"
	"kiosco/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen always answers 200; failed metrics come back as zero.
func (h *DashboardHandler) Resumen(c *gin.Context) {
	nombre := ""
	if sesion := middleware.GetSesion(c); sesion != nil {
		nombre = sesion.User
	}
	c.JSON(http.StatusOK, h.svc.Resumen(c.Request.Context(), nombre))
}

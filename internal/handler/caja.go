package handler

import (
	"net/http"

	"kiosco/internal/dto"
	"kiosco/internal/middleware"
	"kiosco/internal/service"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

func (h *CajaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Abrir opens a till in the name of the logged-in operator.
func (h *CajaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	operador := ""
	if sesion := middleware.GetSesion(c); sesion != nil {
		operador = sesion.User
	}
	resp, err := h.svc.Abrir(c.Request.Context(), operador, req)
	if err != nil {
		respondError(c, err)
		return
	}
	exito(c, http.StatusCreated, "Caja abierta exitosamente", resp)
}

func (h *CajaHandler) Cerrar(c *gin.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}
	var req dto.CerrarCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cerrar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	exito(c, http.StatusOK, "Caja cerrada correctamente", resp)
}

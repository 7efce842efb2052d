package handler

import (
	"errors"
	"net/http"

	"kiosco/internal/apierror"
	"kiosco/internal/dto"
	"kiosco/internal/middleware"
	"kiosco/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Catalogo returns the clients and in-stock products offered by the sale form.
func (h *VentasHandler) Catalogo(c *gin.Context) {
	resp, err := h.svc.Catalogo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarVenta records a sale. Accepts the sale form (id_cliente,
// producto[], cantidad[]) or the equivalent JSON body.
//
//	201 sale stored
//	400 malformed lists
//	409 unknown product, product without price or not enough stock
//	500 storage failure; nothing was written
func (h *VentasHandler) RegistrarVenta(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.RegistrarVenta(c.Request.Context(), req)
	switch {
	case err == nil:
		exito(c, http.StatusCreated, "Venta registrada correctamente.", resp)
	case service.EsErrorDeVenta(err):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrDatosInvalidos):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		log.Error().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).Msg("venta: transaction rolled back")
		c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar la venta."))
	}
}

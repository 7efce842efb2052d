package service

import (
	"context"
	"time"

	"kiosco/internal/dto"
	"kiosco/internal/model"
	"kiosco/internal/repository"

	"github.com/shopspring/decimal"
)

type CajaService interface {
	Listar(ctx context.Context) ([]dto.CajaResponse, error)
	// Abrir starts a till session for operador. An empty or unparseable
	// opening amount is taken as 0.00.
	Abrir(ctx context.Context, operador string, req dto.AbrirCajaRequest) (*dto.CajaResponse, error)
	// Cerrar closes the session. An empty or unparseable closing amount is
	// stored as NULL. Closing twice re-stamps the closing fields.
	Cerrar(ctx context.Context, id uint, req dto.CerrarCajaRequest) (*dto.CajaResponse, error)
}

type cajaService struct {
	repo repository.CajaRepository
	now  func() time.Time
}

func NewCajaService(repo repository.CajaRepository) CajaService {
	return &cajaService{repo: repo, now: time.Now}
}

func (s *cajaService) Listar(ctx context.Context) ([]dto.CajaResponse, error) {
	cajas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CajaResponse, len(cajas))
	for i := range cajas {
		resp[i] = cajaToResponse(&cajas[i])
	}
	return resp, nil
}

func (s *cajaService) Abrir(ctx context.Context, operador string, req dto.AbrirCajaRequest) (*dto.CajaResponse, error) {
	monto, ok := req.MontoApertura.Decimal()
	if !ok {
		monto = decimal.Zero
	}
	caja := &model.Caja{
		FechaApertura: s.now(),
		Usuario:       operador,
		MontoApertura: monto.Round(2),
		Estado:        model.CajaAbierta,
	}
	if err := s.repo.Create(ctx, caja); err != nil {
		return nil, err
	}
	resp := cajaToResponse(caja)
	return &resp, nil
}

func (s *cajaService) Cerrar(ctx context.Context, id uint, req dto.CerrarCajaRequest) (*dto.CajaResponse, error) {
	var monto *decimal.Decimal
	if d, ok := req.MontoCierre.Decimal(); ok {
		d = d.Round(2)
		monto = &d
	}
	if err := s.repo.Cerrar(ctx, id, monto, s.now()); err != nil {
		return nil, notFound(err, ErrCajaNoEncontrada)
	}
	caja, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCajaNoEncontrada)
	}
	resp := cajaToResponse(caja)
	return &resp, nil
}

func cajaToResponse(c *model.Caja) dto.CajaResponse {
	return dto.CajaResponse{
		IDCaja:        c.IDCaja,
		FechaApertura: c.FechaApertura,
		Usuario:       c.Usuario,
		MontoApertura: c.MontoApertura,
		MontoCierre:   c.MontoCierre,
		FechaCierre:   c.FechaCierre,
		Estado:        c.Estado,
	}
}

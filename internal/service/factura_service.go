package service

import (
	"context"

	"kiosco/internal/dto"
	"kiosco/internal/infra"
	"kiosco/internal/repository"
)

type FacturaService interface {
	Listar(ctx context.Context) ([]dto.FacturaListItem, error)
	Obtener(ctx context.Context, id uint) (*dto.FacturaResponse, error)
	// PDF renders the receipt of one invoice.
	PDF(ctx context.Context, id uint) ([]byte, error)
}

type facturaService struct{ repo repository.FacturaRepository }

func NewFacturaService(repo repository.FacturaRepository) FacturaService {
	return &facturaService{repo: repo}
}

func (s *facturaService) Listar(ctx context.Context) ([]dto.FacturaListItem, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FacturaListItem, len(rows))
	for i, r := range rows {
		resp[i] = dto.FacturaListItem{
			IDFactura: r.IDFactura,
			Fecha:     r.Fecha,
			Total:     r.Total,
			Cliente:   r.Cliente,
			Ganancia:  r.Ganancia.Round(2),
		}
	}
	return resp, nil
}

func (s *facturaService) Obtener(ctx context.Context, id uint) (*dto.FacturaResponse, error) {
	cab, err := s.repo.FindCabecera(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrFacturaNoEncontrada)
	}
	detalles, err := s.repo.ListDetalles(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.FacturaResponse{
		IDFactura: cab.IDFactura,
		IDCliente: cab.IDCliente,
		Cliente:   cab.Cliente,
		Fecha:     cab.Fecha,
		Total:     cab.Total,
		Detalles:  make([]dto.DetalleFacturaResponse, len(detalles)),
	}
	for i, d := range detalles {
		resp.Detalles[i] = dto.DetalleFacturaResponse{
			IDProducto:     d.IDProducto,
			Descripcion:    d.Descripcion,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
	}
	return resp, nil
}

func (s *facturaService) PDF(ctx context.Context, id uint) ([]byte, error) {
	f, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	return infra.GenerarFacturaPDF(f)
}

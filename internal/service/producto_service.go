package service

import (
	"context"
	"strings"

	"kiosco/internal/dto"
	"kiosco/internal/model"
	"kiosco/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductoService interface {
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Crear(ctx context.Context, req dto.ProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ProductoRequest) (*dto.ProductoResponse, error)
	// Eliminar hard-deletes the product; past invoice lines keep pointing at
	// the removed id.
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct{ repo repository.ProductoRepository }

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return productosToResponse(list), nil
}

func (s *productoService) Obtener(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductoNoEncontrado)
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Crear(ctx context.Context, req dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p := productoFromRequest(req)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p := productoFromRequest(req)
	p.IDProducto = id
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, notFound(err, ErrProductoNoEncontrado)
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	return notFound(s.repo.Delete(ctx, id), ErrProductoNoEncontrado)
}

// PrecioVenta applies the pricing rule: with both cost and margin known the
// price is cost × (1 + margin/100) rounded to cents, otherwise the price the
// operator typed is kept as is (possibly absent).
func PrecioVenta(costo, margen, manual *decimal.Decimal) *decimal.Decimal {
	if costo == nil || margen == nil {
		return manual
	}
	factor := decimal.NewFromInt(1).Add(margen.Div(decimal.NewFromInt(100)))
	precio := costo.Mul(factor).Round(2)
	return &precio
}

func productoFromRequest(req dto.ProductoRequest) *model.Producto {
	costo := req.PrecioCosto.DecimalPtr()
	margen := req.MargenGanancia.DecimalPtr()
	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	return &model.Producto{
		Descripcion:    strings.TrimSpace(req.Descripcion),
		Precio:         PrecioVenta(costo, margen, req.Precio.DecimalPtr()),
		Stock:          stock,
		PrecioCosto:    costo,
		MargenGanancia: margen,
	}
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		IDProducto:     p.IDProducto,
		Descripcion:    p.Descripcion,
		Precio:         p.Precio,
		Stock:          p.Stock,
		PrecioCosto:    p.PrecioCosto,
		MargenGanancia: p.MargenGanancia,
	}
}

func productosToResponse(list []model.Producto) []dto.ProductoResponse {
	resp := make([]dto.ProductoResponse, len(list))
	for i := range list {
		resp[i] = productoToResponse(&list[i])
	}
	return resp
}

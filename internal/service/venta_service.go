package service

import (
	"context"
	"fmt"
	"time"

	"kiosco/internal/dto"
	"kiosco/internal/model"
	"kiosco/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	// Catalogo returns what the sale form offers: every client and the
	// products that still have stock.
	Catalogo(ctx context.Context) (*dto.CatalogoVentaResponse, error)
	// RegistrarVenta records an invoice with one line per product/quantity
	// pair and decrements stock, all or nothing.
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.FacturaResponse, error)
}

type ventaService struct {
	facturas  repository.FacturaRepository
	productos repository.ProductoRepository
	clientes  repository.ClienteRepository
	now       func() time.Time
}

func NewVentaService(
	facturas repository.FacturaRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
) VentaService {
	return &ventaService{
		facturas:  facturas,
		productos: productos,
		clientes:  clientes,
		now:       time.Now,
	}
}

// runTx executes fn inside a GORM transaction. Returning an error from fn
// rolls back every write made through tx.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

func (s *ventaService) Catalogo(ctx context.Context) (*dto.CatalogoVentaResponse, error) {
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, err
	}
	productos, err := s.productos.ListConStock(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.CatalogoVentaResponse{
		Clientes:  make([]dto.ClienteResponse, len(clientes)),
		Productos: productosToResponse(productos),
	}
	for i := range clientes {
		resp.Clientes[i] = clienteToResponse(&clientes[i])
	}
	return resp, nil
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
//   1. Validate the parallel lists (no write happens on bad input)
//   2. BEGIN TX: insert factura with total 0
//   3. Per pair, in order: read product, check price and stock, insert line
//      at the current price, guarded stock decrement
//   4. Store the accumulated total, COMMIT

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.FacturaResponse, error) {
	if err := validarLineas(req.Productos, req.Cantidades); err != nil {
		return nil, err
	}

	factura := &model.Factura{Fecha: s.now(), Total: decimal.Zero}
	if req.IDCliente != nil && *req.IDCliente > 0 {
		id := *req.IDCliente
		factura.IDCliente = &id
	}
	var detalles []dto.DetalleFacturaResponse

	err := runTx(ctx, s.facturas.DB(), func(tx *gorm.DB) error {
		if err := s.facturas.CreateTx(tx, factura); err != nil {
			return fmt.Errorf("crear factura: %w", err)
		}

		total := decimal.Zero
		for i, idProducto := range req.Productos {
			cantidad := req.Cantidades[i]

			p, err := s.productos.FindByIDTx(tx, idProducto)
			if err != nil {
				return notFound(err, ErrProductoNoEncontrado)
			}
			if p.Precio == nil {
				return &SinPrecioError{IDProducto: idProducto}
			}
			if p.Stock < cantidad {
				return &StockInsuficienteError{IDProducto: idProducto}
			}

			precio := *p.Precio
			subtotal := precio.Mul(decimal.NewFromInt(int64(cantidad)))
			detalle := &model.DetalleFactura{
				IDFactura:      factura.IDFactura,
				IDProducto:     idProducto,
				Cantidad:       cantidad,
				PrecioUnitario: precio,
				Subtotal:       subtotal,
			}
			if err := s.facturas.CreateDetalleTx(tx, detalle); err != nil {
				return fmt.Errorf("crear detalle: %w", err)
			}

			ok, err := s.productos.DescontarStockTx(tx, idProducto, cantidad)
			if err != nil {
				return fmt.Errorf("descontar stock: %w", err)
			}
			if !ok {
				return &StockInsuficienteError{IDProducto: idProducto}
			}

			total = total.Add(subtotal)
			descripcion := p.Descripcion
			detalles = append(detalles, dto.DetalleFacturaResponse{
				IDProducto:     idProducto,
				Descripcion:    &descripcion,
				Cantidad:       cantidad,
				PrecioUnitario: precio,
				Subtotal:       subtotal,
			})
		}

		if err := s.facturas.UpdateTotalTx(tx, factura.IDFactura, total); err != nil {
			return fmt.Errorf("actualizar total: %w", err)
		}
		factura.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.FacturaResponse{
		IDFactura: factura.IDFactura,
		IDCliente: factura.IDCliente,
		Fecha:     factura.Fecha,
		Total:     factura.Total,
		Detalles:  detalles,
	}, nil
}

func validarLineas(productos []uint, cantidades []int) error {
	if len(productos) == 0 {
		return ErrVentaSinProductos
	}
	if len(productos) != len(cantidades) {
		return ErrVentaDesalineada
	}
	for _, c := range cantidades {
		if c < 1 {
			return ErrCantidadInvalida
		}
	}
	return nil
}

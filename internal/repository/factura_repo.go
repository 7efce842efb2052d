package repository

import (
	"context"
	"time"

	"kiosco/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FacturaRow is one line of the invoice listing.
type FacturaRow struct {
	IDFactura uint
	Fecha     time.Time
	Total     decimal.Decimal
	Cliente   *string
	Ganancia  decimal.Decimal
}

// FacturaCabecera is an invoice header joined with its client name, which is
// NULL when the invoice has no client or the client was deleted.
type FacturaCabecera struct {
	IDFactura uint
	IDCliente *uint
	Cliente   *string
	Fecha     time.Time
	Total     decimal.Decimal
}

// DetalleRow is an invoice line joined with its product description, which is
// NULL when the product was deleted after the sale.
type DetalleRow struct {
	IDProducto     uint
	Descripcion    *string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

type FacturaRepository interface {
	CreateTx(tx *gorm.DB, f *model.Factura) error
	CreateDetalleTx(tx *gorm.DB, d *model.DetalleFactura) error
	UpdateTotalTx(tx *gorm.DB, id uint, total decimal.Decimal) error

	List(ctx context.Context) ([]FacturaRow, error)
	FindCabecera(ctx context.Context, id uint) (*FacturaCabecera, error)
	ListDetalles(ctx context.Context, id uint) ([]DetalleRow, error)

	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) DB() *gorm.DB { return r.db }

func (r *facturaRepo) CreateTx(tx *gorm.DB, f *model.Factura) error {
	return tx.Create(f).Error
}

func (r *facturaRepo) CreateDetalleTx(tx *gorm.DB, d *model.DetalleFactura) error {
	return tx.Create(d).Error
}

func (r *facturaRepo) UpdateTotalTx(tx *gorm.DB, id uint, total decimal.Decimal) error {
	return tx.Model(&model.Factura{}).Where("id_factura = ?", id).Update("total", total).Error
}

const listarFacturasSQL = `
SELECT f.id_factura, f.fecha, f.total, c.nombre AS cliente,
       COALESCE(SUM(d.cantidad * (d.precio_unitario - p.precio_costo)), 0) AS ganancia
FROM facturas f
LEFT JOIN clientes c ON c.id_cliente = f.id_cliente
LEFT JOIN detalle_factura d ON d.id_factura = f.id_factura
LEFT JOIN productos p ON p.id_producto = d.id_producto
GROUP BY f.id_factura, f.fecha, f.total, c.nombre
ORDER BY f.fecha DESC, f.id_factura DESC`

func (r *facturaRepo) List(ctx context.Context) ([]FacturaRow, error) {
	var rows []FacturaRow
	err := r.db.WithContext(ctx).Raw(listarFacturasSQL).Scan(&rows).Error
	return rows, err
}

func (r *facturaRepo) FindCabecera(ctx context.Context, id uint) (*FacturaCabecera, error) {
	var cab FacturaCabecera
	res := r.db.WithContext(ctx).Table("facturas f").
		Select("f.id_factura, f.id_cliente, c.nombre AS cliente, f.fecha, f.total").
		Joins("LEFT JOIN clientes c ON c.id_cliente = f.id_cliente").
		Where("f.id_factura = ?", id).
		Limit(1).
		Scan(&cab)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &cab, nil
}

func (r *facturaRepo) ListDetalles(ctx context.Context, id uint) ([]DetalleRow, error) {
	var rows []DetalleRow
	err := r.db.WithContext(ctx).Table("detalle_factura d").
		Select("d.id_producto, p.descripcion, d.cantidad, d.precio_unitario, d.subtotal").
		Joins("LEFT JOIN productos p ON p.id_producto = d.id_producto").
		Where("d.id_factura = ?", id).
		Order("d.id_detalle").
		Scan(&rows).Error
	return rows, err
}

package repository

import (
	"context"
	"time"

	"kiosco/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository exposes the read-only aggregates behind the home page.
// Every method is an independent query so one failure does not hide the rest.
type DashboardRepository interface {
	ContarClientes(ctx context.Context) (int64, error)
	ContarProductosConStock(ctx context.Context) (int64, error)
	ContarStockBajo(ctx context.Context, umbral int) (int64, error)
	ContarVentas(ctx context.Context, desde, hasta time.Time) (int64, error)
	// SumarVentas returns the sum of totals in [desde, hasta); Valid is false
	// when there is no invoice in the range.
	SumarVentas(ctx context.Context, desde, hasta time.Time) (decimal.NullDecimal, error)
	ListarStockBajo(ctx context.Context, umbral, limite int) ([]model.Producto, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) ContarClientes(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) ContarProductosConStock(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("stock > 0").Count(&n).Error
	return n, err
}

func (r *dashboardRepo) ContarStockBajo(ctx context.Context, umbral int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("stock > 0 AND stock <= ?", umbral).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) ContarVentas(ctx context.Context, desde, hasta time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Factura{}).
		Where("fecha >= ? AND fecha < ?", desde, hasta).Count(&n).Error
	return n, err
}

type sumaVentas struct{ Total decimal.NullDecimal }

func (r *dashboardRepo) SumarVentas(ctx context.Context, desde, hasta time.Time) (decimal.NullDecimal, error) {
	var out sumaVentas
	err := r.db.WithContext(ctx).Model(&model.Factura{}).
		Select("SUM(total) AS total").
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Scan(&out).Error
	return out.Total, err
}

func (r *dashboardRepo) ListarStockBajo(ctx context.Context, umbral, limite int) ([]model.Producto, error) {
	var list []model.Producto
	err := r.db.WithContext(ctx).
		Where("stock <= ?", umbral).
		Order("stock ASC, descripcion").
		Limit(limite).
		Find(&list).Error
	return list, err
}

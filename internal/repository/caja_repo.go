package repository

import (
	"context"
	"time"

	"kiosco/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CajaRepository interface {
	List(ctx context.Context) ([]model.Caja, error)
	FindByID(ctx context.Context, id uint) (*model.Caja, error)
	Create(ctx context.Context, c *model.Caja) error
	// Cerrar stamps the closing fields. The opening amount is never touched.
	Cerrar(ctx context.Context, id uint, montoCierre *decimal.Decimal, fecha time.Time) error
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) List(ctx context.Context) ([]model.Caja, error) {
	var cajas []model.Caja
	err := r.db.WithContext(ctx).Order("fecha_apertura DESC, id_caja DESC").Find(&cajas).Error
	return cajas, err
}

func (r *cajaRepo) FindByID(ctx context.Context, id uint) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *cajaRepo) Create(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cajaRepo) Cerrar(ctx context.Context, id uint, montoCierre *decimal.Decimal, fecha time.Time) error {
	var monto any
	if montoCierre != nil {
		monto = *montoCierre
	}
	res := r.db.WithContext(ctx).Model(&model.Caja{}).
		Where("id_caja = ?", id).
		Updates(map[string]any{
			"monto_cierre": monto,
			"fecha_cierre": fecha,
			"estado":       model.CajaCerrada,
		})
	return affected(res)
}

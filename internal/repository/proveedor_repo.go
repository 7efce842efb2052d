package repository

import (
	"context"

	"kiosco/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	List(ctx context.Context) ([]model.Proveedor, error)
	FindByID(ctx context.Context, id uint) (*model.Proveedor, error)
	Create(ctx context.Context, p *model.Proveedor) error
	// Update overwrites every column except id and created_at.
	Update(ctx context.Context, p *model.Proveedor) error
	Delete(ctx context.Context, id uint) error
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) List(ctx context.Context) ([]model.Proveedor, error) {
	var list []model.Proveedor
	err := r.db.WithContext(ctx).Order("razon_social").Find(&list).Error
	return list, err
}

func (r *proveedorRepo) FindByID(ctx context.Context, id uint) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) Update(ctx context.Context, p *model.Proveedor) error {
	res := r.db.WithContext(ctx).Model(&model.Proveedor{}).
		Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").
		Updates(p)
	return affected(res)
}

func (r *proveedorRepo) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Proveedor{}, id))
}

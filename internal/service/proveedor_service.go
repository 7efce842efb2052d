package service

import (
	"context"
	"strings"
	"time"

	"kiosco/internal/dto"
	"kiosco/internal/model"
	"kiosco/internal/repository"
)

const (
	ProveedorActivo   = "activo"
	ProveedorInactivo = "inactivo"
)

type ProveedorService interface {
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ProveedorResponse, error)
	Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	// Guardar is the form submit: an id in the payload updates that supplier,
	// no id creates a new one.
	Guardar(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
	now  func() time.Time
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo, now: time.Now}
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProveedorResponse, len(list))
	for i := range list {
		resp[i] = proveedorToResponse(&list[i])
	}
	return resp, nil
}

func (s *proveedorService) Obtener(ctx context.Context, id uint) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProveedorNoEncontrado)
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := proveedorFromRequest(req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uint, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := proveedorFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, notFound(err, ErrProveedorNoEncontrado)
	}
	return s.Obtener(ctx, id)
}

func (s *proveedorService) Guardar(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if req.ID != nil && *req.ID > 0 {
		return s.Actualizar(ctx, *req.ID, req)
	}
	return s.Crear(ctx, req)
}

func (s *proveedorService) Eliminar(ctx context.Context, id uint) error {
	return notFound(s.repo.Delete(ctx, id), ErrProveedorNoEncontrado)
}

func proveedorFromRequest(req dto.ProveedorRequest) (*model.Proveedor, error) {
	p := &model.Proveedor{
		RazonSocial:     strings.TrimSpace(req.RazonSocial),
		NombreComercial: strings.TrimSpace(req.NombreComercial),
		CUIT:            strings.TrimSpace(req.CUIT),
		Telefono:        strings.TrimSpace(req.Telefono),
		Email:           strings.TrimSpace(req.Email),
		DireccionFiscal: strings.TrimSpace(req.DireccionFiscal),
		CalleNumero:     strings.TrimSpace(req.CalleNumero),
		Ciudad:          strings.TrimSpace(req.Ciudad),
		Provincia:       strings.TrimSpace(req.Provincia),
		CodigoPostal:    strings.TrimSpace(req.CodigoPostal),
		Pais:            strings.TrimSpace(req.Pais),
		Contacto:        strings.TrimSpace(req.Contacto),
		CondicionPago:   strings.TrimSpace(req.CondicionPago),
		Estado:          strings.TrimSpace(req.Estado),
	}
	if p.RazonSocial == "" {
		return nil, ErrRazonSocialFaltante
	}
	if p.Estado == "" {
		p.Estado = ProveedorActivo
	}
	return p, nil
}

func proveedorToResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:              p.ID,
		RazonSocial:     p.RazonSocial,
		NombreComercial: p.NombreComercial,
		CUIT:            p.CUIT,
		Telefono:        p.Telefono,
		Email:           p.Email,
		DireccionFiscal: p.DireccionFiscal,
		CalleNumero:     p.CalleNumero,
		Ciudad:          p.Ciudad,
		Provincia:       p.Provincia,
		CodigoPostal:    p.CodigoPostal,
		Pais:            p.Pais,
		Contacto:        p.Contacto,
		CondicionPago:   p.CondicionPago,
		Estado:          p.Estado,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

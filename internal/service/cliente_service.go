package service

import (
	"context"
	"errors"
	"strings"

	"kiosco/internal/dto"
	"kiosco/internal/model"
	"kiosco/internal/repository"

	"gorm.io/gorm"
)

type ClienteService interface {
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	// Eliminar hard-deletes the client. Invoices that referenced it keep
	// their id_cliente and simply lose the name in listings.
	Eliminar(ctx context.Context, id uint) error
}

type clienteService struct{ repo repository.ClienteRepository }

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(list))
	for i := range list {
		resp[i] = clienteToResponse(&list[i])
	}
	return resp, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrClienteNoEncontrado)
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := clienteFromRequest(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := clienteFromRequest(req)
	c.IDCliente = id
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, notFound(err, ErrClienteNoEncontrado)
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	return notFound(s.repo.Delete(ctx, id), ErrClienteNoEncontrado)
}

func clienteFromRequest(req dto.ClienteRequest) *model.Cliente {
	return &model.Cliente{
		Nombre:    strings.TrimSpace(req.Nombre),
		Email:     strings.TrimSpace(req.Email),
		Telefono:  strings.TrimSpace(req.Telefono),
		Direccion: strings.TrimSpace(req.Direccion),
	}
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		IDCliente: c.IDCliente,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}

// notFound swaps gorm.ErrRecordNotFound for the entity's own error and
// passes every other error through.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

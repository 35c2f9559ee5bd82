package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
)

// PiscinaUseCase aplica reglas de negocio para piscinas.
type PiscinaUseCase struct {
	repo repository.PiscinaRepository
}

// NewPiscinaUseCase construye el caso de uso con el puerto de persistencia.
func NewPiscinaUseCase(repo repository.PiscinaRepository) *PiscinaUseCase {
	return &PiscinaUseCase{repo: repo}
}

// Create crea una piscina en la compañía activa. El código debe ser único en
// la compañía (chequeo proactivo + constraint); hectáreas, si vienen, deben
// ser un número mayor que cero.
func (uc *PiscinaUseCase) Create(ctx context.Context, in dto.CreatePiscinaRequest, companiaID string) (*dto.PiscinaResponse, error) {
	if in.Codigo == "" {
		return nil, fmt.Errorf("%w: el código de la piscina es obligatorio", domain.ErrInvalidInput)
	}
	hectareas, err := parseHectareas(in.Hectareas)
	if err != nil {
		return nil, err
	}
	existente, err := uc.repo.GetByCodigo(ctx, in.Codigo, companiaID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Piscina{
		ID:         uuid.New().String(),
		Codigo:     in.Codigo,
		Hectareas:  hectareas,
		Ubicacion:  in.Ubicacion,
		CompaniaID: companiaID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPiscinaResponse(p), nil
}

// GetByID obtiene una piscina de la compañía activa.
func (uc *PiscinaUseCase) GetByID(ctx context.Context, id, companiaID string) (*dto.PiscinaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id, companiaID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPiscinaResponse(p), nil
}

// List lista las piscinas de la compañía activa.
func (uc *PiscinaUseCase) List(ctx context.Context, companiaID string) ([]dto.PiscinaResponse, error) {
	list, err := uc.repo.ListByCompania(ctx, companiaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PiscinaResponse, 0, len(list))
	for i := range list {
		items = append(items, *toPiscinaResponse(&list[i]))
	}
	return items, nil
}

// Update actualiza campos de una piscina de la compañía activa.
func (uc *PiscinaUseCase) Update(ctx context.Context, id string, in dto.UpdatePiscinaRequest, companiaID string) (*dto.PiscinaResponse, error) {
	p, err := uc.repo.GetByID(ctx, id, companiaID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Codigo != nil {
		if *in.Codigo == "" {
			return nil, fmt.Errorf("%w: el código de la piscina es obligatorio", domain.ErrInvalidInput)
		}
		p.Codigo = *in.Codigo
	}
	if in.Hectareas != nil {
		hectareas, err := parseHectareas(*in.Hectareas)
		if err != nil {
			return nil, err
		}
		p.Hectareas = hectareas
	}
	if in.Ubicacion != nil {
		p.Ubicacion = *in.Ubicacion
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPiscinaResponse(p), nil
}

// parseHectareas valida y parsea el área: vacío es permitido (sin dato);
// con valor debe ser un número estrictamente mayor que cero.
func parseHectareas(valor string) (*decimal.Decimal, error) {
	if valor == "" {
		return nil, nil
	}
	h, err := decimal.NewFromString(valor)
	if err != nil || !h.IsPositive() {
		return nil, fmt.Errorf("%w: las hectáreas deben ser un número mayor que cero", domain.ErrInvalidInput)
	}
	return &h, nil
}

func toPiscinaResponse(p *entity.Piscina) *dto.PiscinaResponse {
	out := &dto.PiscinaResponse{
		ID:        p.ID,
		Codigo:    p.Codigo,
		Ubicacion: p.Ubicacion,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Hectareas != nil {
		out.Hectareas = p.Hectareas.String()
	}
	return out
}

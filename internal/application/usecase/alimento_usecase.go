package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
)

// AlimentoUseCase aplica reglas de negocio para tipos de alimento.
type AlimentoUseCase struct {
	repo repository.AlimentoRepository
}

// NewAlimentoUseCase construye el caso de uso.
func NewAlimentoUseCase(repo repository.AlimentoRepository) *AlimentoUseCase {
	return &AlimentoUseCase{repo: repo}
}

// Create registra un tipo de alimento en la compañía activa.
func (uc *AlimentoUseCase) Create(ctx context.Context, in dto.CreateAlimentoRequest, companiaID string) (*dto.AlimentoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre del alimento es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	a := &entity.Alimento{
		ID:         uuid.New().String(),
		Nombre:     nombre,
		CompaniaID: companiaID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return &dto.AlimentoResponse{ID: a.ID, Nombre: a.Nombre}, nil
}

// List lista los tipos de alimento de la compañía activa.
func (uc *AlimentoUseCase) List(ctx context.Context, companiaID string) ([]dto.AlimentoResponse, error) {
	list, err := uc.repo.ListByCompania(ctx, companiaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlimentoResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AlimentoResponse{ID: a.ID, Nombre: a.Nombre})
	}
	return items, nil
}

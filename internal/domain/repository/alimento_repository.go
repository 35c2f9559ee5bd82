package repository

import (
	"context"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// AlimentoRepository define el puerto de persistencia para tipos de alimento.
type AlimentoRepository interface {
	Create(ctx context.Context, alimento *entity.Alimento) error
	GetByID(ctx context.Context, id, companiaID string) (*entity.Alimento, error)
	ListByCompania(ctx context.Context, companiaID string) ([]entity.Alimento, error)
}

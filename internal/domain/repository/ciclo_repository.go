package repository

import (
	"context"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// CicloRepository define el puerto de persistencia para Ciclo (DIP).
type CicloRepository interface {
	Create(ctx context.Context, ciclo *entity.Ciclo) error
	GetByID(ctx context.Context, id, companiaID string) (*entity.Ciclo, error)
	ListByCompania(ctx context.Context, companiaID string, limit, offset int) ([]entity.Ciclo, error)
	CountByCompania(ctx context.Context, companiaID string) (int, error)
	Update(ctx context.Context, ciclo *entity.Ciclo) error
}

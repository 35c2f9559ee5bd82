package repository

import (
	"context"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// PiscinaRepository define el puerto de persistencia para Piscina (DIP).
// Todas las operaciones están acotadas por compañía; la implementación vive
// en infrastructure y usa exclusivamente consultas parametrizadas.
type PiscinaRepository interface {
	Create(ctx context.Context, piscina *entity.Piscina) error
	GetByID(ctx context.Context, id, companiaID string) (*entity.Piscina, error)
	GetByCodigo(ctx context.Context, codigo, companiaID string) (*entity.Piscina, error)
	ListByCompania(ctx context.Context, companiaID string) ([]entity.Piscina, error)
	Update(ctx context.Context, piscina *entity.Piscina) error
	Delete(ctx context.Context, id, companiaID string) error
}

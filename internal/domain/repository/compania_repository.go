package repository

import (
	"context"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// CompaniaRepository define el puerto de persistencia para Compania (DIP).
type CompaniaRepository interface {
	Create(ctx context.Context, compania *entity.Compania) error
	GetByID(ctx context.Context, id string) (*entity.Compania, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Compania, error)
	// ListByUsuario devuelve las compañías asignadas al usuario ordenadas por nombre.
	ListByUsuario(ctx context.Context, usuarioID string) ([]entity.Compania, error)
	// AsignadaAUsuario verifica la membresía usuario-compañía (cambio de
	// compañía activa sin reautenticación).
	AsignadaAUsuario(ctx context.Context, usuarioID, companiaID string) (bool, error)
}

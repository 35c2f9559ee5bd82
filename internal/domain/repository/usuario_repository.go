package repository

import (
	"context"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	// FindByUsername devuelve (nil, nil) si el usuario no existe: la ausencia
	// no es un fallo de infraestructura.
	FindByUsername(ctx context.Context, usuario string) (*entity.Usuario, error)
	ListByGrupo(ctx context.Context, grupoID string, limit, offset int) ([]entity.Usuario, error)
}

// PerfilRepository define el puerto para los perfiles (roles) de un usuario.
type PerfilRepository interface {
	// ListByUsuario devuelve los perfiles vinculados al usuario ordenados por nombre.
	ListByUsuario(ctx context.Context, usuarioID string) ([]entity.Perfil, error)
}

// GrupoEmpresarialRepository define el puerto para el grupo empresarial.
type GrupoEmpresarialRepository interface {
	GetByID(ctx context.Context, id string) (*entity.GrupoEmpresarial, error)
}

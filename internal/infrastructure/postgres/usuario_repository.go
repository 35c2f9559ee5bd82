package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)
var _ repository.PerfilRepository = (*PerfilRepo)(nil)
var _ repository.GrupoEmpresarialRepository = (*GrupoEmpresarialRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db querier) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const usuarioColumns = `id, nombre, usuario, password_hash, estado, id_grupo_empresarial, created_at, updated_at`

// Create persiste un nuevo usuario. Devuelve domain.ErrDuplicate si el
// nombre de usuario ya está registrado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre, usuario, password_hash, estado, id_grupo_empresarial, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Nombre, u.Usuario, u.PasswordHash, u.Estado, u.GrupoEmpresarialID,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// FindByUsername obtiene un usuario por su nombre de login. Devuelve
// (nil, nil) si no existe.
func (r *UsuarioRepo) FindByUsername(ctx context.Context, usuario string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE usuario = $1 LIMIT 1`
	return r.scanOne(ctx, query, usuario)
}

func (r *UsuarioRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Nombre, &u.Usuario, &u.PasswordHash, &u.Estado, &u.GrupoEmpresarialID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// ListByGrupo lista los usuarios del grupo empresarial con paginación.
func (r *UsuarioRepo) ListByGrupo(ctx context.Context, grupoID string, limit, offset int) ([]entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + `
		FROM usuarios WHERE id_grupo_empresarial = $1
		ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, grupoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Usuario, &u.PasswordHash, &u.Estado, &u.GrupoEmpresarialID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// PerfilRepo implementación del puerto PerfilRepository sobre PostgreSQL.
type PerfilRepo struct {
	db querier
}

// NewPerfilRepository construye el adaptador de persistencia para perfiles.
func NewPerfilRepository(db querier) *PerfilRepo {
	return &PerfilRepo{db: db}
}

// ListByUsuario devuelve los perfiles vinculados al usuario ordenados por nombre.
func (r *PerfilRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]entity.Perfil, error) {
	query := `
		SELECT p.id, p.nombre
		FROM perfiles p
		INNER JOIN usuarios_perfiles up ON up.id_perfil = p.id
		WHERE up.id_usuario = $1
		ORDER BY p.nombre`
	rows, err := r.db.Query(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list perfiles: %w", err)
	}
	defer rows.Close()
	var list []entity.Perfil
	for rows.Next() {
		var p entity.Perfil
		if err := rows.Scan(&p.ID, &p.Nombre); err != nil {
			return nil, fmt.Errorf("scan perfil: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GrupoEmpresarialRepo implementación del puerto GrupoEmpresarialRepository.
type GrupoEmpresarialRepo struct {
	db querier
}

// NewGrupoEmpresarialRepository construye el adaptador para grupos empresariales.
func NewGrupoEmpresarialRepository(db querier) *GrupoEmpresarialRepo {
	return &GrupoEmpresarialRepo{db: db}
}

// GetByID obtiene un grupo empresarial por ID.
func (r *GrupoEmpresarialRepo) GetByID(ctx context.Context, id string) (*entity.GrupoEmpresarial, error) {
	var g entity.GrupoEmpresarial
	err := r.db.QueryRow(ctx, `SELECT id, nombre FROM grupos_empresariales WHERE id = $1`, id).
		Scan(&g.ID, &g.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grupo empresarial: %w", err)
	}
	return &g, nil
}

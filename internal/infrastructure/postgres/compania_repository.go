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

var _ repository.CompaniaRepository = (*CompaniaRepo)(nil)

// CompaniaRepo implementación del puerto CompaniaRepository sobre PostgreSQL.
type CompaniaRepo struct {
	db querier
}

// NewCompaniaRepository construye el adaptador de persistencia para compañías.
func NewCompaniaRepository(db querier) *CompaniaRepo {
	return &CompaniaRepo{db: db}
}

const companiaColumns = `id, nombre, id_grupo_empresarial, created_at, updated_at`

// Create persiste una nueva compañía. Devuelve domain.ErrDuplicate si el
// nombre ya existe.
func (r *CompaniaRepo) Create(ctx context.Context, c *entity.Compania) error {
	query := `
		INSERT INTO companias (id, nombre, id_grupo_empresarial, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, c.ID, c.Nombre, c.GrupoEmpresarialID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert compania: %w", err)
	}
	return nil
}

// GetByID obtiene una compañía por ID.
func (r *CompaniaRepo) GetByID(ctx context.Context, id string) (*entity.Compania, error) {
	query := `SELECT ` + companiaColumns + ` FROM companias WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByNombre obtiene una compañía por nombre (chequeo proactivo de duplicados).
func (r *CompaniaRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Compania, error) {
	query := `SELECT ` + companiaColumns + ` FROM companias WHERE nombre = $1`
	return r.scanOne(ctx, query, nombre)
}

func (r *CompaniaRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Compania, error) {
	var c entity.Compania
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Nombre, &c.GrupoEmpresarialID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compania: %w", err)
	}
	return &c, nil
}

// ListByUsuario devuelve las compañías asignadas al usuario ordenadas por nombre.
func (r *CompaniaRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]entity.Compania, error) {
	query := `
		SELECT c.id, c.nombre, c.id_grupo_empresarial, c.created_at, c.updated_at
		FROM companias c
		INNER JOIN usuarios_companias uc ON uc.id_compania = c.id
		WHERE uc.id_usuario = $1
		ORDER BY c.nombre`
	rows, err := r.db.Query(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list companias por usuario: %w", err)
	}
	defer rows.Close()
	var list []entity.Compania
	for rows.Next() {
		var c entity.Compania
		if err := rows.Scan(&c.ID, &c.Nombre, &c.GrupoEmpresarialID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan compania: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// AsignadaAUsuario verifica la membresía usuario-compañía.
func (r *CompaniaRepo) AsignadaAUsuario(ctx context.Context, usuarioID, companiaID string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios_companias WHERE id_usuario = $1 AND id_compania = $2)`,
		usuarioID, companiaID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("verificar membresía compañía: %w", err)
	}
	return existe, nil
}

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

var _ repository.PiscinaRepository = (*PiscinaRepo)(nil)

// PiscinaRepo implementación del puerto PiscinaRepository sobre PostgreSQL.
type PiscinaRepo struct {
	db querier
}

// NewPiscinaRepository construye el adaptador de persistencia para piscinas.
func NewPiscinaRepository(db querier) *PiscinaRepo {
	return &PiscinaRepo{db: db}
}

const piscinaColumns = `id, codigo, hectareas, ubicacion, id_compania, created_at, updated_at`

// Create persiste una nueva piscina. Devuelve domain.ErrDuplicate si el
// código ya existe en la compañía.
func (r *PiscinaRepo) Create(ctx context.Context, p *entity.Piscina) error {
	query := `
		INSERT INTO piscinas (id, codigo, hectareas, ubicacion, id_compania, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Codigo, p.Hectareas, p.Ubicacion, p.CompaniaID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert piscina: %w", err)
	}
	return nil
}

// GetByID obtiene una piscina por ID dentro de la compañía.
func (r *PiscinaRepo) GetByID(ctx context.Context, id, companiaID string) (*entity.Piscina, error) {
	query := `SELECT ` + piscinaColumns + ` FROM piscinas WHERE id = $1 AND id_compania = $2`
	return r.scanOne(ctx, query, id, companiaID)
}

// GetByCodigo obtiene una piscina por código dentro de la compañía.
func (r *PiscinaRepo) GetByCodigo(ctx context.Context, codigo, companiaID string) (*entity.Piscina, error) {
	query := `SELECT ` + piscinaColumns + ` FROM piscinas WHERE codigo = $1 AND id_compania = $2`
	return r.scanOne(ctx, query, codigo, companiaID)
}

func (r *PiscinaRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Piscina, error) {
	var p entity.Piscina
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Codigo, &p.Hectareas, &p.Ubicacion, &p.CompaniaID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get piscina: %w", err)
	}
	return &p, nil
}

// ListByCompania lista las piscinas de la compañía ordenadas por código.
func (r *PiscinaRepo) ListByCompania(ctx context.Context, companiaID string) ([]entity.Piscina, error) {
	query := `SELECT ` + piscinaColumns + ` FROM piscinas WHERE id_compania = $1 ORDER BY codigo`
	rows, err := r.db.Query(ctx, query, companiaID)
	if err != nil {
		return nil, fmt.Errorf("list piscinas: %w", err)
	}
	defer rows.Close()
	var list []entity.Piscina
	for rows.Next() {
		var p entity.Piscina
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Hectareas, &p.Ubicacion, &p.CompaniaID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan piscina: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza una piscina dentro de su compañía.
func (r *PiscinaRepo) Update(ctx context.Context, p *entity.Piscina) error {
	query := `
		UPDATE piscinas SET codigo = $3, hectareas = $4, ubicacion = $5, updated_at = $6
		WHERE id = $1 AND id_compania = $2`
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.CompaniaID, p.Codigo, p.Hectareas, p.Ubicacion, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update piscina: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una piscina por ID dentro de la compañía.
func (r *PiscinaRepo) Delete(ctx context.Context, id, companiaID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM piscinas WHERE id = $1 AND id_compania = $2`, id, companiaID)
	if err != nil {
		return fmt.Errorf("delete piscina: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

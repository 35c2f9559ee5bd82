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

var _ repository.AlimentoRepository = (*AlimentoRepo)(nil)

// AlimentoRepo implementación del puerto AlimentoRepository sobre PostgreSQL.
type AlimentoRepo struct {
	db querier
}

// NewAlimentoRepository construye el adaptador de persistencia para alimentos.
func NewAlimentoRepository(db querier) *AlimentoRepo {
	return &AlimentoRepo{db: db}
}

// Create persiste un nuevo tipo de alimento.
func (r *AlimentoRepo) Create(ctx context.Context, a *entity.Alimento) error {
	query := `
		INSERT INTO alimentos (id, nombre, id_compania, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, a.ID, a.Nombre, a.CompaniaID, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert alimento: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de alimento por ID dentro de la compañía.
func (r *AlimentoRepo) GetByID(ctx context.Context, id, companiaID string) (*entity.Alimento, error) {
	query := `
		SELECT id, nombre, id_compania, created_at, updated_at
		FROM alimentos WHERE id = $1 AND id_compania = $2`
	var a entity.Alimento
	err := r.db.QueryRow(ctx, query, id, companiaID).Scan(
		&a.ID, &a.Nombre, &a.CompaniaID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alimento: %w", err)
	}
	return &a, nil
}

// ListByCompania lista los tipos de alimento de la compañía ordenados por nombre.
func (r *AlimentoRepo) ListByCompania(ctx context.Context, companiaID string) ([]entity.Alimento, error) {
	query := `
		SELECT id, nombre, id_compania, created_at, updated_at
		FROM alimentos WHERE id_compania = $1 ORDER BY nombre`
	rows, err := r.db.Query(ctx, query, companiaID)
	if err != nil {
		return nil, fmt.Errorf("list alimentos: %w", err)
	}
	defer rows.Close()
	var list []entity.Alimento
	for rows.Next() {
		var a entity.Alimento
		if err := rows.Scan(&a.ID, &a.Nombre, &a.CompaniaID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan alimento: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

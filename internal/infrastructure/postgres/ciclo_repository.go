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

var _ repository.CicloRepository = (*CicloRepo)(nil)

// CicloRepo implementación del puerto CicloRepository sobre PostgreSQL.
type CicloRepo struct {
	db querier
}

// NewCicloRepository construye el adaptador de persistencia para ciclos.
func NewCicloRepository(db querier) *CicloRepo {
	return &CicloRepo{db: db}
}

const cicloColumns = `id, id_piscina, fecha_siembra, cantidad_siembra, densidad, estado,
		biomasa_cosecha, alimento_por_hectarea, documento_cosecha, id_compania, created_at, updated_at`

// Create persiste un nuevo ciclo productivo.
func (r *CicloRepo) Create(ctx context.Context, c *entity.Ciclo) error {
	query := `
		INSERT INTO ciclos (id, id_piscina, fecha_siembra, cantidad_siembra, densidad, estado,
			biomasa_cosecha, alimento_por_hectarea, documento_cosecha, id_compania, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.PiscinaID, c.FechaSiembra, c.CantidadSiembra, c.Densidad, c.Estado,
		c.BiomasaCosecha, c.AlimentoPorHectarea, c.DocumentoCosecha, c.CompaniaID,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ciclo: %w", err)
	}
	return nil
}

// GetByID obtiene un ciclo por ID dentro de la compañía.
func (r *CicloRepo) GetByID(ctx context.Context, id, companiaID string) (*entity.Ciclo, error) {
	query := `SELECT ` + cicloColumns + ` FROM ciclos WHERE id = $1 AND id_compania = $2`
	var c entity.Ciclo
	err := r.db.QueryRow(ctx, query, id, companiaID).Scan(
		&c.ID, &c.PiscinaID, &c.FechaSiembra, &c.CantidadSiembra, &c.Densidad, &c.Estado,
		&c.BiomasaCosecha, &c.AlimentoPorHectarea, &c.DocumentoCosecha, &c.CompaniaID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ciclo: %w", err)
	}
	return &c, nil
}

// ListByCompania lista ciclos de la compañía, más recientes primero.
func (r *CicloRepo) ListByCompania(ctx context.Context, companiaID string, limit, offset int) ([]entity.Ciclo, error) {
	query := `SELECT ` + cicloColumns + `
		FROM ciclos WHERE id_compania = $1
		ORDER BY fecha_siembra DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companiaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ciclos: %w", err)
	}
	defer rows.Close()
	var list []entity.Ciclo
	for rows.Next() {
		var c entity.Ciclo
		if err := rows.Scan(
			&c.ID, &c.PiscinaID, &c.FechaSiembra, &c.CantidadSiembra, &c.Densidad, &c.Estado,
			&c.BiomasaCosecha, &c.AlimentoPorHectarea, &c.DocumentoCosecha, &c.CompaniaID,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ciclo: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByCompania devuelve el total de ciclos de la compañía.
func (r *CicloRepo) CountByCompania(ctx context.Context, companiaID string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ciclos WHERE id_compania = $1`, companiaID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count ciclos: %w", err)
	}
	return total, nil
}

// Update actualiza un ciclo dentro de su compañía.
func (r *CicloRepo) Update(ctx context.Context, c *entity.Ciclo) error {
	query := `
		UPDATE ciclos SET id_piscina = $3, fecha_siembra = $4, cantidad_siembra = $5,
			densidad = $6, estado = $7, biomasa_cosecha = $8, alimento_por_hectarea = $9,
			documento_cosecha = $10, updated_at = $11
		WHERE id = $1 AND id_compania = $2`
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.CompaniaID, c.PiscinaID, c.FechaSiembra, c.CantidadSiembra,
		c.Densidad, c.Estado, c.BiomasaCosecha, c.AlimentoPorHectarea,
		c.DocumentoCosecha, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ciclo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
)

var _ repository.MuestraRepository = (*MuestraRepo)(nil)
var _ repository.ConsumoAlimentoRepository = (*ConsumoAlimentoRepo)(nil)

// MuestraRepo implementación del puerto MuestraRepository sobre PostgreSQL.
type MuestraRepo struct {
	db querier
}

// NewMuestraRepository construye el adaptador de persistencia para muestras.
func NewMuestraRepository(db querier) *MuestraRepo {
	return &MuestraRepo{db: db}
}

const muestraColumns = `id, id_ciclo, dias_cultivo, peso_promedio, incremento_peso, biomasa_lbs,
		alimento_acumulado, conversion_alimenticia, poblacion_actual, indice_supervivencia,
		observaciones, fecha_muestra, id_compania, usuario_creacion, usuario_actualizacion,
		created_at, updated_at`

// Create persiste una nueva muestra.
func (r *MuestraRepo) Create(ctx context.Context, m *entity.Muestra) error {
	query := `
		INSERT INTO muestras (id, id_ciclo, dias_cultivo, peso_promedio, incremento_peso,
			biomasa_lbs, alimento_acumulado, conversion_alimenticia, poblacion_actual,
			indice_supervivencia, observaciones, fecha_muestra, id_compania,
			usuario_creacion, usuario_actualizacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.CicloID, m.DiasCultivo, m.PesoPromedio, m.IncrementoPeso,
		m.BiomasaLbs, m.AlimentoAcumulado, m.ConversionAlimenticia, m.PoblacionActual,
		m.IndiceSupervivencia, m.Observaciones, m.FechaMuestra, m.CompaniaID,
		m.UsuarioCreacion, m.UsuarioActualizacion, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert muestra: %w", err)
	}
	return nil
}

// ListByCiclo lista las muestras de un ciclo ordenadas por fecha de muestreo.
func (r *MuestraRepo) ListByCiclo(ctx context.Context, cicloID, companiaID string) ([]entity.Muestra, error) {
	query := `SELECT ` + muestraColumns + `
		FROM muestras WHERE id_ciclo = $1 AND id_compania = $2
		ORDER BY fecha_muestra`
	rows, err := r.db.Query(ctx, query, cicloID, companiaID)
	if err != nil {
		return nil, fmt.Errorf("list muestras: %w", err)
	}
	defer rows.Close()
	var list []entity.Muestra
	for rows.Next() {
		var m entity.Muestra
		if err := scanMuestra(rows, &m); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// LatestByCiclo devuelve la muestra más reciente por fecha, o nil si no hay.
func (r *MuestraRepo) LatestByCiclo(ctx context.Context, cicloID, companiaID string) (*entity.Muestra, error) {
	query := `SELECT ` + muestraColumns + `
		FROM muestras WHERE id_ciclo = $1 AND id_compania = $2
		ORDER BY fecha_muestra DESC LIMIT 1`
	var m entity.Muestra
	err := scanMuestra(r.db.QueryRow(ctx, query, cicloID, companiaID), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// rowScanner abstrae pgx.Row y pgx.Rows para compartir el scan de muestras.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMuestra(row rowScanner, m *entity.Muestra) error {
	err := row.Scan(
		&m.ID, &m.CicloID, &m.DiasCultivo, &m.PesoPromedio, &m.IncrementoPeso, &m.BiomasaLbs,
		&m.AlimentoAcumulado, &m.ConversionAlimenticia, &m.PoblacionActual, &m.IndiceSupervivencia,
		&m.Observaciones, &m.FechaMuestra, &m.CompaniaID, &m.UsuarioCreacion, &m.UsuarioActualizacion,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan muestra: %w", err)
	}
	return nil
}

// ConsumoAlimentoRepo implementación del puerto ConsumoAlimentoRepository.
type ConsumoAlimentoRepo struct {
	db querier
}

// NewConsumoAlimentoRepository construye el adaptador para consumos de alimento.
func NewConsumoAlimentoRepository(db querier) *ConsumoAlimentoRepo {
	return &ConsumoAlimentoRepo{db: db}
}

// CreateBatch inserta las filas de consumo de una muestra. Se espera que el
// caller lo invoque dentro de la misma transacción que la muestra.
func (r *ConsumoAlimentoRepo) CreateBatch(ctx context.Context, consumos []entity.ConsumoAlimento) error {
	query := `
		INSERT INTO consumos_alimento (id, id_muestra, id_alimento, cantidad, id_compania)
		VALUES ($1, $2, $3, $4, $5)`
	for _, c := range consumos {
		if _, err := r.db.Exec(ctx, query, c.ID, c.MuestraID, c.AlimentoID, c.Cantidad, c.CompaniaID); err != nil {
			return fmt.Errorf("insert consumo alimento: %w", err)
		}
	}
	return nil
}

// ListByMuestra lista los consumos de alimento de una muestra.
func (r *ConsumoAlimentoRepo) ListByMuestra(ctx context.Context, muestraID, companiaID string) ([]entity.ConsumoAlimento, error) {
	query := `
		SELECT id, id_muestra, id_alimento, cantidad, id_compania
		FROM consumos_alimento WHERE id_muestra = $1 AND id_compania = $2`
	rows, err := r.db.Query(ctx, query, muestraID, companiaID)
	if err != nil {
		return nil, fmt.Errorf("list consumos alimento: %w", err)
	}
	defer rows.Close()
	var list []entity.ConsumoAlimento
	for rows.Next() {
		var c entity.ConsumoAlimento
		if err := rows.Scan(&c.ID, &c.MuestraID, &c.AlimentoID, &c.Cantidad, &c.CompaniaID); err != nil {
			return nil, fmt.Errorf("scan consumo alimento: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

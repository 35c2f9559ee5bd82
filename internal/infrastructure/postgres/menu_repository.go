package postgres

import (
	"context"
	"fmt"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	db querier
}

// NewMenuRepository construye el adaptador de persistencia para menús.
func NewMenuRepository(db querier) *MenuRepo {
	return &MenuRepo{db: db}
}

// ListActivosByPerfiles devuelve los menús activos vinculados a cualquiera de
// los perfiles, sin duplicados y ordenados por (módulo, nombre de menú).
// El id de perfil se pasa como arreglo ligado ($1 = ANY), nunca concatenado.
func (r *MenuRepo) ListActivosByPerfiles(ctx context.Context, perfilIDs []string) ([]entity.Menu, error) {
	if len(perfilIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT DISTINCT m.id, m.nombre, m.ruta, m.icono, m.estado, mo.nombre AS modulo
		FROM menus m
		INNER JOIN modulos mo ON mo.id = m.id_modulo
		INNER JOIN perfiles_menus pm ON pm.id_menu = m.id
		WHERE pm.id_perfil = ANY($1) AND m.estado = $2
		ORDER BY mo.nombre, m.nombre`
	rows, err := r.db.Query(ctx, query, perfilIDs, entity.MenuActivo)
	if err != nil {
		return nil, fmt.Errorf("list menus por perfiles: %w", err)
	}
	defer rows.Close()
	var list []entity.Menu
	for rows.Next() {
		var m entity.Menu
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Ruta, &m.Icono, &m.Estado, &m.ModuloNombre); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

package repository

import (
	"context"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// MenuRepository define el puerto de persistencia para Menu (DIP).
type MenuRepository interface {
	// ListActivosByPerfiles devuelve el conjunto de menús activos vinculados a
	// cualquiera de los perfiles dados, ordenado por (módulo, nombre de menú)
	// y sin ids repetidos aunque varios perfiles compartan un menú.
	ListActivosByPerfiles(ctx context.Context, perfilIDs []string) ([]entity.Menu, error)
}

package repository

import (
	"context"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// MuestraRepository define el puerto de persistencia para Muestra (DIP).
// Las muestras son append-only: no hay Update ni Delete.
type MuestraRepository interface {
	Create(ctx context.Context, muestra *entity.Muestra) error
	ListByCiclo(ctx context.Context, cicloID, companiaID string) ([]entity.Muestra, error)
	// LatestByCiclo devuelve la muestra más reciente por fecha de muestreo,
	// o nil si el ciclo aún no tiene muestras.
	LatestByCiclo(ctx context.Context, cicloID, companiaID string) (*entity.Muestra, error)
}

// ConsumoAlimentoRepository define el puerto para las filas hijas de consumo
// de alimento de una muestra. CreateBatch se invoca en la misma transacción
// que la creación de la muestra.
type ConsumoAlimentoRepository interface {
	CreateBatch(ctx context.Context, consumos []entity.ConsumoAlimento) error
	ListByMuestra(ctx context.Context, muestraID, companiaID string) ([]entity.ConsumoAlimento, error)
}

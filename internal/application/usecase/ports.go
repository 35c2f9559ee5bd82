package usecase

import (
	"context"
	"io"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// ArchivoStore es el colaborador de carga de archivos: recibe el contenido y
// devuelve la ruta donde quedó guardado. La política de tipo (solo PDF) se
// valida antes, en domain/cultivo.
type ArchivoStore interface {
	Save(ctx context.Context, nombre string, contenido io.Reader) (string, error)
}

// CicloFinalizadoEvent se publica cuando un ciclo pasa a FINALIZADO, con lo
// necesario para que consumidores aguas abajo notifiquen o registren sin
// consultar la base primaria.
type CicloFinalizadoEvent struct {
	CicloID             string `json:"id_ciclo"`
	PiscinaCodigo       string `json:"codigo_piscina"`
	CompaniaID          string `json:"id_compania"`
	FechaSiembra        string `json:"fecha_siembra"`
	BiomasaCosecha      string `json:"biomasa_cosecha"`
	AlimentoPorHectarea string `json:"alimento_por_hectarea"`
	FinalizadoEn        string `json:"finalizado_en"`
}

// EventPublisher publica eventos de dominio en el broker. Puede ser nil
// (publicación desactivada); los fallos de publicación no interrumpen el
// flujo principal.
type EventPublisher interface {
	PublishCicloFinalizado(ctx context.Context, ev CicloFinalizadoEvent) error
}

// ReporteCosechaGenerator genera la representación PDF del acta de cosecha
// de un ciclo finalizado.
type ReporteCosechaGenerator interface {
	Generate(ctx context.Context, ciclo *entity.Ciclo, piscina *entity.Piscina, muestras []entity.Muestra) ([]byte, error)
}

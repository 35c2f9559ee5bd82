package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ciclo productivo.
const (
	EstadoEnCurso    = "EN_CURSO"
	EstadoFinalizado = "FINALIZADO"
)

// Ciclo representa un ciclo productivo: una corrida siembra-cosecha sobre una piscina.
// Densidad y AlimentoPorHectarea son campos derivados (ver domain/cultivo); se
// almacenan como string con dos decimales fijos o vacío cuando no son calculables.
// AlimentoPorHectarea solo tiene significado cuando Estado es FINALIZADO.
type Ciclo struct {
	ID                  string
	PiscinaID           string
	FechaSiembra        time.Time
	CantidadSiembra     decimal.Decimal
	Densidad            string
	Estado              string // EN_CURSO, FINALIZADO
	BiomasaCosecha      *decimal.Decimal
	AlimentoPorHectarea string
	DocumentoCosecha    string // ruta del PDF de soporte de cosecha
	CompaniaID          string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

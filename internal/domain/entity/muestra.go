package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Muestra representa un muestreo periódico dentro de un ciclo productivo.
// Las muestras son append-only por ciclo; la más reciente por FechaMuestra
// determina las métricas "actuales" del ciclo.
type Muestra struct {
	ID                    string
	CicloID               string
	DiasCultivo           int
	PesoPromedio          decimal.Decimal
	IncrementoPeso        decimal.Decimal
	BiomasaLbs            decimal.Decimal
	AlimentoAcumulado     decimal.Decimal
	ConversionAlimenticia decimal.Decimal
	PoblacionActual       decimal.Decimal
	IndiceSupervivencia   decimal.Decimal
	Observaciones         string
	FechaMuestra          time.Time
	CompaniaID            string
	UsuarioCreacion       string
	UsuarioActualizacion  string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ConsumoAlimento es una fila hija de Muestra: cantidad consumida de un tipo
// de alimento durante el período muestreado. Se insertan junto con la muestra
// en una misma transacción.
type ConsumoAlimento struct {
	ID         string
	MuestraID  string
	AlimentoID string
	Cantidad   decimal.Decimal
	CompaniaID string
}

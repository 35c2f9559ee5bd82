package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Piscina representa una piscina camaronera (unidad física de siembra).
// Hectareas puede ser NULL en datos históricos; cuando está presente debe ser > 0.
// Codigo es único dentro de cada compañía.
type Piscina struct {
	ID         string
	Codigo     string
	Hectareas  *decimal.Decimal
	Ubicacion  string
	CompaniaID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

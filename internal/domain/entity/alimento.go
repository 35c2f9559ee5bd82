package entity

import "time"

// Alimento representa un tipo de alimento balanceado usado en los muestreos.
type Alimento struct {
	ID         string
	Nombre     string
	CompaniaID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

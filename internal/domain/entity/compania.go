package entity

import "time"

// Compania representa una compañía operadora dentro de un grupo empresarial.
// Relación N:M con Usuario; Nombre es único.
type Compania struct {
	ID                 string
	Nombre             string
	GrupoEmpresarialID string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

package dto

import "time"

// CreatePiscinaRequest entrada para crear una piscina.
type CreatePiscinaRequest struct {
	Codigo    string `json:"codigo"`
	Hectareas string `json:"hectareas"` // decimal en texto; vacío = sin dato
	Ubicacion string `json:"ubicacion"`
}

// UpdatePiscinaRequest entrada para actualizar una piscina (campos opcionales).
type UpdatePiscinaRequest struct {
	Codigo    *string `json:"codigo"`
	Hectareas *string `json:"hectareas"`
	Ubicacion *string `json:"ubicacion"`
}

// PiscinaResponse salida de una piscina.
type PiscinaResponse struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	Hectareas string    `json:"hectareas"` // vacío cuando no hay dato
	Ubicacion string    `json:"ubicacion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package dto

// CreateAlimentoRequest entrada para crear un tipo de alimento.
type CreateAlimentoRequest struct {
	Nombre string `json:"nombre"`
}

// AlimentoResponse salida de un tipo de alimento.
type AlimentoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

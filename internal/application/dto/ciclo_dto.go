package dto

import "time"

// SaveCicloRequest entrada para crear o actualizar un ciclo. Los campos
// numéricos viajan como texto: el formulario del cliente trabaja con strings
// y los derivados se calculan con la misma representación.
type SaveCicloRequest struct {
	IDPiscina       string `json:"id_piscina"`
	FechaSiembra    string `json:"fecha_siembra"` // YYYY-MM-DD
	CantidadSiembra string `json:"cantidad_siembra"`
	Estado          string `json:"estado"`
	BiomasaCosecha  string `json:"biomasa_cosecha"`
}

// CicloResponse salida de un ciclo productivo.
type CicloResponse struct {
	ID                  string    `json:"id"`
	IDPiscina           string    `json:"id_piscina"`
	FechaSiembra        string    `json:"fecha_siembra"`
	CantidadSiembra     string    `json:"cantidad_siembra"`
	Densidad            string    `json:"densidad"`
	Estado              string    `json:"estado"`
	BiomasaCosecha      string    `json:"biomasa_cosecha"`
	AlimentoPorHectarea string    `json:"alimento_por_hectarea"`
	DocumentoCosecha    string    `json:"documento_cosecha,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ResumenCicloResponse métricas "actuales" de un ciclo, derivadas de la
// última muestra por fecha.
type ResumenCicloResponse struct {
	Ciclo         CicloResponse    `json:"ciclo"`
	UltimaMuestra *MuestraResponse `json:"ultima_muestra,omitempty"`
}

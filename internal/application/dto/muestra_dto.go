package dto

// ConsumoAlimentoRequest una fila de consumo de alimento dentro de la muestra.
type ConsumoAlimentoRequest struct {
	IDAlimento string `json:"id_alimento"`
	Cantidad   string `json:"cantidad"`
}

// CreateMuestraRequest entrada para registrar una muestra con sus consumos.
type CreateMuestraRequest struct {
	IDCiclo               string                   `json:"id_ciclo"`
	DiasCultivo           int                      `json:"dias_cultivo"`
	PesoPromedio          string                   `json:"peso_promedio"`
	IncrementoPeso        string                   `json:"incremento_peso"`
	BiomasaLbs            string                   `json:"biomasa_lbs"`
	AlimentoAcumulado     string                   `json:"alimento_acumulado"`
	ConversionAlimenticia string                   `json:"conversion_alimenticia"`
	PoblacionActual       string                   `json:"poblacion_actual"`
	IndiceSupervivencia   string                   `json:"indice_supervivencia"`
	Observaciones         string                   `json:"observaciones"`
	FechaMuestra          string                   `json:"fecha_muestra"` // YYYY-MM-DD
	Consumos              []ConsumoAlimentoRequest `json:"consumos"`
}

// ConsumoAlimentoResponse una fila de consumo en la salida.
type ConsumoAlimentoResponse struct {
	IDAlimento string `json:"id_alimento"`
	Cantidad   string `json:"cantidad"`
}

// MuestraResponse salida de una muestra.
type MuestraResponse struct {
	ID                    string                    `json:"id"`
	IDCiclo               string                    `json:"id_ciclo"`
	DiasCultivo           int                       `json:"dias_cultivo"`
	PesoPromedio          string                    `json:"peso_promedio"`
	IncrementoPeso        string                    `json:"incremento_peso"`
	BiomasaLbs            string                    `json:"biomasa_lbs"`
	AlimentoAcumulado     string                    `json:"alimento_acumulado"`
	ConversionAlimenticia string                    `json:"conversion_alimenticia"`
	PoblacionActual       string                    `json:"poblacion_actual"`
	IndiceSupervivencia   string                    `json:"indice_supervivencia"`
	Observaciones         string                    `json:"observaciones"`
	FechaMuestra          string                    `json:"fecha_muestra"`
	Consumos              []ConsumoAlimentoResponse `json:"consumos,omitempty"`
}

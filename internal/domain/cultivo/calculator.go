// Package cultivo contiene las reglas puras del ciclo productivo: cálculo de
// campos derivados (densidad, alimento por hectárea), recomputación reactiva
// del formulario y validaciones de campos y de negocio. Ninguna función de
// este paquete hace I/O; los estados "no calculable" se expresan con el
// centinela cadena vacía, nunca con error.
package cultivo

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// ComputeDensity calcula la densidad de siembra: cantidad sembrada dividida
// para las hectáreas de la piscina, con exactamente dos decimales fijos.
// Devuelve "" si la piscina no existe, no tiene hectáreas, las hectáreas son
// cero o la cantidad no es un número válido.
func ComputeDensity(cantidadSiembra, piscinaID string, piscinas []entity.Piscina) string {
	return computePerHectare(cantidadSiembra, piscinaID, piscinas)
}

// ComputeFeedPerHectare calcula el alimento por hectárea: biomasa cosechada
// dividida para las hectáreas de la piscina. Misma política numérica que
// ComputeDensity; el que solo aplique a ciclos finalizados lo decide el
// motor de recomputación, no esta función.
func ComputeFeedPerHectare(biomasaCosecha, piscinaID string, piscinas []entity.Piscina) string {
	return computePerHectare(biomasaCosecha, piscinaID, piscinas)
}

func computePerHectare(valor, piscinaID string, piscinas []entity.Piscina) string {
	piscina := buscarPiscina(piscinaID, piscinas)
	if piscina == nil || piscina.Hectareas == nil || !piscina.Hectareas.IsPositive() {
		return ""
	}
	cantidad, err := decimal.NewFromString(strings.TrimSpace(valor))
	if err != nil {
		return ""
	}
	return cantidad.Div(*piscina.Hectareas).StringFixed(2)
}

func buscarPiscina(id string, piscinas []entity.Piscina) *entity.Piscina {
	for i := range piscinas {
		if piscinas[i].ID == id {
			return &piscinas[i]
		}
	}
	return nil
}

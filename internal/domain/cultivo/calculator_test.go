package cultivo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/cultivo"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func piscinaConArea(id string, hectareas string) entity.Piscina {
	area := decimal.RequireFromString(hectareas)
	return entity.Piscina{ID: id, Codigo: "P-" + id, Hectareas: &area}
}

func piscinasDePrueba() []entity.Piscina {
	cero := decimal.Zero
	return []entity.Piscina{
		piscinaConArea("p1", "3"),
		piscinaConArea("p2", "2.5"),
		{ID: "p3", Codigo: "P-p3"},              // sin hectáreas
		{ID: "p4", Codigo: "P-p4", Hectareas: &cero}, // hectáreas en cero
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeDensity
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeDensity_FormateaDosDecimalesFijos(t *testing.T) {
	piscinas := piscinasDePrueba()

	// 150 / 3 = 50 → siempre dos decimales, sin recortar ceros.
	assert.Equal(t, "50.00", cultivo.ComputeDensity("150", "p1", piscinas))
	// 100 / 2.5 = 40
	assert.Equal(t, "40.00", cultivo.ComputeDensity("100", "p2", piscinas))
	// 100 / 3 = 33.333... → truncado/redondeado a dos decimales
	assert.Equal(t, "33.33", cultivo.ComputeDensity("100", "p1", piscinas))
}

func TestComputeDensity_CentinelaVacio(t *testing.T) {
	piscinas := piscinasDePrueba()

	casos := []struct {
		nombre   string
		cantidad string
		piscina  string
	}{
		{"piscina inexistente", "150", "no-existe"},
		{"piscina sin hectáreas", "150", "p3"},
		{"hectáreas en cero", "150", "p4"},
		{"cantidad no numérica", "abc", "p1"},
		{"cantidad vacía", "", "p1"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Empty(t, cultivo.ComputeDensity(c.cantidad, c.piscina, piscinas),
				"el caso no calculable debe devolver cadena vacía, nunca error")
		})
	}
}

func TestComputeDensity_ListaVaciaDePiscinas(t *testing.T) {
	assert.Empty(t, cultivo.ComputeDensity("150", "p1", nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeFeedPerHectare
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeFeedPerHectare_MismaPoliticaNumerica(t *testing.T) {
	piscinas := piscinasDePrueba()

	assert.Equal(t, "25.00", cultivo.ComputeFeedPerHectare("75", "p1", piscinas))
	assert.Equal(t, "48.80", cultivo.ComputeFeedPerHectare("122", "p2", piscinas))
	assert.Empty(t, cultivo.ComputeFeedPerHectare("75", "p3", piscinas))
	assert.Empty(t, cultivo.ComputeFeedPerHectare("no-numero", "p1", piscinas))
}

package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/navigation"
)

func TestDefaultLanding_PerfilesMapeados(t *testing.T) {
	ruta, ok := navigation.DefaultLanding("Administrador")
	assert.True(t, ok)
	assert.Equal(t, "/administracion/companias", ruta)

	ruta, ok = navigation.DefaultLanding("Digitador")
	assert.True(t, ok)
	assert.Equal(t, "/produccion/muestras", ruta)
}

func TestDefaultLanding_PerfilNoMapeadoVaASinModulo(t *testing.T) {
	ruta, ok := navigation.DefaultLanding("Perfil Fantasma")
	assert.False(t, ok, "un perfil no mapeado no debe resolverse como válido")
	assert.Equal(t, navigation.RutaSinModulo, ruta)
}

func TestIconRegistry_FallbackVacio(t *testing.T) {
	reg := navigation.NewIconRegistry()

	assert.Equal(t, "piscinas", reg.Lookup("piscinas"))
	assert.Empty(t, reg.Lookup("icono-desconocido"),
		"un nombre no registrado debe resolver al fallback vacío")

	reg.Register("cosechas", "cosechas")
	assert.Equal(t, "cosechas", reg.Lookup("cosechas"))
}

package cultivo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/cultivo"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

func TestIsNumericField(t *testing.T) {
	assert.True(t, cultivo.IsNumericField(cultivo.CampoCantidadSiembra))
	assert.True(t, cultivo.IsNumericField(cultivo.CampoBiomasaCosecha))
	assert.False(t, cultivo.IsNumericField(cultivo.CampoFechaSiembra))
	assert.False(t, cultivo.IsNumericField("observaciones"))
}

func TestValidateNumericValue(t *testing.T) {
	casos := []struct {
		valor    string
		esperado bool
	}{
		{"", true}, // vacío = aún no ingresado
		{"0", false},
		{"-5", false},
		{"3.14", true},
		{"abc", false},
		{"150", true},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, cultivo.ValidateNumericValue(c.valor), "valor %q", c.valor)
	}
}

func TestValidateBasicFields_PrimerCampoFaltanteGanaPrecedencia(t *testing.T) {
	err := cultivo.ValidateBasicFields(cultivo.FormState{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "piscina")

	err = cultivo.ValidateBasicFields(cultivo.FormState{PiscinaID: "p1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha de siembra")

	err = cultivo.ValidateBasicFields(cultivo.FormState{
		PiscinaID: "p1", FechaSiembra: "2025-01-15", CantidadSiembra: "-3",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cantidad de siembra")
}

func TestValidateBasicFields_FormularioValido(t *testing.T) {
	err := cultivo.ValidateBasicFields(cultivo.FormState{
		PiscinaID: "p1", FechaSiembra: "2025-01-15", CantidadSiembra: "150",
	})
	assert.NoError(t, err)
}

func TestValidateFinalizedFields(t *testing.T) {
	base := cultivo.FormState{
		PiscinaID: "p1", FechaSiembra: "2025-01-15", CantidadSiembra: "150",
	}

	// En curso: sin requisitos adicionales.
	assert.NoError(t, cultivo.ValidateFinalizedFields(base, nil))

	// Finalizado sin biomasa → error nombrando el campo.
	fin := base
	fin.Estado = entity.EstadoFinalizado
	err := cultivo.ValidateFinalizedFields(fin, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "biomasa")

	// Finalizado con biomasa pero sin documento → error.
	fin.BiomasaCosecha = "75"
	err = cultivo.ValidateFinalizedFields(fin, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "documento")

	// Completo → ok.
	adjunto := &cultivo.Adjunto{Nombre: "acta.pdf", MimeType: "application/pdf"}
	assert.NoError(t, cultivo.ValidateFinalizedFields(fin, adjunto))
}

func TestValidatePDFType(t *testing.T) {
	// Sin adjunto es válido en esta capa.
	assert.NoError(t, cultivo.ValidatePDFType(nil))

	// MIME correcto.
	assert.NoError(t, cultivo.ValidatePDFType(&cultivo.Adjunto{Nombre: "x.bin", MimeType: "application/pdf"}))

	// Extensión .pdf aunque el MIME venga genérico.
	assert.NoError(t, cultivo.ValidatePDFType(&cultivo.Adjunto{Nombre: "ACTA.PDF", MimeType: "application/octet-stream"}))

	// Ni MIME ni extensión → mensaje fijo.
	err := cultivo.ValidatePDFType(&cultivo.Adjunto{Nombre: "foto.png", MimeType: "image/png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), cultivo.MensajePDFInvalido)
}

func TestValidateSubmission_OrdenDeCortocircuito(t *testing.T) {
	// Falla básica tiene prioridad sobre la de finalización y la de archivo.
	form := cultivo.FormState{Estado: entity.EstadoFinalizado}
	err := cultivo.ValidateSubmission(form, &cultivo.Adjunto{Nombre: "foto.png", MimeType: "image/png"}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "piscina")

	// Con básicos completos la siguiente falla es la de finalización.
	form = cultivo.FormState{
		PiscinaID: "p1", FechaSiembra: "2025-01-15", CantidadSiembra: "150",
		Estado: entity.EstadoFinalizado,
	}
	err = cultivo.ValidateSubmission(form, nil, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "biomasa")

	// Luego el tipo de archivo.
	form.BiomasaCosecha = "75"
	err = cultivo.ValidateSubmission(form, &cultivo.Adjunto{Nombre: "foto.png", MimeType: "image/png"}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), cultivo.MensajePDFInvalido)

	// Y por último la identidad de la sesión.
	adjunto := &cultivo.Adjunto{Nombre: "acta.pdf", MimeType: "application/pdf"}
	err = cultivo.ValidateSubmission(form, adjunto, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sesión")

	assert.NoError(t, cultivo.ValidateSubmission(form, adjunto, "comp-1", "user-1"))
}

package cultivo

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// Adjunto describe un archivo adjunto declarado por el cliente. El contenido
// no pasa por este paquete; aquí solo se valida la política de tipo.
type Adjunto struct {
	Nombre   string
	MimeType string
}

// MensajePDFInvalido es el mensaje fijo para adjuntos que no son PDF. El
// caller debe descartar la referencia al archivo cuando recibe este error.
const MensajePDFInvalido = "el documento de soporte debe ser un archivo PDF"

// camposNumericos son los campos de negocio que exigen valores numéricos
// estrictamente positivos.
var camposNumericos = map[string]bool{
	CampoCantidadSiembra: true,
	CampoBiomasaCosecha:  true,
}

// IsNumericField informa si el campo pertenece al conjunto de campos
// numéricos de negocio (cantidad de siembra, biomasa de cosecha).
func IsNumericField(campo string) bool {
	return camposNumericos[campo]
}

// ValidateNumericValue valida un valor de campo numérico. Cadena vacía es
// válida (aún no ingresado); en otro caso debe parsear como número y ser
// estrictamente mayor que cero.
func ValidateNumericValue(valor string) bool {
	if valor == "" {
		return true
	}
	n, err := decimal.NewFromString(strings.TrimSpace(valor))
	if err != nil {
		return false
	}
	return n.IsPositive()
}

// ValidateBasicFields verifica los campos obligatorios de cualquier ciclo:
// piscina, fecha de siembra y cantidad de siembra válida. Devuelve nil si
// todo está bien; en caso contrario un error que envuelve ErrInvalidInput
// nombrando el primer campo faltante o inválido.
func ValidateBasicFields(form FormState) error {
	if form.PiscinaID == "" {
		return validationError("la piscina es obligatoria")
	}
	if form.FechaSiembra == "" {
		return validationError("la fecha de siembra es obligatoria")
	}
	if form.CantidadSiembra == "" {
		return validationError("la cantidad de siembra es obligatoria")
	}
	if !ValidateNumericValue(form.CantidadSiembra) {
		return validationError("la cantidad de siembra debe ser un número mayor que cero")
	}
	if form.BiomasaCosecha != "" && !ValidateNumericValue(form.BiomasaCosecha) {
		return validationError("la biomasa de cosecha debe ser un número mayor que cero")
	}
	return nil
}

// ValidateFinalizedFields verifica los campos adicionales que se vuelven
// obligatorios al finalizar un ciclo: biomasa de cosecha y documento de
// soporte. No aplica cuando el estado no es FINALIZADO.
func ValidateFinalizedFields(form FormState, adjunto *Adjunto) error {
	if form.Estado != entity.EstadoFinalizado {
		return nil
	}
	if form.BiomasaCosecha == "" {
		return validationError("la biomasa de cosecha es obligatoria para finalizar el ciclo")
	}
	if !ValidateNumericValue(form.BiomasaCosecha) {
		return validationError("la biomasa de cosecha debe ser un número mayor que cero")
	}
	if adjunto == nil {
		return validationError("el documento de soporte de cosecha es obligatorio para finalizar el ciclo")
	}
	return nil
}

// ValidatePDFType valida el tipo de un adjunto. Un adjunto ausente es válido
// en esta capa (la obligatoriedad la decide ValidateFinalizedFields); si hay
// adjunto debe declarar MIME application/pdf o extensión .pdf.
func ValidatePDFType(adjunto *Adjunto) error {
	if adjunto == nil {
		return nil
	}
	if strings.EqualFold(adjunto.MimeType, "application/pdf") {
		return nil
	}
	if strings.HasSuffix(strings.ToLower(adjunto.Nombre), ".pdf") {
		return nil
	}
	return validationError(MensajePDFInvalido)
}

// ValidateSubmission aplica todas las validaciones de envío en orden de
// prioridad: campos básicos, campos de finalización, tipo de archivo y por
// último identidad (compañía y usuario). La primera falla aborta el envío.
func ValidateSubmission(form FormState, adjunto *Adjunto, companiaID, usuarioID string) error {
	if err := ValidateBasicFields(form); err != nil {
		return err
	}
	if err := ValidateFinalizedFields(form, adjunto); err != nil {
		return err
	}
	if err := ValidatePDFType(adjunto); err != nil {
		return err
	}
	if companiaID == "" || usuarioID == "" {
		return validationError("no se pudo determinar la compañía o el usuario de la sesión")
	}
	return nil
}

func validationError(mensaje string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, mensaje)
}

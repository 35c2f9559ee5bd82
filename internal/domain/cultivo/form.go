package cultivo

import "github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"

// Nombres de campo del formulario de ciclo. Coinciden con los nombres JSON
// que envía el cliente.
const (
	CampoPiscina         = "id_piscina"
	CampoFechaSiembra    = "fecha_siembra"
	CampoCantidadSiembra = "cantidad_siembra"
	CampoDensidad        = "densidad"
	CampoEstado          = "estado"
	CampoBiomasaCosecha  = "biomasa_cosecha"
	CampoAlimentoPorHa   = "alimento_por_hectarea"
)

// FormState es el estado del formulario de ciclo sobre el que operan las
// reglas reactivas. Todos los campos son strings tal como viajan desde el
// cliente; los derivados (Densidad, AlimentoPorHectarea) los escribe
// únicamente Recompute.
type FormState struct {
	PiscinaID           string
	FechaSiembra        string
	CantidadSiembra     string
	Densidad            string
	Estado              string
	BiomasaCosecha      string
	AlimentoPorHectarea string
}

// SetField asigna un campo por nombre y devuelve el formulario recalculado.
// Es el punto de entrada para cada edición del cliente: asignar y recomputar
// son una sola operación, sin estados intermedios observables.
func SetField(form FormState, campo, valor string, piscinas []entity.Piscina) FormState {
	switch campo {
	case CampoPiscina:
		form.PiscinaID = valor
	case CampoFechaSiembra:
		form.FechaSiembra = valor
	case CampoCantidadSiembra:
		form.CantidadSiembra = valor
	case CampoEstado:
		form.Estado = valor
	case CampoBiomasaCosecha:
		form.BiomasaCosecha = valor
	}
	return Recompute(form, piscinas)
}

// Recompute aplica las reglas de campos derivados sobre una copia del
// formulario y la devuelve. Ambas reacciones leen el mismo snapshot de
// entrada y escriben campos disjuntos, por lo que el orden de escritura es
// irrelevante; el orden de evaluación sí es determinista: la condición de
// recomputación de alimento por hectárea se evalúa antes que la de limpieza.
// Cada escritura está protegida por comparación de igualdad, de modo que
// recomputar con entradas sin cambios es un no-op.
func Recompute(form FormState, piscinas []entity.Piscina) FormState {
	next := form

	// Densidad: requiere cantidad, piscina y lista de piscinas cargada.
	if form.CantidadSiembra != "" && form.PiscinaID != "" && len(piscinas) > 0 {
		if d := ComputeDensity(form.CantidadSiembra, form.PiscinaID, piscinas); d != form.Densidad {
			next.Densidad = d
		}
	}

	// Alimento por hectárea: solo para ciclos finalizados. Si el ciclo no
	// está finalizado se limpia cualquier valor residual.
	if form.Estado == entity.EstadoFinalizado && form.BiomasaCosecha != "" &&
		form.PiscinaID != "" && len(piscinas) > 0 {
		if v := ComputeFeedPerHectare(form.BiomasaCosecha, form.PiscinaID, piscinas); v != form.AlimentoPorHectarea {
			next.AlimentoPorHectarea = v
		}
	} else if form.Estado != entity.EstadoFinalizado && form.AlimentoPorHectarea != "" {
		next.AlimentoPorHectarea = ""
	}

	return next
}

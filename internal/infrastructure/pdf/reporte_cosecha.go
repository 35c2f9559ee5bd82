// Package pdf implementa la generación del acta de cosecha de un ciclo
// finalizado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Acta de Cosecha  │  Piscina + Fecha de siembra     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Cantidad sembrada / Densidad / Biomasa / Alim./Ha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Días | Peso prom. | Biomasa | Superviv.      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 100}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReporteCosechaGenerator implementa usecase.ReporteCosechaGenerator usando
// Maroto v2.
type ReporteCosechaGenerator struct{}

var _ usecase.ReporteCosechaGenerator = (*ReporteCosechaGenerator)(nil)

// NewReporteCosechaGenerator construye el generador.
func NewReporteCosechaGenerator() *ReporteCosechaGenerator { return &ReporteCosechaGenerator{} }

// Generate genera el acta de cosecha y devuelve sus bytes.
func (g *ReporteCosechaGenerator) Generate(
	_ context.Context,
	ciclo *entity.Ciclo,
	piscina *entity.Piscina,
	muestras []entity.Muestra,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de Cosecha", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ciclo, piscina))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(ciclo, piscina))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableMuestraRows(muestras) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y piscina + fecha de siembra (der).
func headerRow(ciclo *entity.Ciclo, piscina *entity.Piscina) core.Row {
	codigo := "—"
	if piscina != nil {
		codigo = piscina.Codigo
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ACTA DE COSECHA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ciclo productivo "+ciclo.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Piscina "+codigo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Siembra: "+ciclo.FechaSiembra.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// resumenRow: métricas de cierre del ciclo.
func resumenRow(ciclo *entity.Ciclo, piscina *entity.Piscina) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
			}),
			text.New(value, props.Text{Size: 10, Top: 6}),
		)
	}
	biomasa := "—"
	if ciclo.BiomasaCosecha != nil {
		biomasa = ciclo.BiomasaCosecha.String() + " lbs"
	}
	hectareas := "—"
	if piscina != nil && piscina.Hectareas != nil {
		hectareas = piscina.Hectareas.String() + " ha"
	}
	return row.New(14).Add(
		metric("CANTIDAD SEMBRADA", ciclo.CantidadSiembra.String()),
		metric("DENSIDAD", valueOrDash(ciclo.Densidad)),
		metric("BIOMASA COSECHADA", biomasa),
		metric("ALIMENTO/HA ("+hectareas+")", valueOrDash(ciclo.AlimentoPorHectarea)),
	)
}

// tableHeaderRow: cabecera de la tabla de muestreos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Días", 1, align.Center),
		h("Peso prom. (g)", 2, align.Right),
		h("Incr. peso", 2, align.Right),
		h("Biomasa (lbs)", 2, align.Right),
		h("Conv. alim.", 1, align.Right),
		h("Superviv. %", 2, align.Right),
	)
}

// tableMuestraRows: una fila por muestreo registrado.
func tableMuestraRows(muestras []entity.Muestra) []core.Row {
	result := make([]core.Row, 0, len(muestras))
	for _, mu := range muestras {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(mu.FechaMuestra.Format("02/01/2006"), 2, align.Left),
			cell(fmt.Sprintf("%d", mu.DiasCultivo), 1, align.Center),
			cell(mu.PesoPromedio.StringFixed(2), 2, align.Right),
			cell(mu.IncrementoPeso.StringFixed(2), 2, align.Right),
			cell(mu.BiomasaLbs.StringFixed(2), 2, align.Right),
			cell(mu.ConversionAlimenticia.StringFixed(2), 1, align.Right),
			cell(mu.IndiceSupervivencia.StringFixed(2), 2, align.Right),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("El ciclo no registró muestreos.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow() core.Row {
	generado := time.Now().Format("02/01/2006 15:04")
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento generado por el sistema de gestión camaronera el "+generado+
				". Conserve este documento como soporte del cierre del ciclo.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func valueOrDash(s string) string {
	if s != "" {
		return s
	}
	return "—"
}

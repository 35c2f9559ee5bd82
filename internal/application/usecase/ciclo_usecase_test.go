package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/cultivo"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCiclos struct {
	porID map[string]*entity.Ciclo
}

func (f *fakeCiclos) Create(ctx context.Context, c *entity.Ciclo) error {
	f.porID[c.ID] = c
	return nil
}

func (f *fakeCiclos) GetByID(ctx context.Context, id, companiaID string) (*entity.Ciclo, error) {
	c := f.porID[id]
	if c == nil || c.CompaniaID != companiaID {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeCiclos) ListByCompania(ctx context.Context, companiaID string, limit, offset int) ([]entity.Ciclo, error) {
	var out []entity.Ciclo
	for _, c := range f.porID {
		if c.CompaniaID == companiaID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCiclos) CountByCompania(ctx context.Context, companiaID string) (int, error) {
	list, _ := f.ListByCompania(ctx, companiaID, 0, 0)
	return len(list), nil
}

func (f *fakeCiclos) Update(ctx context.Context, c *entity.Ciclo) error {
	f.porID[c.ID] = c
	return nil
}

type fakePiscinasRepo struct {
	piscinas []entity.Piscina
}

func (f *fakePiscinasRepo) Create(ctx context.Context, p *entity.Piscina) error { return nil }
func (f *fakePiscinasRepo) GetByID(ctx context.Context, id, companiaID string) (*entity.Piscina, error) {
	for i := range f.piscinas {
		if f.piscinas[i].ID == id {
			return &f.piscinas[i], nil
		}
	}
	return nil, nil
}
func (f *fakePiscinasRepo) GetByCodigo(ctx context.Context, codigo, companiaID string) (*entity.Piscina, error) {
	return nil, nil
}
func (f *fakePiscinasRepo) ListByCompania(ctx context.Context, companiaID string) ([]entity.Piscina, error) {
	return f.piscinas, nil
}
func (f *fakePiscinasRepo) Update(ctx context.Context, p *entity.Piscina) error { return nil }
func (f *fakePiscinasRepo) Delete(ctx context.Context, id, companiaID string) error {
	return nil
}

type fakeMuestrasRepo struct {
	ultima *entity.Muestra
}

func (f *fakeMuestrasRepo) Create(ctx context.Context, m *entity.Muestra) error { return nil }
func (f *fakeMuestrasRepo) ListByCiclo(ctx context.Context, cicloID, companiaID string) ([]entity.Muestra, error) {
	return nil, nil
}
func (f *fakeMuestrasRepo) LatestByCiclo(ctx context.Context, cicloID, companiaID string) (*entity.Muestra, error) {
	return f.ultima, nil
}

type fakeArchivos struct {
	guardados []string
}

func (f *fakeArchivos) Save(ctx context.Context, nombre string, contenido io.Reader) (string, error) {
	f.guardados = append(f.guardados, nombre)
	return "/uploads/" + nombre, nil
}

type fakeEventos struct {
	publicados []usecase.CicloFinalizadoEvent
}

func (f *fakeEventos) PublishCicloFinalizado(ctx context.Context, ev usecase.CicloFinalizadoEvent) error {
	f.publicados = append(f.publicados, ev)
	return nil
}

type fakeReportes struct{}

func (f *fakeReportes) Generate(ctx context.Context, ciclo *entity.Ciclo, piscina *entity.Piscina, muestras []entity.Muestra) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado
// ──────────────────────────────────────────────────────────────────────────────

func dec(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return &d
}

type fixtures struct {
	uc       *usecase.CicloUseCase
	ciclos   *fakeCiclos
	archivos *fakeArchivos
	eventos  *fakeEventos
}

func buildCicloUseCase(t *testing.T) *fixtures {
	t.Helper()
	piscinas := &fakePiscinasRepo{piscinas: []entity.Piscina{
		{ID: "p1", Codigo: "PSC-01", Hectareas: dec(t, "3"), CompaniaID: "c1"},
		{ID: "p2", Codigo: "PSC-02", CompaniaID: "c1"}, // sin área registrada
	}}
	f := &fixtures{
		ciclos:   &fakeCiclos{porID: map[string]*entity.Ciclo{}},
		archivos: &fakeArchivos{},
		eventos:  &fakeEventos{},
	}
	f.uc = usecase.NewCicloUseCase(
		f.ciclos, piscinas, &fakeMuestrasRepo{}, f.archivos, f.eventos, &fakeReportes{},
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloCreate_CalculaDensidadAlGuardar(t *testing.T) {
	f := buildCicloUseCase(t)

	out, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
	}, nil, nil, "c1", "u1")
	require.NoError(t, err)

	assert.Equal(t, "50.00", out.Densidad)
	assert.Equal(t, entity.EstadoEnCurso, out.Estado)
	assert.Empty(t, out.AlimentoPorHectarea)
	assert.NotEmpty(t, out.ID)
}

func TestCicloCreate_PiscinaSinAreaDejaDensidadVacia(t *testing.T) {
	f := buildCicloUseCase(t)

	out, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p2",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
	}, nil, nil, "c1", "u1")
	require.NoError(t, err)

	assert.Empty(t, out.Densidad)
}

func TestCicloCreate_FinalizadoSinDocumentoFalla(t *testing.T) {
	f := buildCicloUseCase(t)

	_, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
		Estado:          entity.EstadoFinalizado,
		BiomasaCosecha:  "120",
	}, nil, nil, "c1", "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCicloCreate_AdjuntoNoPDFFalla(t *testing.T) {
	f := buildCicloUseCase(t)

	adjunto := &cultivo.Adjunto{Nombre: "acta.docx", MimeType: "application/msword"}
	_, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
		Estado:          entity.EstadoFinalizado,
		BiomasaCosecha:  "120",
	}, adjunto, strings.NewReader("x"), "c1", "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), cultivo.MensajePDFInvalido)
}

func TestCicloUpdate_FinalizarCalculaAlimentoYPublicaEvento(t *testing.T) {
	f := buildCicloUseCase(t)

	creado, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
	}, nil, nil, "c1", "u1")
	require.NoError(t, err)
	require.Empty(t, f.eventos.publicados)

	adjunto := &cultivo.Adjunto{Nombre: "acta-cosecha.pdf", MimeType: "application/pdf"}
	out, err := f.uc.Update(context.Background(), creado.ID, dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
		Estado:          entity.EstadoFinalizado,
		BiomasaCosecha:  "120",
	}, adjunto, strings.NewReader("%PDF-1.4"), "c1", "u1")
	require.NoError(t, err)

	// 120 / 3 hectáreas con dos decimales fijos.
	assert.Equal(t, "40.00", out.AlimentoPorHectarea)
	assert.Equal(t, "/uploads/acta-cosecha.pdf", out.DocumentoCosecha)

	require.Len(t, f.eventos.publicados, 1)
	ev := f.eventos.publicados[0]
	assert.Equal(t, creado.ID, ev.CicloID)
	assert.Equal(t, "PSC-01", ev.PiscinaCodigo)
	assert.Equal(t, "120", ev.BiomasaCosecha)
}

func TestCicloUpdate_ReabrirLimpiaAlimentoPorHectarea(t *testing.T) {
	f := buildCicloUseCase(t)

	creado, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
	}, nil, nil, "c1", "u1")
	require.NoError(t, err)

	adjunto := &cultivo.Adjunto{Nombre: "acta.pdf", MimeType: "application/pdf"}
	_, err = f.uc.Update(context.Background(), creado.ID, dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
		Estado:          entity.EstadoFinalizado,
		BiomasaCosecha:  "120",
	}, adjunto, strings.NewReader("%PDF-1.4"), "c1", "u1")
	require.NoError(t, err)

	out, err := f.uc.Update(context.Background(), creado.ID, dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
		Estado:          entity.EstadoEnCurso,
	}, nil, nil, "c1", "u1")
	require.NoError(t, err)

	assert.Empty(t, out.AlimentoPorHectarea)
	// Reabrir no vuelve a publicar.
	assert.Len(t, f.eventos.publicados, 1)
}

func TestCicloUpdate_DocumentoExistenteSatisfaceElRequisito(t *testing.T) {
	f := buildCicloUseCase(t)

	creado, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
		Estado:          entity.EstadoFinalizado,
		BiomasaCosecha:  "90",
	}, &cultivo.Adjunto{Nombre: "acta.pdf", MimeType: "application/pdf"}, strings.NewReader("%PDF-1.4"), "c1", "u1")
	require.NoError(t, err)

	// Editar la biomasa sin adjuntar de nuevo: el PDF guardado sigue valiendo.
	out, err := f.uc.Update(context.Background(), creado.ID, dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
		Estado:          entity.EstadoFinalizado,
		BiomasaCosecha:  "93",
	}, nil, nil, "c1", "u1")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/acta.pdf", out.DocumentoCosecha)
	assert.Equal(t, "31.00", out.AlimentoPorHectarea)
}

func TestCicloReporteCosecha_SoloCiclosFinalizados(t *testing.T) {
	f := buildCicloUseCase(t)

	creado, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
	}, nil, nil, "c1", "u1")
	require.NoError(t, err)

	_, err = f.uc.ReporteCosecha(context.Background(), creado.ID, "c1")
	assert.ErrorIs(t, err, domain.ErrConflict)

	adjunto := &cultivo.Adjunto{Nombre: "acta.pdf", MimeType: "application/pdf"}
	_, err = f.uc.Update(context.Background(), creado.ID, dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
		Estado:          entity.EstadoFinalizado,
		BiomasaCosecha:  "120",
	}, adjunto, strings.NewReader("%PDF-1.4"), "c1", "u1")
	require.NoError(t, err)

	pdf, err := f.uc.ReporteCosecha(context.Background(), creado.ID, "c1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestCicloGetByID_OtraCompaniaNoVeElCiclo(t *testing.T) {
	f := buildCicloUseCase(t)

	creado, err := f.uc.Create(context.Background(), dto.SaveCicloRequest{
		IDPiscina:       "p1",
		FechaSiembra:    "2026-03-15",
		CantidadSiembra: "150",
	}, nil, nil, "c1", "u1")
	require.NoError(t, err)

	out, err := f.uc.GetByID(context.Background(), creado.ID, "c-otra")
	require.NoError(t, err)
	assert.Nil(t, out)
}

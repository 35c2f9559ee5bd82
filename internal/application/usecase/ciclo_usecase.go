package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/cultivo"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
	"github.com/Guimi21/Camaronera-SG-sub001/pkg/logger"
)

const fechaLayout = "2006-01-02"

// CicloUseCase aplica las reglas de negocio de ciclos productivos: el
// formulario pasa por el motor de recomputación de derivados y por los
// validadores antes de persistir.
type CicloUseCase struct {
	ciclos   repository.CicloRepository
	piscinas repository.PiscinaRepository
	muestras repository.MuestraRepository
	archivos ArchivoStore
	eventos  EventPublisher // puede ser nil
	reportes ReporteCosechaGenerator
	log      *logger.Logger
}

// NewCicloUseCase construye el caso de uso con sus colaboradores.
func NewCicloUseCase(
	ciclos repository.CicloRepository,
	piscinas repository.PiscinaRepository,
	muestras repository.MuestraRepository,
	archivos ArchivoStore,
	eventos EventPublisher,
	reportes ReporteCosechaGenerator,
	log *logger.Logger,
) *CicloUseCase {
	return &CicloUseCase{
		ciclos:   ciclos,
		piscinas: piscinas,
		muestras: muestras,
		archivos: archivos,
		eventos:  eventos,
		reportes: reportes,
		log:      log,
	}
}

// Create registra un nuevo ciclo. El estado inicial por defecto es EN_CURSO;
// crear directamente en FINALIZADO exige biomasa y documento de soporte.
func (uc *CicloUseCase) Create(ctx context.Context, in dto.SaveCicloRequest, adjunto *cultivo.Adjunto, contenido io.Reader, companiaID, usuarioID string) (*dto.CicloResponse, error) {
	if in.Estado == "" {
		in.Estado = entity.EstadoEnCurso
	}
	piscinas, err := uc.piscinas.ListByCompania(ctx, companiaID)
	if err != nil {
		return nil, err
	}
	form := formFromRequest(in)
	form = cultivo.Recompute(form, piscinas)

	if err := cultivo.ValidateSubmission(form, adjunto, companiaID, usuarioID); err != nil {
		return nil, err
	}
	ciclo, err := uc.buildCiclo(form, companiaID)
	if err != nil {
		return nil, err
	}
	ciclo.ID = uuid.New().String()
	now := time.Now()
	ciclo.CreatedAt = now
	ciclo.UpdatedAt = now

	if adjunto != nil {
		ruta, err := uc.archivos.Save(ctx, adjunto.Nombre, contenido)
		if err != nil {
			return nil, err
		}
		ciclo.DocumentoCosecha = ruta
	}
	if err := uc.ciclos.Create(ctx, ciclo); err != nil {
		return nil, err
	}
	if ciclo.Estado == entity.EstadoFinalizado {
		uc.publishFinalizado(ctx, ciclo, piscinas)
	}
	return toCicloResponse(ciclo), nil
}

// Update modifica un ciclo existente aplicando las mismas reglas reactivas.
// Un documento de soporte ya almacenado satisface el requisito al finalizar;
// un adjunto nuevo lo reemplaza.
func (uc *CicloUseCase) Update(ctx context.Context, id string, in dto.SaveCicloRequest, adjunto *cultivo.Adjunto, contenido io.Reader, companiaID, usuarioID string) (*dto.CicloResponse, error) {
	existente, err := uc.ciclos.GetByID(ctx, id, companiaID)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}
	piscinas, err := uc.piscinas.ListByCompania(ctx, companiaID)
	if err != nil {
		return nil, err
	}
	form := formFromRequest(in)
	form = cultivo.Recompute(form, piscinas)

	// Validación granular: el documento ya persistido cuenta como soporte.
	if err := cultivo.ValidateBasicFields(form); err != nil {
		return nil, err
	}
	adjuntoEfectivo := adjunto
	if adjuntoEfectivo == nil && existente.DocumentoCosecha != "" {
		adjuntoEfectivo = &cultivo.Adjunto{Nombre: existente.DocumentoCosecha, MimeType: "application/pdf"}
	}
	if err := cultivo.ValidateFinalizedFields(form, adjuntoEfectivo); err != nil {
		return nil, err
	}
	if err := cultivo.ValidatePDFType(adjunto); err != nil {
		return nil, err
	}
	if companiaID == "" || usuarioID == "" {
		return nil, fmt.Errorf("%w: no se pudo determinar la compañía o el usuario de la sesión", domain.ErrInvalidInput)
	}

	actualizado, err := uc.buildCiclo(form, companiaID)
	if err != nil {
		return nil, err
	}
	actualizado.ID = existente.ID
	actualizado.CreatedAt = existente.CreatedAt
	actualizado.UpdatedAt = time.Now()
	actualizado.DocumentoCosecha = existente.DocumentoCosecha

	if adjunto != nil {
		ruta, err := uc.archivos.Save(ctx, adjunto.Nombre, contenido)
		if err != nil {
			return nil, err
		}
		actualizado.DocumentoCosecha = ruta
	}
	if err := uc.ciclos.Update(ctx, actualizado); err != nil {
		return nil, err
	}
	if existente.Estado != entity.EstadoFinalizado && actualizado.Estado == entity.EstadoFinalizado {
		uc.publishFinalizado(ctx, actualizado, piscinas)
	}
	return toCicloResponse(actualizado), nil
}

// GetByID obtiene un ciclo de la compañía activa.
func (uc *CicloUseCase) GetByID(ctx context.Context, id, companiaID string) (*dto.CicloResponse, error) {
	c, err := uc.ciclos.GetByID(ctx, id, companiaID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCicloResponse(c), nil
}

// List lista los ciclos de la compañía activa con su total.
func (uc *CicloUseCase) List(ctx context.Context, companiaID string, limit, offset int) ([]dto.CicloResponse, int, error) {
	list, err := uc.ciclos.ListByCompania(ctx, companiaID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.ciclos.CountByCompania(ctx, companiaID)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.CicloResponse, 0, len(list))
	for i := range list {
		items = append(items, *toCicloResponse(&list[i]))
	}
	return items, total, nil
}

// Resumen devuelve el ciclo con su última muestra por fecha, que es la que
// determina las métricas actuales.
func (uc *CicloUseCase) Resumen(ctx context.Context, id, companiaID string) (*dto.ResumenCicloResponse, error) {
	c, err := uc.ciclos.GetByID(ctx, id, companiaID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	ultima, err := uc.muestras.LatestByCiclo(ctx, id, companiaID)
	if err != nil {
		return nil, err
	}
	out := &dto.ResumenCicloResponse{Ciclo: *toCicloResponse(c)}
	if ultima != nil {
		out.UltimaMuestra = toMuestraResponse(ultima, nil)
	}
	return out, nil
}

// ReporteCosecha genera el acta de cosecha en PDF. Solo aplica a ciclos
// finalizados.
func (uc *CicloUseCase) ReporteCosecha(ctx context.Context, id, companiaID string) ([]byte, error) {
	c, err := uc.ciclos.GetByID(ctx, id, companiaID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.Estado != entity.EstadoFinalizado {
		return nil, fmt.Errorf("%w: el reporte de cosecha solo aplica a ciclos finalizados", domain.ErrConflict)
	}
	piscina, err := uc.piscinas.GetByID(ctx, c.PiscinaID, companiaID)
	if err != nil {
		return nil, err
	}
	muestras, err := uc.muestras.ListByCiclo(ctx, id, companiaID)
	if err != nil {
		return nil, err
	}
	return uc.reportes.Generate(ctx, c, piscina, muestras)
}

// publishFinalizado publica el evento de finalización. Es best-effort: un
// broker caído no interrumpe el guardado del ciclo.
func (uc *CicloUseCase) publishFinalizado(ctx context.Context, c *entity.Ciclo, piscinas []entity.Piscina) {
	if uc.eventos == nil {
		return
	}
	var codigo string
	for i := range piscinas {
		if piscinas[i].ID == c.PiscinaID {
			codigo = piscinas[i].Codigo
			break
		}
	}
	ev := CicloFinalizadoEvent{
		CicloID:             c.ID,
		PiscinaCodigo:       codigo,
		CompaniaID:          c.CompaniaID,
		FechaSiembra:        c.FechaSiembra.Format(fechaLayout),
		AlimentoPorHectarea: c.AlimentoPorHectarea,
		FinalizadoEn:        time.Now().UTC().Format(time.RFC3339),
	}
	if c.BiomasaCosecha != nil {
		ev.BiomasaCosecha = c.BiomasaCosecha.String()
	}
	if err := uc.eventos.PublishCicloFinalizado(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Str("id_ciclo", c.ID).Msg("no se pudo publicar ciclo.finalizado")
	}
}

// buildCiclo convierte el formulario validado en la entidad persistible.
func (uc *CicloUseCase) buildCiclo(form cultivo.FormState, companiaID string) (*entity.Ciclo, error) {
	fecha, err := time.Parse(fechaLayout, form.FechaSiembra)
	if err != nil {
		return nil, fmt.Errorf("%w: la fecha de siembra debe tener formato AAAA-MM-DD", domain.ErrInvalidInput)
	}
	cantidad, err := decimal.NewFromString(form.CantidadSiembra)
	if err != nil {
		return nil, fmt.Errorf("%w: la cantidad de siembra debe ser numérica", domain.ErrInvalidInput)
	}
	c := &entity.Ciclo{
		PiscinaID:           form.PiscinaID,
		FechaSiembra:        fecha,
		CantidadSiembra:     cantidad,
		Densidad:            form.Densidad,
		Estado:              form.Estado,
		AlimentoPorHectarea: form.AlimentoPorHectarea,
		CompaniaID:          companiaID,
	}
	if form.BiomasaCosecha != "" {
		biomasa, err := decimal.NewFromString(form.BiomasaCosecha)
		if err != nil {
			return nil, fmt.Errorf("%w: la biomasa de cosecha debe ser numérica", domain.ErrInvalidInput)
		}
		c.BiomasaCosecha = &biomasa
	}
	return c, nil
}

func formFromRequest(in dto.SaveCicloRequest) cultivo.FormState {
	return cultivo.FormState{
		PiscinaID:       in.IDPiscina,
		FechaSiembra:    in.FechaSiembra,
		CantidadSiembra: in.CantidadSiembra,
		Estado:          in.Estado,
		BiomasaCosecha:  in.BiomasaCosecha,
	}
}

func toCicloResponse(c *entity.Ciclo) *dto.CicloResponse {
	out := &dto.CicloResponse{
		ID:                  c.ID,
		IDPiscina:           c.PiscinaID,
		FechaSiembra:        c.FechaSiembra.Format(fechaLayout),
		CantidadSiembra:     c.CantidadSiembra.String(),
		Densidad:            c.Densidad,
		Estado:              c.Estado,
		AlimentoPorHectarea: c.AlimentoPorHectarea,
		DocumentoCosecha:    c.DocumentoCosecha,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
	if c.BiomasaCosecha != nil {
		out.BiomasaCosecha = c.BiomasaCosecha.String()
	}
	return out
}

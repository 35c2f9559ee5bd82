package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
)

// MuestraTxRunner ejecuta la creación de la muestra y sus consumos de forma
// atómica. La implementación PostgreSQL vive en infrastructure/postgres.
type MuestraTxRunner interface {
	RunMuestra(ctx context.Context, fn func(
		muestraRepo repository.MuestraRepository,
		consumoRepo repository.ConsumoAlimentoRepository,
	) error) error
}

// MuestraUseCase aplica reglas de negocio para muestreos de ciclos.
type MuestraUseCase struct {
	tx       MuestraTxRunner
	muestras repository.MuestraRepository
	consumos repository.ConsumoAlimentoRepository
	ciclos   repository.CicloRepository
	alimento repository.AlimentoRepository
}

// NewMuestraUseCase construye el caso de uso.
func NewMuestraUseCase(
	tx MuestraTxRunner,
	muestras repository.MuestraRepository,
	consumos repository.ConsumoAlimentoRepository,
	ciclos repository.CicloRepository,
	alimento repository.AlimentoRepository,
) *MuestraUseCase {
	return &MuestraUseCase{
		tx:       tx,
		muestras: muestras,
		consumos: consumos,
		ciclos:   ciclos,
		alimento: alimento,
	}
}

// Create registra una muestra con sus filas de consumo en una sola
// transacción. El ciclo debe existir en la compañía activa y seguir EN_CURSO;
// cada consumo referencia un alimento de la misma compañía.
func (uc *MuestraUseCase) Create(ctx context.Context, in dto.CreateMuestraRequest, companiaID, usuarioID string) (*dto.MuestraResponse, error) {
	ciclo, err := uc.ciclos.GetByID(ctx, in.IDCiclo, companiaID)
	if err != nil {
		return nil, err
	}
	if ciclo == nil {
		return nil, domain.ErrNotFound
	}
	if ciclo.Estado == entity.EstadoFinalizado {
		return nil, fmt.Errorf("%w: no se pueden registrar muestras en un ciclo finalizado", domain.ErrConflict)
	}

	m, err := buildMuestra(in, companiaID, usuarioID)
	if err != nil {
		return nil, err
	}

	consumos := make([]entity.ConsumoAlimento, 0, len(in.Consumos))
	for _, c := range in.Consumos {
		alimento, err := uc.alimento.GetByID(ctx, c.IDAlimento, companiaID)
		if err != nil {
			return nil, err
		}
		if alimento == nil {
			return nil, fmt.Errorf("%w: el alimento %s no existe en la compañía", domain.ErrInvalidInput, c.IDAlimento)
		}
		cantidad, err := decimal.NewFromString(c.Cantidad)
		if err != nil || !cantidad.IsPositive() {
			return nil, fmt.Errorf("%w: la cantidad de consumo debe ser un número mayor que cero", domain.ErrInvalidInput)
		}
		consumos = append(consumos, entity.ConsumoAlimento{
			ID:         uuid.New().String(),
			MuestraID:  m.ID,
			AlimentoID: c.IDAlimento,
			Cantidad:   cantidad,
			CompaniaID: companiaID,
		})
	}

	err = uc.tx.RunMuestra(ctx, func(
		muestraRepo repository.MuestraRepository,
		consumoRepo repository.ConsumoAlimentoRepository,
	) error {
		if err := muestraRepo.Create(ctx, m); err != nil {
			return err
		}
		return consumoRepo.CreateBatch(ctx, consumos)
	})
	if err != nil {
		return nil, err
	}
	return toMuestraResponse(m, consumos), nil
}

// ListByCiclo lista las muestras de un ciclo de la compañía activa, cada una
// con sus consumos.
func (uc *MuestraUseCase) ListByCiclo(ctx context.Context, cicloID, companiaID string) ([]dto.MuestraResponse, error) {
	list, err := uc.muestras.ListByCiclo(ctx, cicloID, companiaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MuestraResponse, 0, len(list))
	for i := range list {
		consumos, err := uc.consumos.ListByMuestra(ctx, list[i].ID, companiaID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toMuestraResponse(&list[i], consumos))
	}
	return items, nil
}

// buildMuestra valida y parsea la entrada. Todos los campos numéricos son
// obligatorios salvo las observaciones.
func buildMuestra(in dto.CreateMuestraRequest, companiaID, usuarioID string) (*entity.Muestra, error) {
	if in.DiasCultivo <= 0 {
		return nil, fmt.Errorf("%w: los días de cultivo deben ser mayores que cero", domain.ErrInvalidInput)
	}
	fecha, err := time.Parse(fechaLayout, in.FechaMuestra)
	if err != nil {
		return nil, fmt.Errorf("%w: la fecha de muestra debe tener formato AAAA-MM-DD", domain.ErrInvalidInput)
	}
	campos := []struct {
		nombre string
		valor  string
	}{
		{"peso promedio", in.PesoPromedio},
		{"incremento de peso", in.IncrementoPeso},
		{"biomasa en libras", in.BiomasaLbs},
		{"alimento acumulado", in.AlimentoAcumulado},
		{"conversión alimenticia", in.ConversionAlimenticia},
		{"población actual", in.PoblacionActual},
		{"índice de supervivencia", in.IndiceSupervivencia},
	}
	valores := make([]decimal.Decimal, len(campos))
	for i, c := range campos {
		v, err := decimal.NewFromString(c.valor)
		if err != nil {
			return nil, fmt.Errorf("%w: el campo %s debe ser numérico", domain.ErrInvalidInput, c.nombre)
		}
		if v.IsNegative() {
			return nil, fmt.Errorf("%w: el campo %s no puede ser negativo", domain.ErrInvalidInput, c.nombre)
		}
		valores[i] = v
	}
	now := time.Now()
	return &entity.Muestra{
		ID:                    uuid.New().String(),
		CicloID:               in.IDCiclo,
		DiasCultivo:           in.DiasCultivo,
		PesoPromedio:          valores[0],
		IncrementoPeso:        valores[1],
		BiomasaLbs:            valores[2],
		AlimentoAcumulado:     valores[3],
		ConversionAlimenticia: valores[4],
		PoblacionActual:       valores[5],
		IndiceSupervivencia:   valores[6],
		Observaciones:         in.Observaciones,
		FechaMuestra:          fecha,
		CompaniaID:            companiaID,
		UsuarioCreacion:       usuarioID,
		UsuarioActualizacion:  usuarioID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}, nil
}

func toMuestraResponse(m *entity.Muestra, consumos []entity.ConsumoAlimento) *dto.MuestraResponse {
	out := &dto.MuestraResponse{
		ID:                    m.ID,
		IDCiclo:               m.CicloID,
		DiasCultivo:           m.DiasCultivo,
		PesoPromedio:          m.PesoPromedio.String(),
		IncrementoPeso:        m.IncrementoPeso.String(),
		BiomasaLbs:            m.BiomasaLbs.String(),
		AlimentoAcumulado:     m.AlimentoAcumulado.String(),
		ConversionAlimenticia: m.ConversionAlimenticia.String(),
		PoblacionActual:       m.PoblacionActual.String(),
		IndiceSupervivencia:   m.IndiceSupervivencia.String(),
		Observaciones:         m.Observaciones,
		FechaMuestra:          m.FechaMuestra.Format(fechaLayout),
	}
	for _, c := range consumos {
		out.Consumos = append(out.Consumos, dto.ConsumoAlimentoResponse{
			IDAlimento: c.AlimentoID,
			Cantidad:   c.Cantidad.String(),
		})
	}
	return out
}

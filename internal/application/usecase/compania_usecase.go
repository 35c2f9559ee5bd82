package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
)

// CompaniaUseCase administra compañías y usuarios del grupo empresarial.
// Reservado al perfil Administrador (el gate vive en el middleware HTTP).
type CompaniaUseCase struct {
	companias repository.CompaniaRepository
	usuarios  repository.UsuarioRepository
	grupos    repository.GrupoEmpresarialRepository
}

// NewCompaniaUseCase construye el caso de uso.
func NewCompaniaUseCase(
	companias repository.CompaniaRepository,
	usuarios repository.UsuarioRepository,
	grupos repository.GrupoEmpresarialRepository,
) *CompaniaUseCase {
	return &CompaniaUseCase{companias: companias, usuarios: usuarios, grupos: grupos}
}

// CreateCompania crea una compañía. El nombre es único en el sistema; el
// duplicado se detecta proactivamente además del constraint de base.
func (uc *CompaniaUseCase) CreateCompania(ctx context.Context, in dto.CreateCompaniaRequest) (*dto.CompaniaResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre de la compañía es obligatorio", domain.ErrInvalidInput)
	}
	grupo, err := uc.grupos.GetByID(ctx, in.IDGrupoEmpresarial)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, fmt.Errorf("%w: el grupo empresarial no existe", domain.ErrInvalidInput)
	}
	existente, err := uc.companias.GetByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Compania{
		ID:                 uuid.New().String(),
		Nombre:             nombre,
		GrupoEmpresarialID: in.IDGrupoEmpresarial,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.companias.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCompaniaResponse(c), nil
}

// GetCompania obtiene una compañía por id.
func (uc *CompaniaUseCase) GetCompania(ctx context.Context, id string) (*dto.CompaniaResponse, error) {
	c, err := uc.companias.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCompaniaResponse(c), nil
}

// ListCompanias lista las compañías asignadas al usuario, ordenadas por nombre.
func (uc *CompaniaUseCase) ListCompanias(ctx context.Context, usuarioID string) ([]dto.CompaniaResponse, error) {
	list, err := uc.companias.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompaniaResponse, 0, len(list))
	for i := range list {
		items = append(items, *toCompaniaResponse(&list[i]))
	}
	return items, nil
}

// CreateUsuario crea un usuario activo con su contraseña hasheada con bcrypt.
// El login es único en el sistema.
func (uc *CompaniaUseCase) CreateUsuario(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Usuario) == "" {
		return nil, fmt.Errorf("%w: el nombre y el usuario son obligatorios", domain.ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	existente, err := uc.usuarios.FindByUsername(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:                 uuid.New().String(),
		Nombre:             in.Nombre,
		Usuario:            in.Usuario,
		PasswordHash:       string(hash),
		Estado:             entity.UsuarioActivo,
		GrupoEmpresarialID: in.IDGrupoEmpresarial,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.usuarios.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// ListUsuarios lista los usuarios de un grupo empresarial con paginación.
func (uc *CompaniaUseCase) ListUsuarios(ctx context.Context, grupoID string, limit, offset int) ([]dto.UsuarioResponse, error) {
	list, err := uc.usuarios.ListByGrupo(ctx, grupoID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for i := range list {
		items = append(items, *toUsuarioResponse(&list[i]))
	}
	return items, nil
}

func toCompaniaResponse(c *entity.Compania) *dto.CompaniaResponse {
	return &dto.CompaniaResponse{
		ID:                 c.ID,
		Nombre:             c.Nombre,
		IDGrupoEmpresarial: c.GrupoEmpresarialID,
	}
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:                 u.ID,
		Nombre:             u.Nombre,
		Usuario:            u.Usuario,
		Estado:             u.Estado,
		IDGrupoEmpresarial: u.GrupoEmpresarialID,
	}
}

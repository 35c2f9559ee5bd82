// Package auth implementa la resolución de sesión y acceso: dado un
// usuario+password resuelve identidad, perfiles, compañías accesibles y el
// conjunto de menús visible, y emite el token de la sesión.
package auth

import (
	"context"
	"sort"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/navigation"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/repository"
	"github.com/Guimi21/Camaronera-SG-sub001/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// MenuCache cache opcional de resolución de menús por conjunto de perfiles.
// Una implementación nil-safe vive en infrastructure/cache; un miss (ok=false)
// nunca es un error.
type MenuCache interface {
	Get(ctx context.Context, perfilIDs []string) ([]entity.Menu, bool)
	Set(ctx context.Context, perfilIDs []string, menus []entity.Menu)
}

// SessionUseCase resuelve la sesión en el login y el cambio de compañía activa.
type SessionUseCase struct {
	usuarios  repository.UsuarioRepository
	perfiles  repository.PerfilRepository
	companias repository.CompaniaRepository
	grupos    repository.GrupoEmpresarialRepository
	menus     repository.MenuRepository
	cache     MenuCache // puede ser nil
	iconos    *navigation.IconRegistry
	jwtCfg    JWTConfig
	collator  *collate.Collator
}

// NewSessionUseCase construye el caso de uso con sus puertos de persistencia.
func NewSessionUseCase(
	usuarios repository.UsuarioRepository,
	perfiles repository.PerfilRepository,
	companias repository.CompaniaRepository,
	grupos repository.GrupoEmpresarialRepository,
	menus repository.MenuRepository,
	cache MenuCache,
	iconos *navigation.IconRegistry,
	jwtCfg JWTConfig,
) *SessionUseCase {
	return &SessionUseCase{
		usuarios:  usuarios,
		perfiles:  perfiles,
		companias: companias,
		grupos:    grupos,
		menus:     menus,
		cache:     cache,
		iconos:    iconos,
		jwtCfg:    jwtCfg,
		collator:  collate.New(language.Spanish),
	}
}

// Login verifica credenciales y arma el payload de sesión completo. El fallo
// de credenciales es siempre domain.ErrInvalidCredentials, sin revelar si
// falló el usuario o la contraseña. Una lista vacía de perfiles o compañías
// no es error: sin perfiles no hay menús; sin compañías el usuario opera a
// nivel de grupo empresarial.
func (uc *SessionUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	u, err := uc.usuarios.FindByUsername(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if u.Estado != entity.UsuarioActivo {
		return nil, domain.ErrForbidden
	}

	perfiles, err := uc.perfiles.ListByUsuario(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	uc.sortPerfiles(perfiles)

	companias, err := uc.companias.ListByUsuario(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	uc.sortCompanias(companias)

	var grupoNombre string
	if grupo, err := uc.grupos.GetByID(ctx, u.GrupoEmpresarialID); err != nil {
		return nil, err
	} else if grupo != nil {
		grupoNombre = grupo.Nombre
	}

	menus, err := uc.resolveMenus(ctx, perfiles)
	if err != nil {
		return nil, err
	}

	// La primera compañía por nombre es la compañía activa por defecto.
	var companiaID, companiaNombre string
	if len(companias) > 0 {
		companiaID = companias[0].ID
		companiaNombre = companias[0].Nombre
	}

	var perfilActivo string
	if len(perfiles) > 0 {
		perfilActivo = perfiles[0].Nombre
	}
	landing, _ := navigation.DefaultLanding(perfilActivo)

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, companiaID, perfilActivo, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	out := &dto.SessionResponse{
		IDUsuario:        u.ID,
		Nombre:           u.Nombre,
		Usuario:          u.Usuario,
		Perfiles:         make([]dto.PerfilResponse, 0, len(perfiles)),
		GrupoEmpresarial: grupoNombre,
		Companias:        make([]dto.CompaniaSesion, 0, len(companias)),
		Compania:         companiaNombre,
		IDCompania:       companiaID,
		Menus:            menus,
		Landing:          landing,
		Token:            token,
	}
	for _, p := range perfiles {
		out.Perfiles = append(out.Perfiles, dto.PerfilResponse{ID: p.ID, Nombre: p.Nombre})
	}
	for _, c := range companias {
		out.Companias = append(out.Companias, dto.CompaniaSesion{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

// SwitchCompania cambia la compañía activa de la sesión sin reautenticar:
// verifica la membresía y reemite el token con el nuevo alcance.
func (uc *SessionUseCase) SwitchCompania(ctx context.Context, usuarioID, perfil, companiaID string) (*dto.SwitchCompaniaResponse, error) {
	asignada, err := uc.companias.AsignadaAUsuario(ctx, usuarioID, companiaID)
	if err != nil {
		return nil, err
	}
	if !asignada {
		return nil, domain.ErrCompanyNotAssigned
	}
	compania, err := uc.companias.GetByID(ctx, companiaID)
	if err != nil {
		return nil, err
	}
	if compania == nil {
		return nil, domain.ErrNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuarioID, companiaID, perfil, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SwitchCompaniaResponse{
		Compania:   compania.Nombre,
		IDCompania: compania.ID,
		Token:      token,
	}, nil
}

// resolveMenus obtiene los menús activos del conjunto de perfiles, pasando
// por el cache cuando está configurado, y deduplica por id de menú aunque
// dos perfiles compartan un menú.
func (uc *SessionUseCase) resolveMenus(ctx context.Context, perfiles []entity.Perfil) ([]dto.MenuResponse, error) {
	if len(perfiles) == 0 {
		return []dto.MenuResponse{}, nil
	}
	perfilIDs := make([]string, 0, len(perfiles))
	for _, p := range perfiles {
		perfilIDs = append(perfilIDs, p.ID)
	}
	sort.Strings(perfilIDs) // clave de cache estable

	var menus []entity.Menu
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, perfilIDs); ok {
			menus = cached
		}
	}
	if menus == nil {
		var err error
		menus, err = uc.menus.ListActivosByPerfiles(ctx, perfilIDs)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			uc.cache.Set(ctx, perfilIDs, menus)
		}
	}

	vistos := make(map[string]bool, len(menus))
	out := make([]dto.MenuResponse, 0, len(menus))
	for _, m := range menus {
		if vistos[m.ID] {
			continue
		}
		vistos[m.ID] = true
		out = append(out, dto.MenuResponse{
			ID:     m.ID,
			Nombre: m.Nombre,
			Ruta:   m.Ruta,
			Icono:  uc.iconos.Lookup(m.Icono),
			Modulo: m.ModuloNombre,
		})
	}
	return out, nil
}

// sortPerfiles y sortCompanias ordenan por nombre con colación española,
// independiente de la colación que tenga configurada la base.
func (uc *SessionUseCase) sortPerfiles(perfiles []entity.Perfil) {
	sort.SliceStable(perfiles, func(i, j int) bool {
		return uc.collator.CompareString(perfiles[i].Nombre, perfiles[j].Nombre) < 0
	})
}

func (uc *SessionUseCase) sortCompanias(companias []entity.Compania) {
	sort.SliceStable(companias, func(i, j int) bool {
		return uc.collator.CompareString(companias[i].Nombre, companias[j].Nombre) < 0
	})
}

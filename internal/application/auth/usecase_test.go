package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/auth"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/navigation"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarios struct {
	porUsuario map[string]*entity.Usuario
}

func (f *fakeUsuarios) Create(ctx context.Context, u *entity.Usuario) error { return nil }
func (f *fakeUsuarios) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarios) FindByUsername(ctx context.Context, usuario string) (*entity.Usuario, error) {
	return f.porUsuario[usuario], nil
}
func (f *fakeUsuarios) ListByGrupo(ctx context.Context, grupoID string, limit, offset int) ([]entity.Usuario, error) {
	return nil, nil
}

type fakePerfiles struct {
	porUsuario map[string][]entity.Perfil
}

func (f *fakePerfiles) ListByUsuario(ctx context.Context, usuarioID string) ([]entity.Perfil, error) {
	return f.porUsuario[usuarioID], nil
}

type fakeCompanias struct {
	porUsuario map[string][]entity.Compania
}

func (f *fakeCompanias) Create(ctx context.Context, c *entity.Compania) error { return nil }
func (f *fakeCompanias) GetByID(ctx context.Context, id string) (*entity.Compania, error) {
	for _, list := range f.porUsuario {
		for _, c := range list {
			if c.ID == id {
				return &c, nil
			}
		}
	}
	return nil, nil
}
func (f *fakeCompanias) GetByNombre(ctx context.Context, nombre string) (*entity.Compania, error) {
	return nil, nil
}
func (f *fakeCompanias) ListByUsuario(ctx context.Context, usuarioID string) ([]entity.Compania, error) {
	return f.porUsuario[usuarioID], nil
}
func (f *fakeCompanias) AsignadaAUsuario(ctx context.Context, usuarioID, companiaID string) (bool, error) {
	for _, c := range f.porUsuario[usuarioID] {
		if c.ID == companiaID {
			return true, nil
		}
	}
	return false, nil
}

type fakeGrupos struct {
	grupos map[string]*entity.GrupoEmpresarial
}

func (f *fakeGrupos) GetByID(ctx context.Context, id string) (*entity.GrupoEmpresarial, error) {
	return f.grupos[id], nil
}

type fakeMenus struct {
	menus []entity.Menu
}

func (f *fakeMenus) ListActivosByPerfiles(ctx context.Context, perfilIDs []string) ([]entity.Menu, error) {
	return f.menus, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso
// ──────────────────────────────────────────────────────────────────────────────

const passwordPlano = "secreto-123"

func hashDe(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func buildUseCase(t *testing.T, menus []entity.Menu) *auth.SessionUseCase {
	t.Helper()
	usuarios := &fakeUsuarios{porUsuario: map[string]*entity.Usuario{
		"mgonzalez": {
			ID:                 "u1",
			Nombre:             "María González",
			Usuario:            "mgonzalez",
			PasswordHash:       hashDe(t, passwordPlano),
			Estado:             entity.UsuarioActivo,
			GrupoEmpresarialID: "g1",
		},
	}}
	// Perfiles fuera de orden alfabético a propósito.
	perfiles := &fakePerfiles{porUsuario: map[string][]entity.Perfil{
		"u1": {
			{ID: "pf2", Nombre: "Supervisor"},
			{ID: "pf1", Nombre: "Administrador"},
		},
	}}
	// Compañías fuera de orden: la primera por nombre debe ser la activa.
	companias := &fakeCompanias{porUsuario: map[string][]entity.Compania{
		"u1": {
			{ID: "c3", Nombre: "Camaronera del Sur"},
			{ID: "c1", Nombre: "Acuacultura Norte"},
			{ID: "c2", Nombre: "Bioacuática Central"},
		},
	}}
	grupos := &fakeGrupos{grupos: map[string]*entity.GrupoEmpresarial{
		"g1": {ID: "g1", Nombre: "Grupo Camarón SA"},
	}}
	return auth.NewSessionUseCase(
		usuarios, perfiles, companias, grupos, &fakeMenus{menus: menus},
		nil, navigation.NewIconRegistry(),
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OrdenaCompaniasYTomaLaPrimeraComoActiva(t *testing.T) {
	uc := buildUseCase(t, nil)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Usuario: "mgonzalez", Password: passwordPlano,
	})
	require.NoError(t, err)

	require.Len(t, out.Companias, 3)
	assert.Equal(t, "Acuacultura Norte", out.Companias[0].Nombre)
	assert.Equal(t, "Bioacuática Central", out.Companias[1].Nombre)
	assert.Equal(t, "Camaronera del Sur", out.Companias[2].Nombre)

	// compania/id_compania apuntan al primer elemento de la lista ordenada.
	assert.Equal(t, "Acuacultura Norte", out.Compania)
	assert.Equal(t, "c1", out.IDCompania)

	require.Len(t, out.Perfiles, 2)
	assert.Equal(t, "Administrador", out.Perfiles[0].Nombre)
	assert.Equal(t, "Grupo Camarón SA", out.GrupoEmpresarial)
	// El aterrizaje corresponde al perfil activo (el primero ordenado).
	assert.Equal(t, "/administracion/companias", out.Landing)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_DeduplicaMenusPorID(t *testing.T) {
	// Dos perfiles comparten el menú m1: el repositorio puede devolverlo
	// repetido y la sesión debe quedar con un solo ejemplar.
	menus := []entity.Menu{
		{ID: "m1", Nombre: "Ciclos", Ruta: "/produccion/ciclos", Icono: "ciclos", Estado: entity.MenuActivo, ModuloNombre: "Producción"},
		{ID: "m1", Nombre: "Ciclos", Ruta: "/produccion/ciclos", Icono: "ciclos", Estado: entity.MenuActivo, ModuloNombre: "Producción"},
		{ID: "m2", Nombre: "Piscinas", Ruta: "/produccion/piscinas", Icono: "piscinas", Estado: entity.MenuActivo, ModuloNombre: "Producción"},
	}
	uc := buildUseCase(t, menus)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Usuario: "mgonzalez", Password: passwordPlano,
	})
	require.NoError(t, err)

	require.Len(t, out.Menus, 2, "no debe haber ids de menú repetidos")
	assert.Equal(t, "m1", out.Menus[0].ID)
	assert.Equal(t, "ciclos", out.Menus[0].Icono)
}

func TestLogin_IconoNoRegistradoResuelveVacio(t *testing.T) {
	menus := []entity.Menu{
		{ID: "m9", Nombre: "Legacy", Ruta: "/legacy", Icono: "icono-que-no-existe", Estado: entity.MenuActivo, ModuloNombre: "Otros"},
	}
	uc := buildUseCase(t, menus)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Usuario: "mgonzalez", Password: passwordPlano,
	})
	require.NoError(t, err)
	require.Len(t, out.Menus, 1)
	assert.Empty(t, out.Menus[0].Icono)
}

func TestLogin_CredencialesInvalidasSonGenericas(t *testing.T) {
	uc := buildUseCase(t, nil)

	// Usuario inexistente y contraseña incorrecta producen el mismo error.
	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Usuario: "mgonzalez", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSwitchCompania_VerificaMembresia(t *testing.T) {
	uc := buildUseCase(t, nil)

	out, err := uc.SwitchCompania(context.Background(), "u1", "Administrador", "c2")
	require.NoError(t, err)
	assert.Equal(t, "c2", out.IDCompania)
	assert.Equal(t, "Bioacuática Central", out.Compania)
	assert.NotEmpty(t, out.Token)

	_, err = uc.SwitchCompania(context.Background(), "u1", "Administrador", "c-ajena")
	assert.ErrorIs(t, err, domain.ErrCompanyNotAssigned)
}

package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/Guimi21/Camaronera-SG-sub001/internal/interfaces/http"
	pkgjwt "github.com/Guimi21/Camaronera-SG-sub001/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testCompaniaID = "00000000-0000-0000-0000-000000000002"
	testIssuer     = "camaronera-sg-test"
	testExpMin     = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePerfil para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(perfilesPermitidos ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protegido",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePerfil(perfilesPermitidos...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":     true,
				"perfil": apphttp.GetPerfil(c),
			})
		},
	)
	return app
}

// tokenConPerfil genera un JWT con el perfil indicado.
func tokenConPerfil(t *testing.T, perfil string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompaniaID, perfil, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protegido y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePerfil
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El perfil activo está en la lista → HTTP 200.
func TestRequirePerfil_AdministradorAccede(t *testing.T) {
	app := buildTestApp(apphttp.PerfilAdministrador)
	resp := doRequest(t, app, tokenConPerfil(t, apphttp.PerfilAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, apphttp.PerfilAdministrador, body["perfil"])
}

// Caso 1b: Lista con varios perfiles permitidos → cualquiera de ellos pasa.
func TestRequirePerfil_DigitadorAccedeRutaMultiPerfil(t *testing.T) {
	app := buildTestApp(apphttp.PerfilSupervisor, apphttp.PerfilDigitador)
	resp := doRequest(t, app, tokenConPerfil(t, apphttp.PerfilDigitador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: Perfil fuera de la lista → HTTP 403.
func TestRequirePerfil_DigitadorBloqueadoEnAdministracion(t *testing.T) {
	app := buildTestApp(apphttp.PerfilAdministrador)
	resp := doRequest(t, app, tokenConPerfil(t, apphttp.PerfilDigitador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "no tiene acceso")
}

// Caso 3: Lista vacía de perfiles → la ruta no restringe; pasa cualquiera.
func TestRequirePerfil_ListaVaciaPermiteTodo(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenConPerfil(t, apphttp.PerfilDigitador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 4: Token sin claim de perfil → HTTP 401.
func TestRequirePerfil_TokenSinPerfilRetorna401(t *testing.T) {
	app := buildTestApp(apphttp.PerfilAdministrador)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompaniaID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Sin header Authorization → HTTP 401.
func TestRequirePerfil_SinAuthHeaderRetorna401(t *testing.T) {
	app := buildTestApp(apphttp.PerfilAdministrador)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Token inválido / malformado → HTTP 401.
func TestRequirePerfil_TokenInvalidoRetorna401(t *testing.T) {
	app := buildTestApp(apphttp.PerfilAdministrador)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":     apphttp.GetUserID(c),
			"id_compania": apphttp.GetCompaniaID(c),
			"perfil":      apphttp.GetPerfil(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenConPerfil(t, apphttp.PerfilSupervisor))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testCompaniaID, body["id_compania"])
	assert.Equal(t, apphttp.PerfilSupervisor, body["perfil"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConPerfil(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompaniaID, apphttp.PerfilDigitador, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, companiaID, perfil, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testCompaniaID, companiaID)
	assert.Equal(t, apphttp.PerfilDigitador, perfil)
}

func TestJWT_TokenExpiradoRetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompaniaID, apphttp.PerfilSupervisor, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrectoRetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompaniaID, apphttp.PerfilSupervisor, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

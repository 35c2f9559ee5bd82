package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
)

// RequirePerfil devuelve un middleware Fiber que verifica que el perfil activo
// del token esté en la lista de perfiles permitidos. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalPerfil).
//
// Comportamiento:
//   - Lista vacía de perfiles → la ruta no restringe por perfil; pasa.
//   - Token sin claim de perfil → 401.
//   - Perfil no incluido en la lista → 403.
func RequirePerfil(perfiles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(perfiles) == 0 {
			return c.Next()
		}
		perfil := GetPerfil(c)
		if perfil == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("el token no incluye perfil"))
		}
		for _, p := range perfiles {
			if p == perfil {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("el perfil '" + perfil + "' no tiene acceso a esta operación"))
	}
}

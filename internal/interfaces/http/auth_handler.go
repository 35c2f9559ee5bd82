package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/auth"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
)

// AuthHandler maneja login y cambio de compañía activa.
type AuthHandler struct {
	uc *auth.SessionUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.SessionUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Envelope{data=dto.SessionResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if in.Usuario == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("usuario y password son requeridos"))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OK("sesión iniciada", out))
}

// SwitchCompania godoc
// @Summary      Cambiar la compañía activa de la sesión
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchCompaniaRequest  true  "Compañía destino"
// @Success      200   {object}  dto.Envelope{data=dto.SwitchCompaniaResponse}
// @Failure      403   {object}  dto.Envelope
// @Router       /api/auth/compania [post]
func (h *AuthHandler) SwitchCompania(c *fiber.Ctx) error {
	var in dto.SwitchCompaniaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if in.IDCompania == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id_compania es requerido"))
	}
	out, err := h.uc.SwitchCompania(c.Context(), GetUserID(c), GetPerfil(c), in.IDCompania)
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OK("compañía activa actualizada", out))
}

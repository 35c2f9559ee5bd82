package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
)

// AlimentoHandler maneja las peticiones HTTP para tipos de alimento (protegido).
type AlimentoHandler struct {
	uc *usecase.AlimentoUseCase
}

// NewAlimentoHandler construye el handler.
func NewAlimentoHandler(uc *usecase.AlimentoUseCase) *AlimentoHandler {
	return &AlimentoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de alimento
// @Tags         alimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlimentoRequest  true  "Datos del alimento"
// @Success      201   {object}  dto.Envelope{data=dto.AlimentoResponse}
// @Router       /api/alimentos [post]
func (h *AlimentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), in, GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("alimento creado", out))
}

// List godoc
// @Summary      Listar tipos de alimento de la compañía activa
// @Tags         alimentos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.AlimentoResponse}
// @Router       /api/alimentos [get]
func (h *AlimentoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OKList("alimentos listados", out, len(out)))
}

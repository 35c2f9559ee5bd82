package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
)

// PiscinaHandler maneja las peticiones HTTP para piscinas (protegido).
type PiscinaHandler struct {
	uc *usecase.PiscinaUseCase
}

// NewPiscinaHandler construye el handler.
func NewPiscinaHandler(uc *usecase.PiscinaUseCase) *PiscinaHandler {
	return &PiscinaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear piscina
// @Tags         piscinas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePiscinaRequest  true  "Datos de la piscina"
// @Success      201   {object}  dto.Envelope{data=dto.PiscinaResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/piscinas [post]
func (h *PiscinaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePiscinaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), in, GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("piscina creada", out))
}

// GetByID godoc
// @Summary      Obtener piscina por ID
// @Tags         piscinas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la piscina"
// @Success      200  {object}  dto.Envelope{data=dto.PiscinaResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/piscinas/{id} [get]
func (h *PiscinaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("piscina no encontrada"))
	}
	return c.JSON(dto.OK("piscina encontrada", out))
}

// List godoc
// @Summary      Listar piscinas de la compañía activa
// @Tags         piscinas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.PiscinaResponse}
// @Router       /api/piscinas [get]
func (h *PiscinaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OKList("piscinas listadas", out, len(out)))
}

// Update godoc
// @Summary      Actualizar piscina
// @Tags         piscinas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la piscina"
// @Param        body  body  dto.UpdatePiscinaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.PiscinaResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/piscinas/{id} [put]
func (h *PiscinaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePiscinaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OK("piscina actualizada", out))
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
)

// MuestraHandler maneja las peticiones HTTP para muestreos (protegido).
type MuestraHandler struct {
	uc *usecase.MuestraUseCase
}

// NewMuestraHandler construye el handler.
func NewMuestraHandler(uc *usecase.MuestraUseCase) *MuestraHandler {
	return &MuestraHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar muestra con sus consumos de alimento
// @Tags         muestras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMuestraRequest  true  "Datos de la muestra"
// @Success      201   {object}  dto.Envelope{data=dto.MuestraResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/muestras [post]
func (h *MuestraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMuestraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if in.IDCiclo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id_ciclo es requerido"))
	}
	out, err := h.uc.Create(c.Context(), in, GetCompaniaID(c), GetUserID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("muestra registrada", out))
}

// ListByCiclo godoc
// @Summary      Listar muestras de un ciclo
// @Tags         muestras
// @Security     Bearer
// @Produce      json
// @Param        id_ciclo  query  string  true  "ID del ciclo"
// @Success      200  {object}  dto.Envelope{data=[]dto.MuestraResponse}
// @Router       /api/muestras [get]
func (h *MuestraHandler) ListByCiclo(c *fiber.Ctx) error {
	cicloID := c.Query("id_ciclo")
	if cicloID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id_ciclo es requerido"))
	}
	out, err := h.uc.ListByCiclo(c.Context(), cicloID, GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OKList("muestras listadas", out, len(out)))
}

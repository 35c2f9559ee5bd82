package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
)

// CompaniaHandler maneja la administración de compañías y usuarios.
// Reservado al perfil Administrador vía RequirePerfil en el router.
type CompaniaHandler struct {
	uc *usecase.CompaniaUseCase
}

// NewCompaniaHandler construye el handler.
func NewCompaniaHandler(uc *usecase.CompaniaUseCase) *CompaniaHandler {
	return &CompaniaHandler{uc: uc}
}

// CreateCompania godoc
// @Summary      Crear compañía
// @Tags         administracion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompaniaRequest  true  "Datos de la compañía"
// @Success      201   {object}  dto.Envelope{data=dto.CompaniaResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/companias [post]
func (h *CompaniaHandler) CreateCompania(c *fiber.Ctx) error {
	var in dto.CreateCompaniaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.CreateCompania(c.Context(), in)
	if err != nil {
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("compañía creada", out))
}

// GetCompania godoc
// @Summary      Obtener compañía por ID
// @Tags         administracion
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la compañía"
// @Success      200  {object}  dto.Envelope{data=dto.CompaniaResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/companias/{id} [get]
func (h *CompaniaHandler) GetCompania(c *fiber.Ctx) error {
	out, err := h.uc.GetCompania(c.Context(), c.Params("id"))
	if err != nil {
		return failFromError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("compañía no encontrada"))
	}
	return c.JSON(dto.OK("compañía encontrada", out))
}

// ListCompanias godoc
// @Summary      Listar compañías asignadas al usuario de la sesión
// @Tags         administracion
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CompaniaResponse}
// @Router       /api/companias [get]
func (h *CompaniaHandler) ListCompanias(c *fiber.Ctx) error {
	out, err := h.uc.ListCompanias(c.Context(), GetUserID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OKList("compañías listadas", out, len(out)))
}

// CreateUsuario godoc
// @Summary      Crear usuario
// @Tags         administracion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.Envelope{data=dto.UsuarioResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/usuarios [post]
func (h *CompaniaHandler) CreateUsuario(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.CreateUsuario(c.Context(), in)
	if err != nil {
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("usuario creado", out))
}

// ListUsuarios godoc
// @Summary      Listar usuarios de un grupo empresarial
// @Tags         administracion
// @Security     Bearer
// @Produce      json
// @Param        id_grupo  query  string  true  "ID del grupo empresarial"
// @Param        limit     query  int     false "Límite"   default(20)
// @Param        offset    query  int     false "Offset"   default(0)
// @Success      200  {object}  dto.Envelope{data=[]dto.UsuarioResponse}
// @Router       /api/usuarios [get]
func (h *CompaniaHandler) ListUsuarios(c *fiber.Ctx) error {
	grupoID := c.Query("id_grupo")
	if grupoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id_grupo es requerido"))
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListUsuarios(c.Context(), grupoID, page.Limit, page.Offset)
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OKList("usuarios listados", out, len(out)))
}

package http

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/dto"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/cultivo"
)

// CampoDocumento es el nombre del campo multipart del PDF de soporte.
const CampoDocumento = "documento_cosecha"

// CicloHandler maneja las peticiones HTTP para ciclos productivos (protegido).
// Crear y actualizar aceptan JSON o multipart/form-data; el multipart permite
// adjuntar el PDF de soporte de cosecha.
type CicloHandler struct {
	uc *usecase.CicloUseCase
}

// NewCicloHandler construye el handler.
func NewCicloHandler(uc *usecase.CicloUseCase) *CicloHandler {
	return &CicloHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ciclo productivo
// @Tags         ciclos
// @Security     Bearer
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        body  body  dto.SaveCicloRequest  true  "Datos del ciclo"
// @Success      201   {object}  dto.Envelope{data=dto.CicloResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/ciclos [post]
func (h *CicloHandler) Create(c *fiber.Ctx) error {
	in, adjunto, contenido, cerrar, err := parseCicloForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	defer cerrar()

	out, err := h.uc.Create(c.Context(), in, adjunto, contenido, GetCompaniaID(c), GetUserID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("ciclo creado", out))
}

// Update godoc
// @Summary      Actualizar ciclo productivo
// @Tags         ciclos
// @Security     Bearer
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path  string  true  "ID del ciclo"
// @Param        body  body  dto.SaveCicloRequest  true  "Datos del ciclo"
// @Success      200   {object}  dto.Envelope{data=dto.CicloResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/ciclos/{id} [put]
func (h *CicloHandler) Update(c *fiber.Ctx) error {
	in, adjunto, contenido, cerrar, err := parseCicloForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	defer cerrar()

	out, err := h.uc.Update(c.Context(), c.Params("id"), in, adjunto, contenido, GetCompaniaID(c), GetUserID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OK("ciclo actualizado", out))
}

// GetByID godoc
// @Summary      Obtener ciclo por ID
// @Tags         ciclos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ciclo"
// @Success      200  {object}  dto.Envelope{data=dto.CicloResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/ciclos/{id} [get]
func (h *CicloHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("ciclo no encontrado"))
	}
	return c.JSON(dto.OK("ciclo encontrado", out))
}

// List godoc
// @Summary      Listar ciclos de la compañía activa
// @Tags         ciclos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.Envelope{data=[]dto.CicloResponse}
// @Router       /api/ciclos [get]
func (h *CicloHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, total, err := h.uc.List(c.Context(), GetCompaniaID(c), page.Limit, page.Offset)
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OKList("ciclos listados", out, total))
}

// Resumen godoc
// @Summary      Resumen del ciclo con su última muestra
// @Tags         ciclos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ciclo"
// @Success      200  {object}  dto.Envelope{data=dto.ResumenCicloResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/ciclos/{id}/resumen [get]
func (h *CicloHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Context(), c.Params("id"), GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	return c.JSON(dto.OK("resumen del ciclo", out))
}

// ReporteCosecha godoc
// @Summary      Descargar el acta de cosecha en PDF
// @Tags         ciclos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del ciclo"
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.Envelope
// @Router       /api/ciclos/{id}/reporte [get]
func (h *CicloHandler) ReporteCosecha(c *fiber.Ctx) error {
	pdf, err := h.uc.ReporteCosecha(c.Context(), c.Params("id"), GetCompaniaID(c))
	if err != nil {
		return failFromError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="acta-cosecha.pdf"`)
	return c.Send(pdf)
}

// parseCicloForm lee el cuerpo como JSON o multipart. En multipart el PDF de
// soporte viaja en el campo documento_cosecha; cerrar siempre es invocable.
func parseCicloForm(c *fiber.Ctx) (dto.SaveCicloRequest, *cultivo.Adjunto, io.Reader, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		var in dto.SaveCicloRequest
		if err := c.BodyParser(&in); err != nil {
			return in, nil, nil, noop, err
		}
		return in, nil, nil, noop, nil
	}

	in := dto.SaveCicloRequest{
		IDPiscina:       c.FormValue(cultivo.CampoPiscina),
		FechaSiembra:    c.FormValue(cultivo.CampoFechaSiembra),
		CantidadSiembra: c.FormValue(cultivo.CampoCantidadSiembra),
		Estado:          c.FormValue(cultivo.CampoEstado),
		BiomasaCosecha:  c.FormValue(cultivo.CampoBiomasaCosecha),
	}

	fh, err := c.FormFile(CampoDocumento)
	if err != nil {
		// Sin archivo adjunto: multipart solo con campos.
		return in, nil, nil, noop, nil
	}
	f, err := fh.Open()
	if err != nil {
		return in, nil, nil, noop, err
	}
	adjunto := &cultivo.Adjunto{Nombre: fh.Filename, MimeType: mimeDe(fh)}
	return in, adjunto, f, func() { _ = f.Close() }, nil
}

func mimeDe(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

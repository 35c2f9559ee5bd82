package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/auth"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
)

// Perfiles reconocidos por el gate de autorización.
const (
	PerfilAdministrador = "Administrador"
	PerfilSupervisor    = "Supervisor"
	PerfilDigitador     = "Digitador"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC  *auth.SessionUseCase
	PiscinaUC  *usecase.PiscinaUseCase
	CicloUC    *usecase.CicloUseCase
	MuestraUC  *usecase.MuestraUseCase
	AlimentoUC *usecase.AlimentoUseCase
	CompaniaUC *usecase.CompaniaUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; el cambio de compañía exige sesión.
	authHandler := NewAuthHandler(deps.SessionUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/compania", AuthMiddleware(deps.JWTSecret), authHandler.SwitchCompania)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Piscinas: administración de infraestructura productiva.
	piscinas := protected.Group("/piscinas", RequirePerfil(PerfilAdministrador, PerfilSupervisor))
	piscinaHandler := NewPiscinaHandler(deps.PiscinaUC)
	piscinas.Post("/", piscinaHandler.Create)
	piscinas.Get("/", piscinaHandler.List)
	piscinas.Get("/:id", piscinaHandler.GetByID)
	piscinas.Put("/:id", piscinaHandler.Update)

	// Ciclos: los tres perfiles consultan; crear y cerrar queda en supervisión.
	cicloHandler := NewCicloHandler(deps.CicloUC)
	ciclos := protected.Group("/ciclos")
	ciclos.Get("/", cicloHandler.List)
	ciclos.Get("/:id", cicloHandler.GetByID)
	ciclos.Get("/:id/resumen", cicloHandler.Resumen)
	ciclos.Get("/:id/reporte", cicloHandler.ReporteCosecha)
	ciclos.Post("/", RequirePerfil(PerfilAdministrador, PerfilSupervisor), cicloHandler.Create)
	ciclos.Put("/:id", RequirePerfil(PerfilAdministrador, PerfilSupervisor), cicloHandler.Update)

	// Muestras: el digitador registra datos de campo.
	muestras := protected.Group("/muestras", RequirePerfil(PerfilAdministrador, PerfilSupervisor, PerfilDigitador))
	muestraHandler := NewMuestraHandler(deps.MuestraUC)
	muestras.Post("/", muestraHandler.Create)
	muestras.Get("/", muestraHandler.ListByCiclo)

	// Alimentos: catálogo por compañía.
	alimentos := protected.Group("/alimentos", RequirePerfil(PerfilAdministrador, PerfilSupervisor))
	alimentoHandler := NewAlimentoHandler(deps.AlimentoUC)
	alimentos.Post("/", alimentoHandler.Create)
	alimentos.Get("/", alimentoHandler.List)

	// Administración: solo el perfil Administrador.
	companiaHandler := NewCompaniaHandler(deps.CompaniaUC)
	companias := protected.Group("/companias", RequirePerfil(PerfilAdministrador))
	companias.Post("/", companiaHandler.CreateCompania)
	companias.Get("/", companiaHandler.ListCompanias)
	companias.Get("/:id", companiaHandler.GetCompania)
	usuarios := protected.Group("/usuarios", RequirePerfil(PerfilAdministrador))
	usuarios.Post("/", companiaHandler.CreateUsuario)
	usuarios.Get("/", companiaHandler.ListUsuarios)
}

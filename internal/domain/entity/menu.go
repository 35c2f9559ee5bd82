package entity

// Estados de un menú.
const (
	MenuActivo   = "activo"
	MenuInactivo = "inactivo"
)

// Menu representa una entrada de navegación agrupada bajo un módulo.
// Un menú es visible solo si su estado es activo Y está vinculado a alguno
// de los perfiles del usuario (relación N:M con Perfil).
type Menu struct {
	ID           string
	Nombre       string
	Ruta         string
	Icono        string // nombre simbólico, resuelto contra el registro de íconos
	Estado       string // activo, inactivo
	ModuloNombre string
}

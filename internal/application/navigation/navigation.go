// Package navigation resuelve la navegación dependiente del perfil: la ruta
// de aterrizaje por defecto y el registro de íconos de menú.
package navigation

// RutaSinModulo es el estado terminal para perfiles sin módulo asignado.
// Evita un crash o un loop de redirecciones cuando el perfil no está mapeado.
const RutaSinModulo = "/sin-modulo"

// landings mapea perfil → ruta de aterrizaje. Mapa fijo: los perfiles nuevos
// deben agregarse aquí de forma explícita.
var landings = map[string]string{
	"Administrador": "/administracion/companias",
	"Supervisor":    "/produccion/ciclos",
	"Digitador":     "/produccion/muestras",
}

// DefaultLanding devuelve la ruta de aterrizaje del perfil activo. Para
// perfiles no mapeados devuelve (RutaSinModulo, false).
func DefaultLanding(perfil string) (string, bool) {
	if ruta, ok := landings[perfil]; ok {
		return ruta, true
	}
	return RutaSinModulo, false
}

// IconRegistry resuelve nombres simbólicos de ícono de menú contra un
// registro poblado al arranque. Reemplaza la búsqueda dinámica de componentes
// por nombre: el fallback para nombres no registrados es la cadena vacía.
type IconRegistry struct {
	iconos map[string]string
}

// NewIconRegistry crea un registro con el set de íconos conocidos.
func NewIconRegistry() *IconRegistry {
	r := &IconRegistry{iconos: make(map[string]string)}
	for _, nombre := range []string{
		"dashboard", "piscinas", "ciclos", "muestras", "alimentos",
		"companias", "usuarios", "reportes", "configuracion",
	} {
		r.Register(nombre, nombre)
	}
	return r
}

// Register registra un nombre simbólico. La clave gana a registros previos.
func (r *IconRegistry) Register(nombre, icono string) {
	r.iconos[nombre] = icono
}

// Lookup devuelve el ícono registrado o cadena vacía si no está mapeado.
func (r *IconRegistry) Lookup(nombre string) string {
	return r.iconos[nombre]
}

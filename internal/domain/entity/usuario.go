package entity

import "time"

// Estados válidos para Usuario.
const (
	UsuarioActivo   = "activo"
	UsuarioInactivo = "inactivo"
)

// Usuario representa un usuario del sistema. Pertenece a exactamente un
// GrupoEmpresarial; todas las compañías que puede ver comparten ese grupo.
type Usuario struct {
	ID                 string
	Nombre             string
	Usuario            string // login, único en el sistema
	PasswordHash       string // hash bcrypt, nunca en claro después de persistir
	Estado             string // activo, inactivo
	GrupoEmpresarialID string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Perfil representa un rol que otorga acceso a un conjunto de menús.
// Relación N:M con Usuario y con Menu.
type Perfil struct {
	ID     string
	Nombre string
}

// GrupoEmpresarial es la agrupación de más alto nivel (tenant raíz) que
// reúne varias compañías.
type GrupoEmpresarial struct {
	ID     string
	Nombre string
}

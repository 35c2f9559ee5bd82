package dto

// CreateCompaniaRequest entrada para crear una compañía.
type CreateCompaniaRequest struct {
	Nombre             string `json:"nombre"`
	IDGrupoEmpresarial string `json:"id_grupo_empresarial"`
}

// CompaniaResponse salida de una compañía.
type CompaniaResponse struct {
	ID                 string `json:"id"`
	Nombre             string `json:"nombre"`
	IDGrupoEmpresarial string `json:"id_grupo_empresarial"`
}

// CreateUsuarioRequest entrada para crear un usuario.
type CreateUsuarioRequest struct {
	Nombre             string `json:"nombre"`
	Usuario            string `json:"usuario"`
	Password           string `json:"password"`
	IDGrupoEmpresarial string `json:"id_grupo_empresarial"`
}

// UsuarioResponse salida de un usuario (sin hash de contraseña).
type UsuarioResponse struct {
	ID                 string `json:"id"`
	Nombre             string `json:"nombre"`
	Usuario            string `json:"usuario"`
	Estado             string `json:"estado"`
	IDGrupoEmpresarial string `json:"id_grupo_empresarial"`
}

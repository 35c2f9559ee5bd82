package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// PerfilResponse un perfil (rol) del usuario.
type PerfilResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// CompaniaSesion una compañía accesible desde la sesión.
type CompaniaSesion struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// MenuResponse una entrada de menú visible para el perfil activo.
// Icono es el nombre simbólico resuelto contra el registro de íconos; queda
// vacío cuando el nombre no está registrado.
type MenuResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Ruta   string `json:"ruta"`
	Icono  string `json:"icono"`
	Modulo string `json:"modulo"`
}

// SessionResponse es el payload de sesión que cruza la frontera como registro
// plano. Los nombres JSON son contrato con el cliente y no deben cambiarse.
type SessionResponse struct {
	IDUsuario        string           `json:"id_usuario"`
	Nombre           string           `json:"nombre"`
	Usuario          string           `json:"usuario"`
	Perfiles         []PerfilResponse `json:"perfiles"`
	GrupoEmpresarial string           `json:"grupo_empresarial"`
	Companias        []CompaniaSesion `json:"companias"`
	Compania         string           `json:"compania"`
	IDCompania       string           `json:"id_compania"`
	Menus            []MenuResponse   `json:"menus"`
	Landing          string           `json:"landing"`
	Token            string           `json:"token"`
}

// SwitchCompaniaRequest cambio de compañía activa (sin reautenticación).
type SwitchCompaniaRequest struct {
	IDCompania string `json:"id_compania"`
}

// SwitchCompaniaResponse nueva compañía activa y token reemitido.
type SwitchCompaniaResponse struct {
	Compania   string `json:"compania"`
	IDCompania string `json:"id_compania"`
	Token      string `json:"token"`
}

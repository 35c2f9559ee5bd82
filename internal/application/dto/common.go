package dto

// Envelope es el sobre de respuesta de todas las operaciones de la API:
// { success, message, data?, total? }. Total solo se incluye en listados.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

// OK construye un sobre exitoso con datos.
func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// OKList construye un sobre exitoso de listado con total.
func OKList(message string, data any, total int) Envelope {
	return Envelope{Success: true, Message: message, Data: data, Total: &total}
}

// Fail construye un sobre de error.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

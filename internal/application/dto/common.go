package dto

// DataResponse cuerpo estándar de éxito con datos.
type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// MessageResponse cuerpo de éxito sin datos (eliminaciones).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP. Errors lista los mensajes por campo en validaciones;
// Error lleva el detalle técnico en fallos 500.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

package dto

// CreateUsuarioRequest entrada para crear un usuario (contraseña en texto, se hashea en el use case).
type CreateUsuarioRequest struct {
	NombreUsuario string `json:"nombreUsuario" validate:"required,min=4,max=20"`
	Contrasena    string `json:"contrasena" validate:"required,min=4,max=20"`
	Rol           string `json:"rol" validate:"required"`
	Estado        *bool  `json:"estado"`
}

// UsuarioResponse salida de un usuario (sin contraseña).
type UsuarioResponse struct {
	ID            int64  `json:"id"`
	NombreUsuario string `json:"nombreUsuario"`
	Rol           string `json:"rol"`
	Estado        bool   `json:"estado"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20"`
	Password string `json:"password" validate:"required,min=4,max=20"`
}

// LoginResponse token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	Data  UsuarioResponse `json:"data"`
}

package entity

// Usuario representa una credencial de acceso a la API.
type Usuario struct {
	ID            int64
	NombreUsuario string // único
	Contrasena    string // bcrypt hash, nunca plano después de persistir
	Rol           string
	Estado        bool
}

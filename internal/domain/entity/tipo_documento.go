package entity

// TipoDocumento representa un tipo de documento de identidad (DNI, RUC, ...).
type TipoDocumento struct {
	ID          int64
	Codigo      string // único
	Nombre      string // único
	Descripcion string
	Estado      bool
}

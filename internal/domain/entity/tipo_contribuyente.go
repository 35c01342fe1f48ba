package entity

// TipoContribuyente clasifica a una entidad frente a la administración tributaria.
type TipoContribuyente struct {
	ID     int64
	Nombre string // único
	Estado bool
}

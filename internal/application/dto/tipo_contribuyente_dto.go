package dto

// CreateTipoContribuyenteRequest entrada para crear un tipo de contribuyente.
type CreateTipoContribuyenteRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2,max=100"`
	Estado *bool  `json:"estado"`
}

// UpdateTipoContribuyenteRequest entrada para actualizar; los campos nil conservan el valor guardado.
type UpdateTipoContribuyenteRequest struct {
	Nombre *string `json:"nombre" validate:"omitnil,min=2,max=100"`
	Estado *bool   `json:"estado"`
}

// TipoContribuyenteResponse salida de un tipo de contribuyente.
type TipoContribuyenteResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Estado bool   `json:"estado"`
}

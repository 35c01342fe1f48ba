package dto

// CreateTipoDocumentoRequest entrada para crear un tipo de documento.
type CreateTipoDocumentoRequest struct {
	Codigo      string `json:"codigo" validate:"required,min=2,max=20"`
	Nombre      string `json:"nombre" validate:"required,min=2,max=100"`
	Descripcion string `json:"descripcion" validate:"max=200"`
	Estado      *bool  `json:"estado"`
}

// UpdateTipoDocumentoRequest entrada para actualizar; los campos nil conservan el valor guardado.
type UpdateTipoDocumentoRequest struct {
	Codigo      *string `json:"codigo" validate:"omitnil,min=2,max=20"`
	Nombre      *string `json:"nombre" validate:"omitnil,min=2,max=100"`
	Descripcion *string `json:"descripcion" validate:"omitnil,max=200"`
	Estado      *bool   `json:"estado"`
}

// TipoDocumentoResponse salida de un tipo de documento.
type TipoDocumentoResponse struct {
	ID          int64  `json:"id"`
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Estado      bool   `json:"estado"`
}

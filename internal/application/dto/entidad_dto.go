package dto

// CreateEntidadRequest entrada para crear una entidad.
type CreateEntidadRequest struct {
	NroDocumento        string `json:"nroDocumento" validate:"required,min=8,max=20"`
	RazonSocial         string `json:"razonSocial" validate:"required,min=2,max=200"`
	NombreComercial     string `json:"nombreComercial" validate:"max=200"`
	Direccion           string `json:"direccion" validate:"max=200"`
	Telefono            string `json:"telefono" validate:"max=50"`
	Estado              *bool  `json:"estado"`
	TipoDocumentoID     *int64 `json:"tipoDocumentoId" validate:"required"`
	TipoContribuyenteID *int64 `json:"tipoContribuyenteId" validate:"required"`
}

// UpdateEntidadRequest entrada para actualizar; los campos nil conservan el valor guardado.
type UpdateEntidadRequest struct {
	NroDocumento        *string `json:"nroDocumento" validate:"omitnil,min=8,max=20"`
	RazonSocial         *string `json:"razonSocial" validate:"omitnil,min=2,max=200"`
	NombreComercial     *string `json:"nombreComercial" validate:"omitnil,max=200"`
	Direccion           *string `json:"direccion" validate:"omitnil,max=200"`
	Telefono            *string `json:"telefono" validate:"omitnil,max=50"`
	Estado              *bool   `json:"estado"`
	TipoDocumentoID     *int64  `json:"tipoDocumentoId"`
	TipoContribuyenteID *int64  `json:"tipoContribuyenteId"`
}

// EntidadResponse salida de una entidad con sus tipos embebidos.
type EntidadResponse struct {
	ID                int64                      `json:"id"`
	NroDocumento      string                     `json:"nroDocumento"`
	RazonSocial       string                     `json:"razonSocial"`
	NombreComercial   string                     `json:"nombreComercial"`
	Direccion         string                     `json:"direccion"`
	Telefono          string                     `json:"telefono"`
	Estado            bool                       `json:"estado"`
	TipoDocumento     *TipoDocumentoResponse     `json:"tipoDocumento"`
	TipoContribuyente *TipoContribuyenteResponse `json:"tipoContribuyente"`
}

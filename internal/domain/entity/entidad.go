package entity

// Entidad es una parte (persona natural o jurídica) registrada en el sistema.
// Referencia por ID a un TipoDocumento y a un TipoContribuyente; los repositorios
// completan TipoDocumento y TipoContribuyente al leer.
type Entidad struct {
	ID                  int64
	NroDocumento        string // único
	RazonSocial         string
	NombreComercial     string
	Direccion           string
	Telefono            string
	Estado              bool
	TipoDocumentoID     int64
	TipoContribuyenteID int64

	TipoDocumento     *TipoDocumento
	TipoContribuyente *TipoContribuyente
}

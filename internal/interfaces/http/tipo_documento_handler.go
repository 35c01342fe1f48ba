package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/application/usecase"
)

// TipoDocumentoHandler maneja /api/v1/tipo-documento.
type TipoDocumentoHandler struct {
	uc *usecase.TipoDocumentoUseCase
}

// NewTipoDocumentoHandler construye el handler.
func NewTipoDocumentoHandler(uc *usecase.TipoDocumentoUseCase) *TipoDocumentoHandler {
	return &TipoDocumentoHandler{uc: uc}
}

// List GET /api/v1/tipo-documento
func (h *TipoDocumentoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: msgRegistrosEncontrados, Data: list})
}

// ListByEstado GET /api/v1/tipo-documento/estado/:estado
func (h *TipoDocumentoHandler) ListByEstado(c *fiber.Ctx) error {
	estado, err := paramEstado(c)
	if err != nil {
		return err
	}
	list, err := h.uc.ListByEstado(c.Context(), estado)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: msgRegistrosEncontrados, Data: list})
}

// GetByID GET /api/v1/tipo-documento/:id
func (h *TipoDocumentoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: msgRegistroEncontrado, Data: out})
}

// Create POST /api/v1/tipo-documento
func (h *TipoDocumentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTipoDocumentoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Message: "El tipo de documento ha sido creado con éxito!",
		Data:    out,
	})
}

// Update PUT /api/v1/tipo-documento/:id
func (h *TipoDocumentoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateTipoDocumentoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: "El tipo de documento ha sido actualizado con éxito!", Data: out})
}

// Delete DELETE /api/v1/tipo-documento/:id
func (h *TipoDocumentoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "El tipo de documento ha sido eliminado con éxito!"})
}

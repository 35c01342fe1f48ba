package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/application/usecase"
)

// TipoContribuyenteHandler maneja /api/v1/tipo-contribuyente.
type TipoContribuyenteHandler struct {
	uc *usecase.TipoContribuyenteUseCase
}

// NewTipoContribuyenteHandler construye el handler.
func NewTipoContribuyenteHandler(uc *usecase.TipoContribuyenteUseCase) *TipoContribuyenteHandler {
	return &TipoContribuyenteHandler{uc: uc}
}

// List GET /api/v1/tipo-contribuyente
func (h *TipoContribuyenteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: msgRegistrosEncontrados, Data: list})
}

// ListByEstado GET /api/v1/tipo-contribuyente/estado/:estado
func (h *TipoContribuyenteHandler) ListByEstado(c *fiber.Ctx) error {
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

// GetByID GET /api/v1/tipo-contribuyente/:id
func (h *TipoContribuyenteHandler) GetByID(c *fiber.Ctx) error {
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

// Create POST /api/v1/tipo-contribuyente
func (h *TipoContribuyenteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTipoContribuyenteRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Message: "El tipo de contribuyente ha sido creado con éxito!",
		Data:    out,
	})
}

// Update PUT /api/v1/tipo-contribuyente/:id
func (h *TipoContribuyenteHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateTipoContribuyenteRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: "El tipo de contribuyente ha sido actualizado con éxito!", Data: out})
}

// Delete DELETE /api/v1/tipo-contribuyente/:id
func (h *TipoContribuyenteHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "El tipo de contribuyente ha sido eliminado con éxito!"})
}

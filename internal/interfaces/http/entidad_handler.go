package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/application/usecase"
)

// EntidadHandler maneja las peticiones HTTP de entidades (clientes/proveedores).
type EntidadHandler struct {
	uc *usecase.EntidadUseCase
}

// NewEntidadHandler construye el handler.
func NewEntidadHandler(uc *usecase.EntidadUseCase) *EntidadHandler {
	return &EntidadHandler{uc: uc}
}

// List godoc
// @Summary      Listar entidades
// @Tags         entidad
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DataResponse
// @Router       /api/v1/entidad [get]
func (h *EntidadHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: msgRegistrosEncontrados, Data: list})
}

// ListByEstado GET /api/v1/entidad/estado/:estado
func (h *EntidadHandler) ListByEstado(c *fiber.Ctx) error {
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

// GetByID GET /api/v1/entidad/:id
func (h *EntidadHandler) GetByID(c *fiber.Ctx) error {
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

// Create godoc
// @Summary      Crear entidad
// @Tags         entidad
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEntidadRequest  true  "datos de la entidad"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/entidad [post]
func (h *EntidadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntidadRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{
		Message: "La entidad ha sido creada con éxito!",
		Data:    out,
	})
}

// Update PUT /api/v1/entidad/:id (solo los campos enviados)
func (h *EntidadHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateEntidadRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.DataResponse{Message: "La entidad ha sido actualizada con éxito!", Data: out})
}

// Delete DELETE /api/v1/entidad/:id
func (h *EntidadHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "La entidad ha sido eliminada con éxito!"})
}

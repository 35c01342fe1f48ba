package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maestros-api/internal/domain"
)

const (
	msgRegistrosEncontrados = "Registros encontrados!"
	msgRegistroEncontrado   = "Registro encontrado!"
)

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.Validation("El parámetro 'id' debe ser un número entero")
	}
	return id, nil
}

func paramEstado(c *fiber.Ctx) (bool, error) {
	estado, err := strconv.ParseBool(c.Params("estado"))
	if err != nil {
		return false, domain.Validation("El parámetro 'estado' debe ser true o false")
	}
	return estado, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.Validation("El cuerpo de la petición no es un JSON válido")
	}
	return nil
}

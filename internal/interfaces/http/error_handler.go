package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/maestros-api/internal/application/dto"
	"github.com/jhoicas/maestros-api/internal/domain"
	"github.com/jhoicas/maestros-api/pkg/logger"
)

const (
	msgValidacion = "Error de validación de campos"
	msgBaseDatos  = "Error al realizar operación en la base de datos."
	msgServidor   = "Error en el servidor"
)

// ErrorHandler convierte cualquier error devuelto por un handler o middleware
// en el cuerpo JSON estándar. Los 5xx se registran con el request id.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := errorResponse(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error procesando la petición")
		}
		return c.Status(status).JSON(body)
	}
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var de *domain.Error
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrValidation):
		body := dto.ErrorResponse{Message: msgValidacion}
		if errors.As(err, &de) {
			body.Errors = de.Fields
		}
		return fiber.StatusBadRequest, body
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusBadRequest, dto.ErrorResponse{Message: message(err)}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Message: message(err)}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Message: message(err)}
	case errors.Is(err, domain.ErrDataAccess):
		return fiber.StatusInternalServerError, dto.ErrorResponse{Message: msgBaseDatos, Error: err.Error()}
	case errors.As(err, &fe):
		if fe.Code >= fiber.StatusInternalServerError {
			return fe.Code, dto.ErrorResponse{Message: msgServidor, Error: fe.Message}
		}
		return fe.Code, dto.ErrorResponse{Message: fe.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Message: msgServidor, Error: err.Error()}
	}
}

// message usa el texto de *domain.Error aunque venga envuelto.
func message(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

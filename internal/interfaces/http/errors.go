package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/pkg/validation"
)

// errorMapping traduce un error de dominio a status y código HTTP. El orden importa:
// un error compuesto responde con la primera coincidencia.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrNumericRange, fiber.StatusUnprocessableEntity, "NUMERIC_RANGE"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrConfiguration, fiber.StatusInternalServerError, "CONFIGURATION"},
	{domain.ErrPersistence, fiber.StatusServiceUnavailable, "PERSISTENCE"},
}

// writeError responde con el envelope dto.ErrorResponse. Los 5xx se registran en el log.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			status, code = m.status, m.code
			break
		}
	}

	msg := err.Error()
	switch code {
	case "UNAUTHORIZED":
		msg = "credenciales inválidas"
	case "PERSISTENCE":
		msg = "no se pudo acceder a la base de datos, intente más tarde"
	case "INTERNAL":
		msg = "error interno"
	}
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Str("code", code).Msg("error en la petición")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg, Fields: validation.Fields(err)})
}

// orderInputError clasifica las etiquetas incumplidas del cuerpo de una OC como error de validación de la orden.
func orderInputError(c *fiber.Ctx, err error) error {
	return writeError(c, fmt.Errorf("%w: %w", domain.ErrValidation, err))
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

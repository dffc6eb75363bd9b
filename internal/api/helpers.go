package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ciberseguria/sgsi-express/internal/services"
)

// requestValidator plugs go-playground/validator into echo.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// fieldProblems flattens validator errors into the same message-list shape
// the services use, so clients see one format for every validation failure.
func fieldProblems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, "el campo "+fe.Field()+" es obligatorio")
		case "email":
			problems = append(problems, "el campo "+fe.Field()+" debe ser un email válido")
		default:
			problems = append(problems, "el campo "+fe.Field()+" no es válido")
		}
	}
	return problems
}

// writeError maps service failures to HTTP responses. Anything outside the
// taxonomy is a 500 and gets logged; the cause never reaches the client.
func writeError(c echo.Context, err error) error {
	if ve, ok := services.AsValidationError(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": ve.Problems})
	}
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorNotFound:
			return c.JSON(http.StatusNotFound, map[string]any{"error": se.Message})
		case services.ErrorUnauthorized:
			return c.JSON(http.StatusUnauthorized, map[string]any{"error": se.Message})
		case services.ErrorConflict:
			return c.JSON(http.StatusConflict, map[string]any{"error": se.Message})
		case services.ErrorInvalid:
			return c.JSON(http.StatusBadRequest, map[string]any{"error": se.Message})
		}
	}
	slog.Error("request failed", "path", c.Path(), "err", err)
	return c.JSON(http.StatusInternalServerError, map[string]any{"error": "error interno del servidor"})
}

// Package validation valida DTOs con las etiquetas `validate` de go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/gestor-irrigacion/internal/domain"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// los mensajes usan el nombre JSON del campo
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Error reúne los campos que no cumplen sus etiquetas. Envuelve domain.ErrInvalidInput.
type Error struct {
	fields validator.ValidationErrors
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, fe := range e.fields {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.ErrInvalidInput.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() []error { return []error{domain.ErrInvalidInput, e.fields} }

// Struct valida v. Devuelve nil o un *Error con un mensaje por campo
// ("lines[0].description: required").
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &Error{fields: fieldErrs}
}

// Fields devuelve campo → etiqueta incumplida, para respuestas de error detalladas.
func Fields(err error) map[string]string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fieldPath(fe)] = fe.Tag()
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fmt.Sprintf("%s: %s=%s", fieldPath(fe), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: %s", fieldPath(fe), fe.Tag())
}

// fieldPath quita el nombre del struct raíz del namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

package dtos

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON names so messages match what the client sent.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks the struct's validate tags and returns the first failure as
// a Portuguese message suitable for the client.
func Validate(dto interface{}) error {
	err := instance().Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return errors.New(message(fieldErrs[0]))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", fe.Field())
	case "email":
		return "Email inválido."
	case "eqfield":
		return "As senhas não coincidem."
	case "min":
		return fmt.Sprintf("O campo %s deve ter pelo menos %s caracteres.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um de: %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("O campo %s é inválido.", fe.Field())
	}
}

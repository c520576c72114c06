package models

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sarveshramani/portfolio/internal/utils"
)

// Rules live in `binding` tags so gin applies the same ones at the edge.
var validate = NewValidator()

func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(JSONFieldName)
	return v
}

// JSONFieldName reports a struct field by its JSON name.
func JSONFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Check validates a draft or patch against its binding rules.
func Check(in any) error {
	return validate.Struct(in)
}

// FieldErrors flattens decoding and validation failures into per-field details.
func FieldErrors(err error) []utils.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]utils.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, utils.FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []utils.FieldError{{Field: typeErr.Field, Rule: "type"}}
	}
	return nil
}

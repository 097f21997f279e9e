package validator

import "github.com/go-playground/validator/v10"

// ErrorDetail describe una violación de validación de un campo.
type ErrorDetail struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// ValidateStruct valida los tags `validate` de un struct de request y
// devuelve el detalle de cada campo que falla (nil si todo es válido).
func ValidateStruct(data interface{}) []ErrorDetail {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var details []ErrorDetail
	for _, fe := range err.(validator.ValidationErrors) {
		details = append(details, ErrorDetail{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return details
}

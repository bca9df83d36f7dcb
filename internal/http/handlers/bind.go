package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message,omitempty"`
}

// BindJSON binds the body into out and answers 400 with field-level
// details on failure. Returns false when the caller should stop.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, "Invalid request body", parseBindError(err, out))

		return false
	}

	return true
}

func parseBindError(err error, out interface{}) interface{} {
	rootType := baseStructType(out)

	// validator errors (struct binding tags)

	var validatorError validator.ValidationErrors

	if errors.As(err, &validatorError) {
		fields := make([]FieldError, 0, len(validatorError))

		for _, fieldError := range validatorError {
			fields = append(fields, FieldError{
				Field:   jsonFieldName(rootType, fieldError.Field()),
				Rule:    fieldError.Tag(),
				Param:   fieldError.Param(),
				Message: validationMessage(fieldError.Tag(), fieldError.Param()),
			})
		}
		return gin.H{"fields": fields}
	}

	// malformed body

	var syntaxError *json.SyntaxError

	if errors.As(err, &syntaxError) {
		return gin.H{"json": "invalid_json_syntax"}
	}

	// type mismatch on a field

	var typeError *json.UnmarshalTypeError

	if errors.As(err, &typeError) {
		field := strings.TrimSpace(typeError.Field)

		return gin.H{
			"json":  "invalid_json_type",
			"field": field,
			"fields": []FieldError{
				{
					Field:   field,
					Rule:    "type",
					Message: fmt.Sprintf("must be of type %s", typeError.Type.String()),
				},
			},
		}
	}

	// fallback if the error could not be deciphered
	return gin.H{"reason": err.Error()}
}

func baseStructType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		return t
	}

	return nil
}

// jsonFieldName maps a Go struct field name to its json tag name so
// clients see the field as they sent it.
func jsonFieldName(rootType reflect.Type, fieldName string) string {
	if rootType == nil {
		return fieldName
	}

	sf, ok := rootType.FieldByName(fieldName)

	if !ok {
		return fieldName
	}

	tag := sf.Tag.Get("json")

	if tag == "" {
		return fieldName
	}

	name, _, _ := strings.Cut(tag, ",")

	if name == "" || name == "-" {
		return fieldName
	}

	return name
}

func validationMessage(rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in " + strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD").Replace(param) + " format"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	default:
		if param != "" {
			return fmt.Sprintf("failed %s validation (%s)", rule, param)
		}
		return "failed " + rule + " validation"
	}
}

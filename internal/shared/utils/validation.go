package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

// BodyPath is reported for failures that concern the payload as a whole.
const BodyPath = "body"

var setupOnce sync.Once

// SetupValidator configures gin's validator engine: errors are keyed by JSON
// name and nullable fields validate their inner value.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterCustomTypeFunc(nullableValue,
			nullable.Field[string]{},
			nullable.Field[uint]{},
			nullable.Field[time.Time]{},
		)
	})
}

type validationValuer interface {
	ValidationValue() any
}

func nullableValue(field reflect.Value) any {
	if v, ok := field.Interface().(validationValuer); ok {
		return v.ValidationValue()
	}
	return nil
}

// BindJSON decodes and validates the request body into obj. Every failure is
// returned as a validation AppError whose message is invalidMsg and whose
// fields list each violated constraint.
func BindJSON(c *gin.Context, obj any, invalidMsg string) error {
	SetupValidator()
	if err := c.ShouldBindJSON(obj); err != nil {
		return TranslateBindError(err, invalidMsg)
	}
	return nil
}

// TranslateBindError converts decoder and validator errors into field errors.
func TranslateBindError(err error, invalidMsg string) *errors.AppError {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fields := make([]errors.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, errors.FieldError{
				Path:    fieldPath(fe),
				Message: getFieldErrorMessage(fe),
			})
		}
		return errors.NewValidationError(invalidMsg, fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = BodyPath
		}
		return errors.NewValidationError(invalidMsg, errors.FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected %s, got %s", describeType(typeErr.Type), typeErr.Value),
		})
	}

	if stderrors.Is(err, io.EOF) {
		return errors.NewValidationError(invalidMsg, errors.FieldError{
			Path:    BodyPath,
			Message: "request body is required",
		})
	}

	return errors.NewValidationError(invalidMsg, errors.FieldError{
		Path:    BodyPath,
		Message: constants.ErrMsgInvalidJSON,
	})
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct:
		if t == reflect.TypeOf(time.Time{}) {
			return "RFC 3339 timestamp"
		}
		return "object"
	default:
		return t.String()
	}
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}

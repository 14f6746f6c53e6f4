package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/ayoubrebai/autoparts-backend/pkg/errors"
)

// Admin payloads are tiny; anything past this is a broken client.
const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as their json tags so error details match the wire.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return field.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody decodes the request body into dest, rejecting unknown fields,
// then runs struct validation. The body is always drained so the connection
// can be reused.
func DecodeJSONBody(r *http.Request, dest any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer io.Copy(io.Discard, body)

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").
			WithDetails(map[string]any{"error": err.Error()})
	}
	return validateStruct(dest)
}

func validateStruct(dest any) error {
	err := validate.Struct(dest)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "email":
		return "must be a valid email"
	}
	return "is invalid"
}

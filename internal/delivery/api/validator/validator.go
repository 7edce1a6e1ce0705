// Package validator adapts go-playground/validator to echo and converts its field
// errors into the VALIDATION_FAILED application error.
package validator

import (
	"reflect"
	"strings"

	domainerrors "usermgmt/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// MessageTag is the struct tag holding per-rule messages, e.g. `msg:"required=Name is required"`.
const MessageTag = "msg"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: v}
}

// Validate returns nil or ErrValidationFailed with a field to message map as details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	details := make(map[string]string, len(fieldErrs))
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := details[fe.Field()]; seen {
			continue
		}

		msg := messageFor(reflect.TypeOf(i), fe)
		details[fe.Field()] = msg
		messages = append(messages, msg)
	}

	return domainerrors.ErrValidationFailed.
		WithMessage(strings.Join(messages, "; ")).
		WithDetails(details)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// messageFor looks up the msg tag of the failing struct field. Rules without a
// message fall back to a generic one.
func messageFor(typ reflect.Type, fe validator.FieldError) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ.Kind() == reflect.Struct {
		if field, ok := typ.FieldByName(fe.StructField()); ok {
			for _, rule := range strings.Split(field.Tag.Get(MessageTag), ";") {
				tag, msg, found := strings.Cut(rule, "=")
				if found && strings.TrimSpace(tag) == fe.Tag() {
					return strings.TrimSpace(msg)
				}
			}
		}
	}

	return fe.Field() + " is invalid"
}

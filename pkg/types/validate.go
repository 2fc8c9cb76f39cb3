package types

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Records are checked against
// their struct tags at deserialization time so that a malformed store file
// is rejected instead of silently trusted.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Expose Timestamp to the validator as its underlying time.Time so
	// required and gtecsfield work on it.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if ts, ok := field.Interface().(Timestamp); ok {
			return ts.Time
		}
		return nil
	}, Timestamp{})

	// recordstatus restricts a field to the recognized status values.
	_ = v.RegisterValidation("recordstatus", func(fl validator.FieldLevel) bool {
		return validStatuses[fl.Field().String()]
	})

	return v
}

// Validate checks the record against its schema: positive id, non-empty
// description, recognized status, and UpdatedAt >= CreatedAt with both set.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

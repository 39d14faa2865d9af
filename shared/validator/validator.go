package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"

	"wakens/shared/constant"
	"wakens/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerAfterDateFieldValidation compares two calendar-date strings by
// their parsed values. The builtin gtfield compares string lengths, which
// never distinguishes two dates in the same format.
func registerAfterDateFieldValidation(field val.FieldLevel) bool {
	parent := field.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}

	other := parent.FieldByName(field.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}

	from, err := time.Parse(constant.StayDateFormat, other.String())
	if err != nil {
		// The paired field carries its own datetime tag to report this.
		return true
	}

	to, err := time.Parse(constant.StayDateFormat, field.Field().String())
	if err != nil {
		return true
	}

	return to.After(from)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("afterdatefield", registerAfterDateFieldValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationFailedMessage is the top-level message of a ValidationErrorResponse.
const ValidationFailedMessage = "Validation failed"

// RegisterValidations teaches v the decimal comparisons and notblank tags used by
// the request types, and makes field errors report json field names.
func RegisterValidations(v *validator.Validate) error {
	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("decimal_gte", decimalCompare(func(d, bound decimal.Decimal) bool {
		return d.GreaterThanOrEqual(bound)
	})); err != nil {
		return err
	}
	if err := v.RegisterValidation("decimal_lte", decimalCompare(func(d, bound decimal.Decimal) bool {
		return d.LessThanOrEqual(bound)
	})); err != nil {
		return err
	}
	return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func decimalCompare(cmp func(d, bound decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(d, bound)
	}
}

// ToValidationErrorResponse converts binding errors into the per-field response.
// It returns false if err does not come from the validator.
func ToValidationErrorResponse(err error) (ValidationErrorResponse, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrorResponse{}, false
	}
	resp := ValidationErrorResponse{
		Message: ValidationFailedMessage,
		Errors:  make([]FieldValidationError, 0, len(verrs)),
	}
	for _, fe := range verrs {
		field := fieldPath(fe)
		resp.Errors = append(resp.Errors, FieldValidationError{Field: field, Error: fieldMessage(field, fe)})
	}
	return resp, true
}

// fieldPath drops the root struct name from the namespace: TransferRequest.source.amount -> source.amount.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "decimal_gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "decimal_lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	default:
		return "Invalid value"
	}
}

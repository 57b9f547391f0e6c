package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/01moynul/shop-api/internal/pricing"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validationError carries a message that is safe to show to the client.
type validationError struct {
	msg string
	err error
}

func (e *validationError) Error() string { return e.msg }
func (e *validationError) Unwrap() error { return e.err }

func invalid(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

var registerTagName sync.Once

// UseJSONFieldNames makes gin's validator report fields by their json name,
// so messages talk about "email_address" rather than "EmailAddress". It is
// called once while the router is built.
func UseJSONFieldNames() {
	registerTagName.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON binds the body into v and turns every binding failure into a
// validationError.
func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return translateBindError(err)
	}
	return nil
}

func translateBindError(err error) error {
	var (
		verrs     validator.ValidationErrors
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		return &validationError{msg: "Request body is required", err: err}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &validationError{msg: "Request body is not valid JSON", err: err}
	case errors.As(err, &typeErr):
		return &validationError{msg: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type), err: err}
	case errors.As(err, &verrs) && len(verrs) > 0:
		return &validationError{msg: fieldMessage(verrs[0]), err: err}
	default:
		return &validationError{msg: "Invalid request body", err: err}
	}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// checkPrice accepts a non-negative amount with at most two decimal places
// that fits the price column.
func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return invalid("price must not be negative")
	}
	if price.GreaterThan(pricing.MaxPrice) {
		return invalid("price must not exceed %s", pricing.MaxPrice.StringFixed(2))
	}
	if !price.Equal(price.Truncate(2)) {
		return invalid("price must have at most 2 decimal places")
	}
	return nil
}

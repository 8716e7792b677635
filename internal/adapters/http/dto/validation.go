package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
)

// Request decoding failures. Both map to 400 envelopes.
var (
	ErrValidation = errors.New("validation failed")
	ErrBinding    = errors.New("binding failed")
)

// maxCoinSymbolLen bounds coin symbols accepted at the edge.
const maxCoinSymbolLen = 12

// rules are the gateway's custom validator tags.
var rules = map[string]validator.Func{
	"pair":             isPairField,
	"coin":             optional(isCoinSymbol),
	"positive_decimal": optional(isPositiveDecimal),
	"notempty":         func(fl validator.FieldLevel) bool { return strings.TrimSpace(fl.Field().String()) != "" },
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field errors are reported under
// their JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(jsonName)

		for tag, fn := range rules {
			if err := validate.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("registering %q: %v", tag, err))
			}
		}
	})

	return validate
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// Validatable is implemented by requests with rules beyond struct tags,
// such as rejecting a pair of the same coin.
type Validatable interface {
	Validate() error
}

// Validate checks struct tags only.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// ValidateAll checks struct tags, then the Validatable rules if any.
func ValidateAll(v any) error {
	if err := Validate(v); err != nil {
		return err
	}

	if rv, ok := v.(Validatable); ok {
		if err := rv.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return ValidateAll(v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return ValidateAll(v)
}

// IsValidationError reports whether err carries validator field errors.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// ValidationErrors maps each failing JSON field to a readable message.
// It is empty when err carries no field errors.
func ValidationErrors(err error) map[string]string {
	out := map[string]string{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return out
	}

	for _, fe := range fieldErrs {
		out[fe.Field()] = fieldMessage(fe)
	}

	return out
}

var fixedMessages = map[string]string{
	"required":         "this field is required",
	"notempty":         "must not be empty",
	"email":            "must be a valid email address",
	"pair":             "must look like coin1_coin2",
	"coin":             "must be a coin symbol",
	"positive_decimal": "must be a positive decimal number",
}

var paramMessages = map[string]string{
	"gt":    "must be greater than %s",
	"gte":   "must be greater than or equal to %s",
	"lt":    "must be less than %s",
	"lte":   "must be less than or equal to %s",
	"oneof": "must be one of: %s",
}

func fieldMessage(fe validator.FieldError) string {
	tag := fe.Tag()

	switch {
	case tag == "min" || tag == "max":
		bound := "at least"
		if tag == "max" {
			bound = "at most"
		}

		unit := ""
		if fe.Kind() == reflect.String {
			unit = " characters"
		}

		return fmt.Sprintf("must be %s %s%s", bound, fe.Param(), unit)
	case fixedMessages[tag] != "":
		return fixedMessages[tag]
	case paramMessages[tag] != "":
		return fmt.Sprintf(paramMessages[tag], fe.Param())
	default:
		return "failed validation: " + tag
	}
}

// optional lets empty strings through; pair with required where needed.
func optional(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || check(s)
	}
}

func isPairField(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}

	coin1, coin2, err := domain.SplitPair(s)

	return err == nil && isCoinSymbol(coin1) && isCoinSymbol(coin2)
}

func isCoinSymbol(s string) bool {
	if s == "" || len(s) > maxCoinSymbolLen {
		return false
	}

	return strings.IndexFunc(s, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	}) < 0
}

func isPositiveDecimal(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && d.IsPositive()
}

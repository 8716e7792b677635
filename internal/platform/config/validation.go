package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf keys, so messages name the same
// path an operator sets in YAML or through APP_ variables.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate validates the configuration and returns an error listing every problem.
// The service must not start with invalid config.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		for _, e := range fieldErrs {
			problems = append(problems, formatFieldError(e))
		}
	}

	problems = append(problems, c.crossFieldProblems()...)

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

// crossFieldProblems checks rules spanning sections.
func (c *Config) crossFieldProblems() []string {
	var problems []string

	// A ShapeShift reply that arrives after the write deadline cannot be relayed.
	if c.Client.Timeout > 0 && c.Server.WriteTimeout > 0 && c.Client.Timeout >= c.Server.WriteTimeout {
		problems = append(problems, fmt.Sprintf("client.timeout (%s) must be shorter than server.write_timeout (%s)",
			c.Client.Timeout, c.Server.WriteTimeout))
	}

	return problems
}

// formatFieldError renders one field error as "<key> <problem>".
func formatFieldError(e validator.FieldError) string {
	key := keyPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, e.Param())
	case "url", "http_url":
		return key + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation: %s", key, e.Tag())
	}
}

// keyPath drops the root struct name: "Config.shapeshift.base_url" becomes "shapeshift.base_url".
func keyPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

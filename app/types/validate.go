package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vibast-solutions/ms-go-secours/app/policy"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var rescueValueRule = fmt.Sprintf("gt=0,lte=%d", policy.MaxRescueValueFCFA)

type fieldRule struct {
	name  string
	value interface{}
	tag   string
}

// validateFields reports the first failing rule using the field's JSON name.
func validateFields(rules ...fieldRule) error {
	for _, rule := range rules {
		if err := validateField(rule.name, rule.value, rule.tag); err != nil {
			return err
		}
	}
	return nil
}

func validateField(name string, value interface{}, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", name)
	case "gt":
		if fe.Param() == "0" && fe.Kind() == reflect.Uint64 {
			return fmt.Errorf("invalid %s", name)
		}
		return fmt.Errorf("%s must be greater than %s", name, fe.Param())
	case "lte":
		return fmt.Errorf("%s must be at most %s", name, fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", name, fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Errorf("%s is invalid", name)
	}
}

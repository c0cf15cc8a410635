// Package validate wraps go-playground/validator and reduces its reports to
// the first violated field and rule.
package validate

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error names the field and rule a payload violated.
type Error struct {
	Field string
	Rule  string
	Param string
}

func (e *Error) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field, e.Param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "current_password":
		return "current password is incorrect"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field, e.Param)
	default:
		if e.Param != "" {
			return fmt.Sprintf("%s failed %s=%s", e.Field, e.Rule, e.Param)
		}
		return fmt.Sprintf("%s failed %s", e.Field, e.Rule)
	}
}

// Rule builds an Error for checks done outside struct tags.
func Rule(field, rule string) *Error { return &Error{Field: field, Rule: rule} }

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
	})
	return v
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) error {
	return From(instance().Struct(s))
}

// From converts validator (and gin binding) errors into *Error. Other errors pass through.
func From(err error) error {
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &Error{Field: lowerFirst(fe.Field()), Rule: fe.Tag(), Param: fe.Param()}
	}
	return err
}

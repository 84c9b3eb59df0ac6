package portal

import (
	"encoding/json"
	"errors"

	baseValidator "github.com/go-playground/validator/v10"
)

type Validator struct {
	engine *baseValidator.Validate
	errors map[string]string
}

func GetDefaultValidator() *Validator {
	return &Validator{
		engine: baseValidator.New(baseValidator.WithRequiredStructEnabled()),
		errors: map[string]string{},
	}
}

// Passes validates the given struct and reports whether every rule passed.
// Field-level failures are recorded and can be retrieved afterwards.
func (v *Validator) Passes(element any) (bool, error) {
	v.errors = map[string]string{}

	err := v.engine.Struct(element)
	if err == nil {
		return true, nil
	}

	var invalid *baseValidator.InvalidValidationError
	if errors.As(err, &invalid) {
		return false, err
	}

	var fails baseValidator.ValidationErrors
	if errors.As(err, &fails) {
		for _, field := range fails {
			v.errors[field.Namespace()] = field.Tag()
		}
	}

	return false, err
}

func (v *Validator) Rejects(element any) (bool, error) {
	ok, err := v.Passes(element)

	return !ok, err
}

func (v *Validator) GetErrors() map[string]string {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	if len(v.errors) == 0 {
		return ""
	}

	out, err := json.Marshal(v.errors)
	if err != nil {
		return ""
	}

	return string(out)
}

package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Algorand addresses are 58 characters of base32 without padding.
var addressPattern = regexp.MustCompile(`^[A-Z2-7]{58}$`)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

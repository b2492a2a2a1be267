package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var (
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hasuppercase", validateHasUppercase)
	Validate.RegisterValidation("aadhaarno", validateAadhaarNo)
	Validate.RegisterValidation("panno", validatePanNo)
	Validate.RegisterValidation("ifsc", validateIFSC)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	return regexp.MustCompile(`[A-Z]`).MatchString(password)
}

// Aadhaar numbers are exactly 12 digits.
func validateAadhaarNo(fl validator.FieldLevel) bool {
	return aadhaarPattern.MatchString(fl.Field().String())
}

// PAN format: five letters, four digits, one letter (e.g. ABCDE1234F).
func validatePanNo(fl validator.FieldLevel) bool {
	return panPattern.MatchString(fl.Field().String())
}

// IFSC format: four letters, a zero, six alphanumerics (e.g. SBIN0001234).
func validateIFSC(fl validator.FieldLevel) bool {
	return ifscPattern.MatchString(fl.Field().String())
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {

		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must have at least %s characters/value.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must have at most %s characters/value.", element.Field, err.Param())
			case "len":
				element.Msg = fmt.Sprintf("Field '%s' must be exactly %s characters long.", element.Field, err.Param())
			case "email":
				element.Msg = "Email format is not valid."
			case "numeric":
				element.Msg = fmt.Sprintf("Field '%s' must contain digits only.", element.Field)
			case "hasuppercase":
				element.Msg = "Password must contain at least one uppercase letter."
			case "aadhaarno":
				element.Msg = "Aadhaar number must be exactly 12 digits."
			case "panno":
				element.Msg = "PAN must match the format ABCDE1234F."
			case "ifsc":
				element.Msg = "IFSC code must match the format SBIN0001234."
			case "oneof":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}

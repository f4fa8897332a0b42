// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("strong_password", validateStrongPassword)
	validate.RegisterValidation("pincode", validatePincode)
	validate.RegisterValidation("phone", validatePhone)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

func validatePincode(fl validator.FieldLevel) bool {
	return pincodePattern.MatchString(fl.Field().String())
}

// Phone numbers are accepted permissively: an optional leading country
// code and common punctuation, with at least 10 digits overall.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]*$`)

func validatePhone(fl validator.FieldLevel) bool {
	phone := strings.TrimSpace(fl.Field().String())
	if !phonePattern.MatchString(phone) {
		return false
	}
	digits := 0
	for _, char := range phone {
		if unicode.IsDigit(char) {
			digits++
		}
	}
	return digits >= 10
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: validationMessage(e, e.Field()),
			})
		}
	}

	return validationErrors
}

// ValidationMessages translates every violated rule into a human
// message, using labels to name fields ("Line1" -> "Address line 1").
// All violations are collected so a caller can show the complete list.
func ValidationMessages(err error, labels map[string]string) []string {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		label := labels[e.Field()]
		if label == "" {
			label = e.Field()
		}
		messages = append(messages, validationMessage(e, label))
	}
	return messages
}

func validationMessage(e validator.FieldError, label string) string {
	switch e.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return label + " must be at least " + e.Param() + " characters"
	case "max":
		return label + " must be at most " + e.Param() + " characters"
	case "pincode":
		return label + " must be exactly 6 digits"
	case "phone":
		return label + " must be a valid phone number with at least 10 digits"
	case "strong_password":
		return "Password must contain at least 8 characters with uppercase, lowercase, number, and special character"
	default:
		return label + " is invalid"
	}
}

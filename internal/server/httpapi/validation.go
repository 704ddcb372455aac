package httpapi

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validUsername accepts letters, digits, underscores and hyphens.
// Whitespace and punctuation would leak into URLs and logs, so they
// are rejected at the boundary.
func validUsername(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return len(value) > 0
}

// registerValidations installs custom rules on gin's binding engine.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", validUsername)
	}
}

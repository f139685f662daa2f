package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"devfolio_backend/internal/models"
)

// usernameRe matches the public profile slug. Usernames appear in URLs,
// so they stay lowercase and URL-safe.
var usernameRe = regexp.MustCompile(`^[a-z0-9_-]{3,30}$`)

// registerCustomRules installs the project's custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-category", validateCategory)
	mustRegister("is-file-type", validateFileType)
	mustRegister("is-username", validateUsername)
}

func validateCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	return models.Category(value).Valid()
}

func validateFileType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.FileType(value).Valid()
}

func validateUsername(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return usernameRe.MatchString(value)
}

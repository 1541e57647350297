package store

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yourorg/accountsvc/internal/models"
)

// ValidationError reports a field that failed schema validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	allDigitsRe = regexp.MustCompile(`^\d+$`)
	fullNameRe  = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// ValidateUser enforces the field-level invariants before any write,
// independent of the server-side $jsonSchema validator.
func ValidateUser(u *models.User) error {
	if n := len(u.Username); n < models.UsernameMinLen || n > models.UsernameMaxLen {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("must be between %d and %d characters", models.UsernameMinLen, models.UsernameMaxLen),
		}
	}
	if allDigitsRe.MatchString(u.Username) {
		return &ValidationError{Field: "username", Message: "should not contain only numbers"}
	}
	if u.PasswordHash == "" {
		return &ValidationError{Field: "password", Message: "hash is required"}
	}
	if strings.TrimSpace(u.FullName) == "" || !fullNameRe.MatchString(u.FullName) {
		return &ValidationError{Field: "fullName", Message: "should only contain alphabets and spaces"}
	}
	switch u.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return &ValidationError{Field: "gender", Message: "must be Male, Female or Other"}
	}
	if u.DateOfBirth.IsZero() {
		return &ValidationError{Field: "dateOfBirth", Message: "is required"}
	}
	if strings.TrimSpace(u.Country) == "" {
		return &ValidationError{Field: "country", Message: "is required"}
	}
	return nil
}

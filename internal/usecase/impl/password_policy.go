package impl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"comerciaya/config"
	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/errors"
)

// validatePassword checks the password against the configured policy and
// lists every unmet rule in the error.
func validatePassword(policy config.PasswordStrengthConfig, password string) error {
	var unmet []string

	length := utf8.RuneCountInString(password)
	if length < policy.MinLength {
		unmet = append(unmet, "too short")
	}
	if policy.MaxLength > 0 && length > policy.MaxLength {
		unmet = append(unmet, "too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if policy.RequireUppercase && !hasUpper {
		unmet = append(unmet, "needs an uppercase letter")
	}
	if policy.RequireLowercase && !hasLower {
		unmet = append(unmet, "needs a lowercase letter")
	}
	if policy.RequireNumbers && !hasNumber {
		unmet = append(unmet, "needs a number")
	}
	if policy.RequireSpecial && !hasSpecial {
		unmet = append(unmet, "needs a special character")
	}

	if len(unmet) > 0 {
		return errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails(strings.Join(unmet, ", ")))
	}

	return nil
}

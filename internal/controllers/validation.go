package controllers

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin"
)

// Validation errors use the same structured shape the page layer's
// presenter renders: {"detail": [{type, loc, ctx, msg}, ...]}.

type fieldError struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Ctx  gin.H    `json:"ctx,omitempty"`
	Msg  string   `json:"msg"`
}

func tooShort(field string, minLength int) fieldError {
	return fieldError{
		Type: "string_too_short",
		Loc:  []string{"body", field},
		Ctx:  gin.H{"min_length": minLength},
		Msg:  fmt.Sprintf("String should have at least %d characters", minLength),
	}
}

func valueError(field, msg string) fieldError {
	return fieldError{
		Type: "value_error",
		Loc:  []string{"body", field},
		Msg:  msg,
	}
}

var phonePattern = regexp.MustCompile(`^\+?380\d{9}$`)

func validateName(errs []fieldError, field, value string) []fieldError {
	if len([]rune(value)) < 2 {
		errs = append(errs, tooShort(field, 2))
	}
	return errs
}

func validatePhoneNumber(errs []fieldError, value string) []fieldError {
	if !phonePattern.MatchString(value) {
		errs = append(errs, valueError("phone_number",
			"Phone number must be in Ukrainian format (+380XXXXXXXXX)"))
	}
	return errs
}

func validatePassword(errs []fieldError, value string) []fieldError {
	if len(value) < 8 {
		errs = append(errs, tooShort("password", 8))
		return errs
	}
	var hasDigit, hasUpper, hasLower bool
	for _, r := range value {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit {
		errs = append(errs, valueError("password", "Password must contain at least one digit"))
	}
	if !hasUpper {
		errs = append(errs, valueError("password", "Password must contain at least one uppercase letter"))
	}
	if !hasLower {
		errs = append(errs, valueError("password", "Password must contain at least one lowercase letter"))
	}
	return errs
}

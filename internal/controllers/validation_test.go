package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	errs := validateName(nil, "first_name", "Іван")
	assert.Empty(t, errs)

	errs = validateName(nil, "first_name", "І")
	require.Len(t, errs, 1)
	assert.Equal(t, "string_too_short", errs[0].Type)
	assert.Equal(t, []string{"body", "first_name"}, errs[0].Loc)
	assert.EqualValues(t, 2, errs[0].Ctx["min_length"])
}

func TestValidateNameCountsRunes(t *testing.T) {
	// Two Cyrillic letters are two characters, not four bytes.
	assert.Empty(t, validateName(nil, "last_name", "Юк"))
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"+380501234567", "380501234567"}
	for _, phone := range valid {
		assert.Empty(t, validatePhoneNumber(nil, phone), phone)
	}

	invalid := []string{"", "0501234567", "+38050123456", "+3805012345678", "+490501234567"}
	for _, phone := range invalid {
		errs := validatePhoneNumber(nil, phone)
		require.Len(t, errs, 1, phone)
		assert.Equal(t, "value_error", errs[0].Type)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, validatePassword(nil, "Password1"))

	errs := validatePassword(nil, "short")
	require.Len(t, errs, 1)
	assert.Equal(t, "string_too_short", errs[0].Type)
	assert.EqualValues(t, 8, errs[0].Ctx["min_length"])

	errs = validatePassword(nil, "alllowercase1")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Msg, "uppercase")

	errs = validatePassword(nil, "NODIGITSNOLOWER")
	require.Len(t, errs, 2)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "82.5", trimFloat(82.5))
	assert.Equal(t, "180", trimFloat(180))

	assert.Equal(t, "-", formatMeasure(0, "кг"))
	assert.Equal(t, "72.5 кг", formatMeasure(72.5, "кг"))

	assert.Equal(t, "/api/hospitals/3/stats", hospitalPath(3, "stats"))
}

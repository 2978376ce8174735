package webui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorBodyScalarDetail(t *testing.T) {
	body := []byte(`{"detail": "User already exists"}`)
	assert.Equal(t, "User already exists", FormatErrorBody(body))
}

func TestFormatErrorBodyStringTooShort(t *testing.T) {
	body := []byte(`{"detail": [{
		"type": "string_too_short",
		"loc": ["body", "password"],
		"ctx": {"min_length": 8},
		"msg": "String should have at least 8 characters"
	}]}`)

	assert.Equal(t, `Поле "password" має містити мінімум 8 символів.`, FormatErrorBody(body))
}

func TestFormatErrorBodyMultipleEntries(t *testing.T) {
	body := []byte(`{"detail": [
		{"type": "string_too_short", "loc": ["body", "first_name"], "ctx": {"min_length": 2}, "msg": "too short"},
		{"type": "value_error", "loc": ["body", "phone_number"], "msg": "Phone number must be in Ukrainian format (+380XXXXXXXXX)"}
	]}`)

	want := "Поле \"first_name\" має містити мінімум 2 символів.\n" +
		"Phone number must be in Ukrainian format (+380XXXXXXXXX)"
	assert.Equal(t, want, FormatErrorBody(body))
}

func TestFormatErrorBodyUnknownTypeFallsBackToMsg(t *testing.T) {
	body := []byte(`{"detail": [{"type": "something_new", "loc": ["body", "email"], "msg": "value is not a valid email"}]}`)
	assert.Equal(t, "value is not a valid email", FormatErrorBody(body))
}

func TestFormatErrorBodyMalformedPayload(t *testing.T) {
	cases := map[string][]byte{
		"not json":      []byte(`<html>502</html>`),
		"empty body":    nil,
		"no detail":     []byte(`{"message": "ok"}`),
		"empty detail":  []byte(`{"detail": ""}`),
		"empty list":    []byte(`{"detail": []}`),
		"detail object": []byte(`{"detail": {"oops": true}}`),
	}
	for name, body := range cases {
		assert.Equal(t, GenericErrorMessage, FormatErrorBody(body), name)
	}
}

func TestFormatErrorBodyTooShortWithoutCtx(t *testing.T) {
	body := []byte(`{"detail": [{"type": "string_too_short", "loc": ["body", "password"], "msg": "too short"}]}`)
	assert.Equal(t, "too short", FormatErrorBody(body))
}

func TestRegisterDetailRenderer(t *testing.T) {
	RegisterDetailRenderer("custom_check", func(e FieldError) string {
		return "custom: " + e.FieldName()
	})
	defer delete(detailRenderers, "custom_check")

	body := []byte(`{"detail": [{"type": "custom_check", "loc": ["body", "weight"], "msg": "ignored"}]}`)
	assert.Equal(t, "custom: weight", FormatErrorBody(body))
}

func TestPresentError(t *testing.T) {
	apiErr := &APIError{Status: 409, Body: []byte(`{"detail": "User already exists"}`)}
	assert.Equal(t, "User already exists", PresentError(apiErr))

	assert.Equal(t, GenericErrorMessage, PresentError(errors.New("connection refused")))
}

package webui

import (
	"encoding/json"
	"fmt"
)

// GenericErrorMessage is shown when the backend error payload is absent or
// not understood.
const GenericErrorMessage = "Трапилася помилка"

// FieldError is one entry of a FastAPI-style validation error list.
// Loc elements may be strings or numbers, so they stay untyped.
type FieldError struct {
	Type string                 `json:"type"`
	Loc  []interface{}          `json:"loc"`
	Ctx  map[string]interface{} `json:"ctx"`
	Msg  string                 `json:"msg"`
}

// FieldName returns the second loc element, which FastAPI uses for the
// offending field ("body", "<field>", ...).
func (e FieldError) FieldName() string {
	if len(e.Loc) < 2 {
		return ""
	}
	return fmt.Sprintf("%v", e.Loc[1])
}

// detailRenderers maps validation error types to message builders. The set
// is open: unknown types fall back to the entry's own msg.
var detailRenderers = map[string]func(FieldError) string{
	"string_too_short": renderStringTooShort,
}

// RegisterDetailRenderer adds or overrides the renderer for one validation
// error type. Fallback behavior for unrecognized types is unaffected.
func RegisterDetailRenderer(errType string, render func(FieldError) string) {
	detailRenderers[errType] = render
}

func renderStringTooShort(e FieldError) string {
	field := e.FieldName()
	minLen, ok := e.Ctx["min_length"]
	if field == "" || !ok {
		return fallbackMessage(e)
	}
	length, ok := minLen.(float64)
	if !ok {
		return fallbackMessage(e)
	}
	return fmt.Sprintf("Поле %q має містити мінімум %d символів.", field, int(length))
}

func fallbackMessage(e FieldError) string {
	if e.Msg != "" {
		return e.Msg
	}
	return GenericErrorMessage
}

// FormatErrorBody converts a backend error payload, either {"detail": "..."}
// or {"detail": [{type, loc, ctx, msg}, ...]}, into one user-facing string.
func FormatErrorBody(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return GenericErrorMessage
	}

	var scalar string
	if err := json.Unmarshal(payload.Detail, &scalar); err == nil {
		if scalar == "" {
			return GenericErrorMessage
		}
		return scalar
	}

	var entries []FieldError
	if err := json.Unmarshal(payload.Detail, &entries); err != nil || len(entries) == 0 {
		return GenericErrorMessage
	}

	message := ""
	for i, entry := range entries {
		if i > 0 {
			message += "\n"
		}
		if render, ok := detailRenderers[entry.Type]; ok {
			message += render(entry)
		} else {
			message += fallbackMessage(entry)
		}
	}
	return message
}

// PresentError renders any page-layer error for the user: backend error
// payloads go through the detail formatter, transport failures collapse to
// the generic message.
func PresentError(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		return FormatErrorBody(apiErr.Body)
	}
	return GenericErrorMessage
}

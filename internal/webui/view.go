package webui

import (
	"time"

	"blood_donor_system/internal/logger"
)

// Document collects the values a page template displays, keyed by element
// identifier. Writes to identifiers the page never declared are dropped
// with a log line instead of failing, so template variants that omit an
// element stay harmless.
type Document struct {
	known  map[string]bool
	fields map[string]string
	texts  map[string]string
}

// NewDocument declares the element identifiers the page knows about.
func NewDocument(ids ...string) *Document {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &Document{
		known:  known,
		fields: make(map[string]string),
		texts:  make(map[string]string),
	}
}

// SetField writes a form field value. Unknown identifiers are ignored.
func (d *Document) SetField(id, value string) {
	if !d.known[id] {
		logger.Component("webui").Warnf("SetField: element %q not declared, value dropped", id)
		return
	}
	d.fields[id] = value
}

// SetText writes a display-only text value. Unknown identifiers are ignored.
func (d *Document) SetText(id, value string) {
	if !d.known[id] {
		logger.Component("webui").Warnf("SetText: element %q not declared, value dropped", id)
		return
	}
	d.texts[id] = value
}

// Field reads a form field value ("" when unset).
func (d *Document) Field(id string) string {
	return d.fields[id]
}

// Text reads a display text value ("" when unset).
func (d *Document) Text(id string) string {
	return d.texts[id]
}

// FormatDate renders a timestamp the way every table and field shows dates:
// '-' for a missing value, otherwise the uk-UA short form (dd.mm.yyyy).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}

// FormatDatePtr is FormatDate for optional timestamps.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return FormatDate(*t)
}

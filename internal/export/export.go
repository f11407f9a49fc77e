// Package export renders resource rows as .properties lines or error XML.
// Both the client preview and the server download use these functions so the
// text never diverges between them.
package export

import (
	"fmt"
	"io"
	"strings"

	"resource-converter/internal/domain"
)

// Format names an export file type.
type Format string

const (
	FormatProperties Format = "properties"
	FormatXML        Format = "xml"
	FormatZip        Format = "zip"
)

// Extension returns the file extension of a format including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// XMLHeader is written before the root element.
const XMLHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// WriteProperties writes one key=value line per label using the text of slot.
// Labels whose key is blank are skipped. Keys and values are written verbatim.
func WriteProperties(w io.Writer, labels []domain.LabelRow, slot domain.Slot) (int, error) {
	written := 0
	for _, l := range labels {
		key := l.Key()
		if strings.TrimSpace(key) == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, l.Text(slot)); err != nil {
			return written, fmt.Errorf("write properties line: %w", err)
		}
		written++
	}
	return written, nil
}

// Properties renders labels as properties text.
func Properties(labels []domain.LabelRow, slot domain.Slot) string {
	var sb strings.Builder
	_, _ = WriteProperties(&sb, labels, slot)
	return sb.String()
}

// xmlEscaper escapes text with the predefined XML entities. Line breaks are
// kept as they are.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// WriteErrorXML writes an <error-messages> document with one <error> element
// per row. The code attribute and message text are XML-escaped.
func WriteErrorXML(w io.Writer, messages []domain.ErrorMessageRow, slot domain.Slot) (int, error) {
	if _, err := io.WriteString(w, XMLHeader+"<error-messages>\n"); err != nil {
		return 0, fmt.Errorf("write xml header: %w", err)
	}

	for i, m := range messages {
		if _, err := fmt.Fprintf(w, "  <error code=\"%s\"><type>%s</type><message>%s</message></error>\n",
			xmlEscaper.Replace(m.ErrorNo),
			domain.ErrorTypeName(m.ErrorType),
			xmlEscaper.Replace(m.Text(slot)),
		); err != nil {
			return i, fmt.Errorf("write error %s: %w", m.ObjectID, err)
		}
	}

	if _, err := io.WriteString(w, "</error-messages>"); err != nil {
		return len(messages), fmt.Errorf("write xml footer: %w", err)
	}
	return len(messages), nil
}

// ErrorXML renders error messages as an XML document.
func ErrorXML(messages []domain.ErrorMessageRow, slot domain.Slot) string {
	var sb strings.Builder
	_, _ = WriteErrorXML(&sb, messages, slot)
	return sb.String()
}

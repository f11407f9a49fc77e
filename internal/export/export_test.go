package export

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-converter/internal/domain"
)

func TestProperties(t *testing.T) {
	tests := []struct {
		name   string
		labels []domain.LabelRow
		slot   domain.Slot
		want   string
	}{
		{
			name:   "object id is the key when message id is blank",
			labels: []domain.LabelRow{{ObjectID: "A1", LocalizedText: domain.LocalizedText{Country1: "Hello"}}},
			slot:   domain.SlotCountry1,
			want:   "A1=Hello\n",
		},
		{
			name:   "message id overrides object id",
			labels: []domain.LabelRow{{ObjectID: "A1", MessageID: "greet", LocalizedText: domain.LocalizedText{Country1: "Hello"}}},
			slot:   domain.SlotCountry1,
			want:   "greet=Hello\n",
		},
		{
			name:   "whitespace message id falls back",
			labels: []domain.LabelRow{{ObjectID: "A1", MessageID: "  ", LocalizedText: domain.LocalizedText{Country1: "Hello"}}},
			slot:   domain.SlotCountry1,
			want:   "A1=Hello\n",
		},
		{
			name: "uses the chosen slot and keeps order",
			labels: []domain.LabelRow{
				{ObjectID: "B", LocalizedText: domain.LocalizedText{Country1: "Yes", Country3: "Oui"}},
				{ObjectID: "A", LocalizedText: domain.LocalizedText{Country1: "No"}},
			},
			slot: domain.SlotCountry3,
			want: "B=Oui\nA=\n",
		},
		{
			name:   "blank key skipped",
			labels: []domain.LabelRow{{ObjectID: "", LocalizedText: domain.LocalizedText{Country1: "orphan"}}},
			slot:   domain.SlotCountry1,
			want:   "",
		},
		{
			name:   "values are not escaped",
			labels: []domain.LabelRow{{ObjectID: "eq", LocalizedText: domain.LocalizedText{Country1: "a=b:c"}}},
			slot:   domain.SlotCountry1,
			want:   "eq=a=b:c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Properties(tt.labels, tt.slot))
		})
	}
}

func TestProperties_ParsesAsPropertiesFile(t *testing.T) {
	labels := []domain.LabelRow{
		{ObjectID: "LBL001", LocalizedText: domain.LocalizedText{Country2: "こんにちは"}},
		{ObjectID: "LBL002", MessageID: "app.bye", LocalizedText: domain.LocalizedText{Country2: "さようなら"}},
	}

	p, err := properties.LoadString(Properties(labels, domain.SlotCountry2))
	require.NoError(t, err)

	assert.Equal(t, "こんにちは", p.MustGetString("LBL001"))
	assert.Equal(t, "さようなら", p.MustGetString("app.bye"))
	assert.Equal(t, 2, p.Len())
}

func TestWriteProperties_CountsWrittenLines(t *testing.T) {
	var sb strings.Builder
	n, err := WriteProperties(&sb, []domain.LabelRow{{ObjectID: "A"}, {}, {ObjectID: "B"}}, domain.SlotCountry1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestErrorXML(t *testing.T) {
	t.Run("single element", func(t *testing.T) {
		out := ErrorXML([]domain.ErrorMessageRow{
			{ErrorNo: "42", ErrorType: "2", LocalizedText: domain.LocalizedText{Country1: "careful"}},
		}, domain.SlotCountry1)

		assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, out, `<error code="42"><type>warning</type><message>careful</message></error>`)
		assert.True(t, strings.HasSuffix(out, "</error-messages>"))
	})

	t.Run("type mapping", func(t *testing.T) {
		tests := []struct {
			code string
			want string
		}{
			{"1", "error"},
			{"2", "warning"},
			{"3", "info"},
			{"4", "info"},
			{"9", "info"},
			{"", "info"},
		}
		for _, tt := range tests {
			out := ErrorXML([]domain.ErrorMessageRow{{ErrorNo: "1", ErrorType: tt.code}}, domain.SlotCountry1)
			assert.Contains(t, out, "<type>"+tt.want+"</type>", "errorType %q", tt.code)
		}
	})

	t.Run("escapes message text with named entities", func(t *testing.T) {
		tests := []struct {
			name string
			text string
			want string
		}{
			{"markup", `a < b & c > d`, "<message>a &lt; b &amp; c &gt; d</message>"},
			{"quotes", `Say "hi" it's`, "<message>Say &quot;hi&quot; it&apos;s</message>"},
			{"line breaks kept", "line one\nline two", "<message>line one\nline two</message>"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				out := ErrorXML([]domain.ErrorMessageRow{
					{ErrorNo: "7", ErrorType: "1", LocalizedText: domain.LocalizedText{Country2: tt.text}},
				}, domain.SlotCountry2)
				assert.Contains(t, out, tt.want)
			})
		}
	})

	t.Run("escapes the code attribute", func(t *testing.T) {
		out := ErrorXML([]domain.ErrorMessageRow{{ErrorNo: `7"&`, ErrorType: "1"}}, domain.SlotCountry1)
		assert.Contains(t, out, `<error code="7&quot;&amp;">`)
	})

	t.Run("well formed document", func(t *testing.T) {
		out := ErrorXML([]domain.ErrorMessageRow{
			{ErrorNo: "1", ErrorType: "1", LocalizedText: domain.LocalizedText{Country1: "one"}},
			{ErrorNo: "2", ErrorType: "3", LocalizedText: domain.LocalizedText{Country1: "two"}},
		}, domain.SlotCountry1)

		var doc struct {
			Errors []struct {
				Code    string `xml:"code,attr"`
				Type    string `xml:"type"`
				Message string `xml:"message"`
			} `xml:"error"`
		}
		require.NoError(t, xml.Unmarshal([]byte(out), &doc))
		require.Len(t, doc.Errors, 2)
		assert.Equal(t, "2", doc.Errors[1].Code)
		assert.Equal(t, "info", doc.Errors[1].Type)
		assert.Equal(t, "two", doc.Errors[1].Message)
	})

	t.Run("empty list still yields a document", func(t *testing.T) {
		assert.Equal(t, XMLHeader+"<error-messages>\n</error-messages>", ErrorXML(nil, domain.SlotCountry1))
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriters_PropagateErrors(t *testing.T) {
	_, err := WriteProperties(failingWriter{}, []domain.LabelRow{{ObjectID: "A"}}, domain.SlotCountry1)
	assert.ErrorContains(t, err, "disk full")

	_, err = WriteErrorXML(failingWriter{}, nil, domain.SlotCountry1)
	assert.ErrorContains(t, err, "disk full")
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, ".properties", FormatProperties.Extension())
	assert.Equal(t, ".xml", FormatXML.Extension())
	assert.Equal(t, ".zip", FormatZip.Extension())
}

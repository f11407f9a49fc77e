package domain

import (
	"errors"
	"strings"
)

// Slot is one of the five localized text columns of a resource row.
type Slot string

const (
	SlotCountry1 Slot = "country1"
	SlotCountry2 Slot = "country2"
	SlotCountry3 Slot = "country3"
	SlotCountry4 Slot = "country4"
	SlotCountry5 Slot = "country5"
)

// Slots lists every slot in column order.
var Slots = []Slot{SlotCountry1, SlotCountry2, SlotCountry3, SlotCountry4, SlotCountry5}

// ErrUnknownSlot is returned for a language key outside country1..country5.
var ErrUnknownSlot = errors.New("unknown language slot")

// IsValidSlot checks if a slot name is one of the fixed columns.
func IsValidSlot(s Slot) bool {
	for _, v := range Slots {
		if v == s {
			return true
		}
	}
	return false
}

// ResourceKind distinguishes the two exportable tables.
type ResourceKind string

const (
	ResourceLabels        ResourceKind = "labels"
	ResourceErrorMessages ResourceKind = "error-messages"
)

// LocalizedText carries the five localized columns shared by both row kinds.
type LocalizedText struct {
	Country1 string `json:"country1"`
	Country2 string `json:"country2"`
	Country3 string `json:"country3"`
	Country4 string `json:"country4"`
	Country5 string `json:"country5"`
}

// Text returns the text stored in a slot, blank for unknown slots.
func (t LocalizedText) Text(slot Slot) string {
	switch slot {
	case SlotCountry1:
		return t.Country1
	case SlotCountry2:
		return t.Country2
	case SlotCountry3:
		return t.Country3
	case SlotCountry4:
		return t.Country4
	case SlotCountry5:
		return t.Country5
	}
	return ""
}

// LabelRow is a UI label from SLocalizationLabel.
type LabelRow struct {
	ObjectID     string `json:"objectID"`
	CategoryName string `json:"categoryName"`
	// MessageID is entered by the user; it overrides ObjectID as the properties key.
	MessageID string `json:"messageId,omitempty"`
	LocalizedText
}

// ID returns the row identifier.
func (r LabelRow) ID() string { return r.ObjectID }

// Key returns the properties key: MessageID when non-blank, otherwise ObjectID.
func (r LabelRow) Key() string {
	if strings.TrimSpace(r.MessageID) != "" {
		return r.MessageID
	}
	return r.ObjectID
}

// ErrorMessageRow is an SError joined with its SLocalization text.
type ErrorMessageRow struct {
	ObjectID        string `json:"objectID"`
	ErrorNo         string `json:"errorNo"`
	ErrorType       string `json:"errorType"`
	MessageObjectID string `json:"messageObjectID"`
	LocalizedText
}

// ID returns the row identifier.
func (r ErrorMessageRow) ID() string { return r.ObjectID }

// ErrorTypeName maps the stored error type code to its XML name.
// Unknown codes fall back to info.
func ErrorTypeName(code string) string {
	switch code {
	case "1":
		return "error"
	case "2":
		return "warning"
	default:
		return "info"
	}
}

// Filter holds the free-text constraints applied server-side with partial matching.
// CategoryName applies to labels; ErrorNo and ErrorType apply to error messages.
type Filter struct {
	ObjectID     string `json:"objectID,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
	ErrorNo      string `json:"errorNo,omitempty"`
	ErrorType    string `json:"errorType,omitempty"`
	Message      string `json:"message,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// PagedResult is one page of rows plus the total count for the filter.
type PagedResult[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}

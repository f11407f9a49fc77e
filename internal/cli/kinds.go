package cli

import (
	"strings"

	"resource-converter/internal/domain"
	"resource-converter/internal/exportview"
	"resource-converter/internal/listview"
)

// resourceRow is a browsable row with localized text columns.
type resourceRow interface {
	listview.Row
	Text(slot domain.Slot) string
}

// resourceAPI is the backend surface of one resource kind.
type resourceAPI[T resourceRow] interface {
	listview.Source[T]
	exportview.API[T]
}

// kind describes what differs between the label and error message screens.
type kind[T resourceRow] struct {
	name       string
	title      string
	headers    []string
	cells      func(row T, messageID string) []string
	filters    map[string]func(f *domain.Filter, value string)
	filterHelp string
	messageIDs bool
	openExport func(api exportview.API[T], p domain.ConnectionProfile, messageIDs map[string]string) *exportview.View[T]
}

var labelKind = kind[domain.LabelRow]{
	name:    string(domain.ResourceLabels),
	title:   "labels",
	headers: []string{"objectID", "categoryName", "messageId"},
	cells: func(r domain.LabelRow, messageID string) []string {
		if messageID == "" {
			messageID = r.MessageID
		}
		return []string{r.ObjectID, r.CategoryName, messageID}
	},
	filters: map[string]func(*domain.Filter, string){
		"objectid":     func(f *domain.Filter, v string) { f.ObjectID = v },
		"categoryname": func(f *domain.Filter, v string) { f.CategoryName = v },
		"message":      func(f *domain.Filter, v string) { f.Message = v },
	},
	filterHelp: "id, category, message",
	messageIDs: true,
	openExport: func(api exportview.API[domain.LabelRow], p domain.ConnectionProfile, ids map[string]string) *exportview.View[domain.LabelRow] {
		return exportview.NewLabels(api, p, ids)
	},
}

var errorKind = kind[domain.ErrorMessageRow]{
	name:    string(domain.ResourceErrorMessages),
	title:   "errors",
	headers: []string{"objectID", "errorNo", "errorType", "messageObjectID"},
	cells: func(r domain.ErrorMessageRow, _ string) []string {
		return []string{r.ObjectID, r.ErrorNo, r.ErrorType + " (" + domain.ErrorTypeName(r.ErrorType) + ")", r.MessageObjectID}
	},
	filters: map[string]func(*domain.Filter, string){
		"objectid":  func(f *domain.Filter, v string) { f.ObjectID = v },
		"errorno":   func(f *domain.Filter, v string) { f.ErrorNo = v },
		"errortype": func(f *domain.Filter, v string) { f.ErrorType = v },
		"message":   func(f *domain.Filter, v string) { f.Message = v },
	},
	filterHelp: "id, no, type, message",
	openExport: func(api exportview.API[domain.ErrorMessageRow], p domain.ConnectionProfile, _ map[string]string) *exportview.View[domain.ErrorMessageRow] {
		return exportview.NewErrorMessages(api, p)
	},
}

// filterAliases maps short names typed in the REPL to filter fields.
var filterAliases = map[string]string{
	"id":       "objectid",
	"category": "categoryname",
	"cat":      "categoryname",
	"no":       "errorno",
	"type":     "errortype",
	"msg":      "message",
	"text":     "message",
}

func (k kind[T]) filterKey(s string) (string, bool) {
	key := strings.ToLower(s)
	if alias, ok := filterAliases[key]; ok {
		key = alias
	}
	_, ok := k.filters[key]
	return key, ok
}

func describeFilter(f domain.Filter) string {
	var parts []string
	add := func(name, v string) {
		if v != "" {
			parts = append(parts, name+"~"+v)
		}
	}
	add("objectID", f.ObjectID)
	add("categoryName", f.CategoryName)
	add("errorNo", f.ErrorNo)
	add("errorType", f.ErrorType)
	add("message", f.Message)
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " AND ")
}

package domain

// FetchRequest asks for one page of rows matching a filter.
// The connection fields are sent flat at the top level of the JSON body.
type FetchRequest struct {
	ConnectionConfig
	Filter Filter `json:"filter"`
	Page   int    `json:"page"`
	Size   int    `json:"size"`
}

// IDsRequest asks for every row ID matching a filter, ignoring paging.
type IDsRequest struct {
	ConnectionConfig
	Filter Filter `json:"filter"`
}

// ByIDsRequest asks for exactly the listed rows.
type ByIDsRequest struct {
	DBConfig  ConnectionConfig `json:"dbConfig"`
	ObjectIDs []string         `json:"objectIDs"`
}

// LabelDownloadRequest renders labels as properties text in one language slot.
type LabelDownloadRequest struct {
	Labels []LabelRow `json:"labels"`
	Lang   Slot       `json:"lang"`
}

// ErrorDownloadRequest renders error messages as XML in one language slot.
type ErrorDownloadRequest struct {
	Messages []ErrorMessageRow `json:"messages"`
	Lang     Slot              `json:"lang"`
}

// LangOrDefault returns s, or country1 when s is blank.
func LangOrDefault(s Slot) Slot {
	if s == "" {
		return SlotCountry1
	}
	return s
}

package domain

import (
	"encoding/json"
	"testing"
)

func TestIsValidDBType(t *testing.T) {
	tests := []struct {
		dbType DBType
		valid  bool
	}{
		{DBTypeMySQL, true},
		{DBTypePostgreSQL, true},
		{DBTypeOracle, true},
		{DBTypeSQLServer, true},
		{DBTypeSQLite, true},
		{"mysql", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.dbType), func(t *testing.T) {
			if got := IsValidDBType(tt.dbType); got != tt.valid {
				t.Errorf("IsValidDBType(%q) = %v, want %v", tt.dbType, got, tt.valid)
			}
		})
	}
}

func TestEffectivePort(t *testing.T) {
	tests := []struct {
		name string
		cfg  ConnectionConfig
		want int
	}{
		{"explicit port wins", ConnectionConfig{DBType: DBTypeMySQL, Port: 13306}, 13306},
		{"mysql default", ConnectionConfig{DBType: DBTypeMySQL}, 3306},
		{"postgres default", ConnectionConfig{DBType: DBTypePostgreSQL}, 5432},
		{"oracle default", ConnectionConfig{DBType: DBTypeOracle}, 1521},
		{"sqlserver default", ConnectionConfig{DBType: DBTypeSQLServer}, 1433},
		{"sqlite has none", ConnectionConfig{DBType: DBTypeSQLite}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.EffectivePort(); got != tt.want {
				t.Errorf("EffectivePort() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAvailableSlots(t *testing.T) {
	p := ConnectionProfile{
		Name: "dev",
		LanguageMap: map[Slot]string{
			SlotCountry1: "",
			SlotCountry2: "ja",
			SlotCountry3: "   ",
			SlotCountry5: "fr",
		},
	}

	got := p.AvailableSlots()
	want := []Slot{SlotCountry1, SlotCountry2, SlotCountry5}
	if len(got) != len(want) {
		t.Fatalf("AvailableSlots() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AvailableSlots()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if slots := (ConnectionProfile{}).AvailableSlots(); len(slots) != 1 || slots[0] != SlotCountry1 {
		t.Errorf("empty profile slots = %v, want [country1]", slots)
	}
}

func TestConnectionProfile_JSONOmitsNothingFromConnection(t *testing.T) {
	p := ConnectionProfile{
		Name: "local",
		ConnectionConfig: ConnectionConfig{
			DBType:   DBTypePostgreSQL,
			Host:     "db",
			Port:     5432,
			DBName:   "catalog",
			Username: "app",
			Password: "secret",
		},
	}

	data, err := json.Marshal(p.Connection())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := fields["name"]; ok {
		t.Error("connection config must not carry the profile name")
	}
	if fields["dbType"] != "PostgreSQL" || fields["dbName"] != "catalog" {
		t.Errorf("unexpected connection fields: %v", fields)
	}
}

func TestLabelRowKey(t *testing.T) {
	tests := []struct {
		name string
		row  LabelRow
		want string
	}{
		{"falls back to objectID", LabelRow{ObjectID: "A1"}, "A1"},
		{"blank messageId falls back", LabelRow{ObjectID: "A1", MessageID: "  "}, "A1"},
		{"messageId wins", LabelRow{ObjectID: "A1", MessageID: "greet"}, "greet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorTypeName(t *testing.T) {
	tests := map[string]string{
		"1": "error",
		"2": "warning",
		"3": "info",
		"4": "info",
		"9": "info",
		"":  "info",
	}

	for code, want := range tests {
		if got := ErrorTypeName(code); got != want {
			t.Errorf("ErrorTypeName(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestLocalizedTextText(t *testing.T) {
	text := LocalizedText{Country1: "Hello", Country2: "こんにちは", Country5: "Salut"}

	if got := text.Text(SlotCountry1); got != "Hello" {
		t.Errorf("Text(country1) = %q", got)
	}
	if got := text.Text(SlotCountry2); got != "こんにちは" {
		t.Errorf("Text(country2) = %q", got)
	}
	if got := text.Text(SlotCountry3); got != "" {
		t.Errorf("Text(country3) = %q, want blank", got)
	}
	if got := text.Text("country9"); got != "" {
		t.Errorf("Text(country9) = %q, want blank", got)
	}
}

func TestFilterIsEmpty(t *testing.T) {
	if !(Filter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if (Filter{Message: "x"}).IsEmpty() {
		t.Error("filter with message should not be empty")
	}
}

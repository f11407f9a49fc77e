package domain

import (
	"errors"
	"strings"
)

// DBType identifies the database engine behind a connection profile.
type DBType string

const (
	DBTypeMySQL      DBType = "MySQL"
	DBTypePostgreSQL DBType = "PostgreSQL"
	DBTypeOracle     DBType = "Oracle"
	DBTypeSQLServer  DBType = "SQLServer"
	DBTypeSQLite     DBType = "SQLite"
)

// ErrUnsupportedDBType is returned when a profile names an unknown engine.
var ErrUnsupportedDBType = errors.New("unsupported db type")

// ValidDBTypes contains all supported database engines.
var ValidDBTypes = []DBType{DBTypeMySQL, DBTypePostgreSQL, DBTypeOracle, DBTypeSQLServer, DBTypeSQLite}

// IsValidDBType checks if a db type is supported.
func IsValidDBType(t DBType) bool {
	for _, v := range ValidDBTypes {
		if v == t {
			return true
		}
	}
	return false
}

// DefaultPort returns the conventional port for a db type, or 0 when none applies.
func DefaultPort(t DBType) int {
	switch t {
	case DBTypeMySQL:
		return 3306
	case DBTypePostgreSQL:
		return 5432
	case DBTypeOracle:
		return 1521
	case DBTypeSQLServer:
		return 1433
	}
	return 0
}

// ConnectionConfig holds the fields forwarded to the backend to open a connection.
// Profile name and language labels never leave the client.
type ConnectionConfig struct {
	DBType   DBType `json:"dbType"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// EffectivePort returns the configured port or the engine default.
func (c ConnectionConfig) EffectivePort() int {
	if c.Port > 0 {
		return c.Port
	}
	return DefaultPort(c.DBType)
}

// ConnectionProfile is a named connection plus per-slot language labels.
type ConnectionProfile struct {
	Name string `json:"name"`
	ConnectionConfig
	LanguageMap map[Slot]string `json:"languageMap,omitempty"`
}

// DefaultProfile returns the blank profile shown by an empty editor form.
func DefaultProfile() ConnectionProfile {
	return ConnectionProfile{
		ConnectionConfig: ConnectionConfig{
			DBType: DBTypeMySQL,
			Host:   "localhost",
			Port:   DefaultPort(DBTypeMySQL),
		},
		LanguageMap: map[Slot]string{},
	}
}

// Connection strips the client-only fields from the profile.
func (p ConnectionProfile) Connection() ConnectionConfig {
	return p.ConnectionConfig
}

// SlotLabel returns the configured label for a slot, trimmed.
func (p ConnectionProfile) SlotLabel(slot Slot) string {
	if p.LanguageMap == nil {
		return ""
	}
	return strings.TrimSpace(p.LanguageMap[slot])
}

// AvailableSlots lists the slots offered in pickers. country1 is always present;
// the others only when they carry a non-blank label.
func (p ConnectionProfile) AvailableSlots() []Slot {
	slots := []Slot{SlotCountry1}
	for _, s := range Slots[1:] {
		if p.SlotLabel(s) != "" {
			slots = append(slots, s)
		}
	}
	return slots
}

package database

import (
	"fmt"

	"resource-converter/internal/domain"
)

// Dialect captures the SQL differences between supported engines.
type Dialect struct {
	Type domain.DBType
}

// DialectFor returns the dialect of a db type.
func DialectFor(t domain.DBType) Dialect {
	return Dialect{Type: t}
}

// Placeholder returns the bind parameter marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	switch d.Type {
	case domain.DBTypePostgreSQL:
		return fmt.Sprintf("$%d", n)
	case domain.DBTypeSQLServer:
		return fmt.Sprintf("@p%d", n)
	case domain.DBTypeOracle:
		return fmt.Sprintf(":%d", n)
	default:
		return "?"
	}
}

// UsesOffsetFetch reports whether paging is written as OFFSET ... FETCH NEXT
// instead of LIMIT ... OFFSET.
func (d Dialect) UsesOffsetFetch() bool {
	return d.Type == domain.DBTypeOracle || d.Type == domain.DBTypeSQLServer
}

// ProbeQuery returns the lightweight query used to verify a connection.
func (d Dialect) ProbeQuery() string {
	if d.Type == domain.DBTypeOracle {
		return "SELECT 1 FROM DUAL"
	}
	return "SELECT 1"
}

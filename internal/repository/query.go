package repository

import (
	"database/sql"
	"strings"

	"resource-converter/internal/domain"
	"resource-converter/internal/infrastructure/database"
)

// maxInParams bounds the IN list of one by-IDs query. Oracle rejects more than
// 1000 expressions and SQL Server more than 2100 parameters.
const maxInParams = 500

var localizedColumns = []string{"country1", "country2", "country3", "country4", "country5"}

// queryBuilder accumulates WHERE conditions and bind arguments using the
// placeholder style of a dialect.
type queryBuilder struct {
	dialect database.Dialect
	where   []string
	args    []any
}

func newQueryBuilder(d database.Dialect) *queryBuilder {
	return &queryBuilder{dialect: d}
}

func (q *queryBuilder) bind(v any) string {
	q.args = append(q.args, v)
	return q.dialect.Placeholder(len(q.args))
}

// like adds "column LIKE %value%" unless value is empty.
func (q *queryBuilder) like(column, value string) {
	if value == "" {
		return
	}
	q.where = append(q.where, column+" LIKE "+q.bind("%"+value+"%"))
}

// anyLike adds a condition matching value in any of the columns.
func (q *queryBuilder) anyLike(columns []string, value string) {
	if value == "" {
		return
	}
	pattern := "%" + value + "%"
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " LIKE " + q.bind(pattern)
	}
	q.where = append(q.where, "("+strings.Join(parts, " OR ")+")")
}

func (q *queryBuilder) in(column string, values []string) {
	marks := make([]string, len(values))
	for i, v := range values {
		marks[i] = q.bind(v)
	}
	q.where = append(q.where, column+" IN ("+strings.Join(marks, ", ")+")")
}

func (q *queryBuilder) whereClause() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

// paginate returns the paging suffix. Must come after ORDER BY.
func (q *queryBuilder) paginate(page, size int) string {
	offset := page * size
	if q.dialect.UsesOffsetFetch() {
		return " OFFSET " + q.bind(offset) + " ROWS FETCH NEXT " + q.bind(size) + " ROWS ONLY"
	}
	return " LIMIT " + q.bind(size) + " OFFSET " + q.bind(offset)
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// uniqueIDs drops duplicates and blanks, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func chunks(ids []string, size int) [][]string {
	var out [][]string
	for len(ids) > size {
		out = append(out, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

type nullText [5]sql.NullString

func (n *nullText) dest() []any {
	return []any{&n[0], &n[1], &n[2], &n[3], &n[4]}
}

func (n *nullText) localized() domain.LocalizedText {
	return domain.LocalizedText{
		Country1: n[0].String,
		Country2: n[1].String,
		Country3: n[2].String,
		Country4: n[3].String,
		Country5: n[4].String,
	}
}

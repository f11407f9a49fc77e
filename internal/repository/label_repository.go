package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"resource-converter/internal/domain"
	"resource-converter/internal/infrastructure/database"
)

const labelColumns = "objectID, categoryName, country1, country2, country3, country4, country5"

// SQLLabelRepository implements LabelRepository over database/sql.
type SQLLabelRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSQLLabelRepository creates a repository bound to an open connection.
func NewSQLLabelRepository(conn *database.Conn) *SQLLabelRepository {
	return &SQLLabelRepository{db: conn.DB, dialect: conn.Dialect}
}

func (r *SQLLabelRepository) filtered(filter domain.Filter) *queryBuilder {
	q := newQueryBuilder(r.dialect)
	q.like("objectID", filter.ObjectID)
	q.like("categoryName", filter.CategoryName)
	q.anyLike(localizedColumns, filter.Message)
	return q
}

// FetchPage returns one page of labels ordered by objectID and the total match count.
func (r *SQLLabelRepository) FetchPage(ctx context.Context, filter domain.Filter, page, size int) (domain.PagedResult[domain.LabelRow], error) {
	result := domain.PagedResult[domain.LabelRow]{Content: []domain.LabelRow{}}

	count := r.filtered(filter)
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM SLocalizationLabel"+count.whereClause(), count.args...,
	).Scan(&result.TotalElements); err != nil {
		return result, fmt.Errorf("count labels: %w", err)
	}

	q := r.filtered(filter)
	query := "SELECT " + labelColumns + " FROM SLocalizationLabel" + q.whereClause() + " ORDER BY objectID"
	query += q.paginate(page, size)

	rows, err := r.query(ctx, query, q.args)
	if err != nil {
		return result, err
	}
	result.Content = rows
	return result, nil
}

// FetchIDs returns the objectID of every label matching the filter.
func (r *SQLLabelRepository) FetchIDs(ctx context.Context, filter domain.Filter) ([]string, error) {
	q := r.filtered(filter)
	return queryIDs(ctx, r.db, "SELECT objectID FROM SLocalizationLabel"+q.whereClause()+" ORDER BY objectID", q.args)
}

// FetchByIDs returns the labels with the given IDs ordered by objectID.
// An empty list returns no rows without querying.
func (r *SQLLabelRepository) FetchByIDs(ctx context.Context, ids []string) ([]domain.LabelRow, error) {
	out := []domain.LabelRow{}
	batches := chunks(uniqueIDs(ids), maxInParams)
	for _, batch := range batches {
		q := newQueryBuilder(r.dialect)
		q.in("objectID", batch)
		rows, err := r.query(ctx, "SELECT "+labelColumns+" FROM SLocalizationLabel"+q.whereClause()+" ORDER BY objectID", q.args)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	if len(batches) > 1 {
		sort.SliceStable(out, func(i, j int) bool { return out[i].ObjectID < out[j].ObjectID })
	}
	return out, nil
}

// StreamAll streams every label ordered by objectID.
func (r *SQLLabelRepository) StreamAll(ctx context.Context, callback func(domain.LabelRow) error) error {
	rows, err := r.db.QueryContext(ctx, "SELECT "+labelColumns+" FROM SLocalizationLabel ORDER BY objectID")
	if err != nil {
		return fmt.Errorf("query labels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		label, err := scanLabel(rows)
		if err != nil {
			return err
		}
		if err := callback(label); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}
	return rows.Err()
}

func (r *SQLLabelRepository) query(ctx context.Context, query string, args []any) ([]domain.LabelRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query labels: %w", err)
	}
	defer rows.Close()

	out := []domain.LabelRow{}
	for rows.Next() {
		label, err := scanLabel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return out, nil
}

func scanLabel(s rowScanner) (domain.LabelRow, error) {
	var (
		objectID, category sql.NullString
		text               nullText
	)
	if err := s.Scan(append([]any{&objectID, &category}, text.dest()...)...); err != nil {
		return domain.LabelRow{}, fmt.Errorf("scan label: %w", err)
	}
	return domain.LabelRow{
		ObjectID:      objectID.String,
		CategoryName:  category.String,
		LocalizedText: text.localized(),
	}, nil
}

func queryIDs(ctx context.Context, db *sql.DB, query string, args []any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id sql.NullString
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read ids: %w", err)
	}
	return ids, nil
}

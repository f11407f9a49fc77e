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

const (
	errorColumns = "e.objectID, e.errorNo, e.errorMessageID, e.errorType, l.ObjectID AS messageObjectID, " +
		"l.country1, l.country2, l.country3, l.country4, l.country5"
	errorFrom = " FROM SError e LEFT JOIN SLocalization l ON e.errorMessageID = l.ObjectID"
)

// SQLErrorMessageRepository implements ErrorMessageRepository over database/sql.
type SQLErrorMessageRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSQLErrorMessageRepository creates a repository bound to an open connection.
func NewSQLErrorMessageRepository(conn *database.Conn) *SQLErrorMessageRepository {
	return &SQLErrorMessageRepository{db: conn.DB, dialect: conn.Dialect}
}

func (r *SQLErrorMessageRepository) filtered(filter domain.Filter) *queryBuilder {
	q := newQueryBuilder(r.dialect)
	q.like("e.objectID", filter.ObjectID)
	q.like("e.errorNo", filter.ErrorNo)
	q.like("e.errorType", filter.ErrorType)
	q.anyLike(prefixed("l", localizedColumns), filter.Message)
	return q
}

// FetchPage returns one page of error messages ordered by objectID and the total match count.
func (r *SQLErrorMessageRepository) FetchPage(ctx context.Context, filter domain.Filter, page, size int) (domain.PagedResult[domain.ErrorMessageRow], error) {
	result := domain.PagedResult[domain.ErrorMessageRow]{Content: []domain.ErrorMessageRow{}}

	count := r.filtered(filter)
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*)"+errorFrom+count.whereClause(), count.args...,
	).Scan(&result.TotalElements); err != nil {
		return result, fmt.Errorf("count error messages: %w", err)
	}

	q := r.filtered(filter)
	query := "SELECT " + errorColumns + errorFrom + q.whereClause() + " ORDER BY e.objectID"
	query += q.paginate(page, size)

	rows, err := r.query(ctx, query, q.args)
	if err != nil {
		return result, err
	}
	result.Content = rows
	return result, nil
}

// FetchIDs returns the objectID of every error message matching the filter.
func (r *SQLErrorMessageRepository) FetchIDs(ctx context.Context, filter domain.Filter) ([]string, error) {
	q := r.filtered(filter)
	return queryIDs(ctx, r.db, "SELECT e.objectID"+errorFrom+q.whereClause()+" ORDER BY e.objectID", q.args)
}

// FetchByIDs returns the error messages with the given IDs ordered by objectID.
// An empty list returns no rows without querying.
func (r *SQLErrorMessageRepository) FetchByIDs(ctx context.Context, ids []string) ([]domain.ErrorMessageRow, error) {
	out := []domain.ErrorMessageRow{}
	batches := chunks(uniqueIDs(ids), maxInParams)
	for _, batch := range batches {
		q := newQueryBuilder(r.dialect)
		q.in("e.objectID", batch)
		rows, err := r.query(ctx, "SELECT "+errorColumns+errorFrom+q.whereClause()+" ORDER BY e.objectID", q.args)
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

// StreamAll streams every error message ordered by objectID.
func (r *SQLErrorMessageRepository) StreamAll(ctx context.Context, callback func(domain.ErrorMessageRow) error) error {
	rows, err := r.db.QueryContext(ctx, "SELECT "+errorColumns+errorFrom+" ORDER BY e.objectID")
	if err != nil {
		return fmt.Errorf("query error messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		msg, err := scanErrorMessage(rows)
		if err != nil {
			return err
		}
		if err := callback(msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}
	return rows.Err()
}

func (r *SQLErrorMessageRepository) query(ctx context.Context, query string, args []any) ([]domain.ErrorMessageRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error messages: %w", err)
	}
	defer rows.Close()

	out := []domain.ErrorMessageRow{}
	for rows.Next() {
		msg, err := scanErrorMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read error messages: %w", err)
	}
	return out, nil
}

func scanErrorMessage(s rowScanner) (domain.ErrorMessageRow, error) {
	var (
		objectID, errorNo, messageID, errorType, messageObjectID sql.NullString
		text                                                     nullText
	)
	dest := append([]any{&objectID, &errorNo, &messageID, &errorType, &messageObjectID}, text.dest()...)
	if err := s.Scan(dest...); err != nil {
		return domain.ErrorMessageRow{}, fmt.Errorf("scan error message: %w", err)
	}
	return domain.ErrorMessageRow{
		ObjectID:        objectID.String,
		ErrorNo:         errorNo.String,
		ErrorType:       errorType.String,
		MessageObjectID: messageObjectID.String,
		LocalizedText:   text.localized(),
	}, nil
}

package repository

import (
	"context"

	"resource-converter/internal/domain"
)

// LabelRepository defines methods for SLocalizationLabel access.
type LabelRepository interface {
	FetchPage(ctx context.Context, filter domain.Filter, page, size int) (domain.PagedResult[domain.LabelRow], error)
	FetchIDs(ctx context.Context, filter domain.Filter) ([]string, error)
	FetchByIDs(ctx context.Context, ids []string) ([]domain.LabelRow, error)
	StreamAll(ctx context.Context, callback func(domain.LabelRow) error) error
}

// ErrorMessageRepository defines methods for SError rows joined with their
// SLocalization text.
type ErrorMessageRepository interface {
	FetchPage(ctx context.Context, filter domain.Filter, page, size int) (domain.PagedResult[domain.ErrorMessageRow], error)
	FetchIDs(ctx context.Context, filter domain.Filter) ([]string, error)
	FetchByIDs(ctx context.Context, ids []string) ([]domain.ErrorMessageRow, error)
	StreamAll(ctx context.Context, callback func(domain.ErrorMessageRow) error) error
}

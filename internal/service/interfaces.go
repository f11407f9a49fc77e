package service

import (
	"context"

	"resource-converter/internal/domain"
	"resource-converter/internal/infrastructure/database"
	"resource-converter/internal/repository"
)

// Connector opens database handles for client supplied connection settings.
type Connector interface {
	Open(ctx context.Context, cfg domain.ConnectionConfig) (*database.Conn, error)
	Test(ctx context.Context, cfg domain.ConnectionConfig) error
}

// RepositoryFactory builds repositories bound to an open connection.
type RepositoryFactory interface {
	Labels(conn *database.Conn) repository.LabelRepository
	ErrorMessages(conn *database.Conn) repository.ErrorMessageRepository
}

// LabelServiceInterface defines label operations.
// Used for dependency injection and mocking in tests.
type LabelServiceInterface interface {
	// Fetch returns one page of labels from the requested database.
	Fetch(ctx context.Context, req domain.FetchRequest) (domain.PagedResult[domain.LabelRow], error)
	// FetchIDs returns every label ID matching the filter.
	FetchIDs(ctx context.Context, req domain.IDsRequest) ([]string, error)
	// FetchByIDs returns exactly the requested labels.
	FetchByIDs(ctx context.Context, req domain.ByIDsRequest) ([]domain.LabelRow, error)
	// ListDefault returns every label of the default catalog.
	ListDefault(ctx context.Context) ([]domain.LabelRow, error)
	// RenderProperties renders labels as properties text.
	RenderProperties(ctx context.Context, req domain.LabelDownloadRequest) string
}

// ErrorMessageServiceInterface defines error message operations.
// Used for dependency injection and mocking in tests.
type ErrorMessageServiceInterface interface {
	// Fetch returns one page of error messages from the requested database.
	Fetch(ctx context.Context, req domain.FetchRequest) (domain.PagedResult[domain.ErrorMessageRow], error)
	// FetchIDs returns every error message ID matching the filter.
	FetchIDs(ctx context.Context, req domain.IDsRequest) ([]string, error)
	// FetchByIDs returns exactly the requested error messages.
	FetchByIDs(ctx context.Context, req domain.ByIDsRequest) ([]domain.ErrorMessageRow, error)
	// ListDefault returns every error message of the default catalog.
	ListDefault(ctx context.Context) ([]domain.ErrorMessageRow, error)
	// RenderXML renders error messages as an XML document.
	RenderXML(ctx context.Context, req domain.ErrorDownloadRequest) (string, error)
	// DefaultXML renders the whole default catalog as an XML document.
	DefaultXML(ctx context.Context, slot domain.Slot) (string, error)
}

// ConnectionServiceInterface defines the connection check.
type ConnectionServiceInterface interface {
	// TestConnection returns a human readable result; it never fails.
	TestConnection(ctx context.Context, cfg domain.ConnectionConfig) string
}

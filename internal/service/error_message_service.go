package service

import (
	"context"
	"strings"

	"resource-converter/internal/domain"
	"resource-converter/internal/export"
	"resource-converter/internal/infrastructure/database"
	"resource-converter/internal/metrics"
)

// ErrorMessageService serves SError rows joined with their localized text and
// renders them as XML.
type ErrorMessageService struct {
	catalog
}

// NewErrorMessageService creates a new ErrorMessageService. defaultConn may be
// nil when the server has no default catalog.
func NewErrorMessageService(connector Connector, repos RepositoryFactory, defaultConn *database.Conn, opts Options) *ErrorMessageService {
	return &ErrorMessageService{catalog: catalog{
		resource:    domain.ResourceErrorMessages,
		connector:   connector,
		repos:       repos,
		defaultConn: defaultConn,
		opts:        opts.withDefaults(),
	}}
}

// Fetch returns one page of error messages matching the request filter.
func (s *ErrorMessageService) Fetch(ctx context.Context, req domain.FetchRequest) (result domain.PagedResult[domain.ErrorMessageRow], err error) {
	timer := metrics.NewTimer()
	defer func() { s.observe(ctx, "fetch_page", req.DBType, timer, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	conn, err := s.open(ctx, req.ConnectionConfig)
	if err != nil {
		return result, err
	}

	page, size := s.bounds(req.Page, req.Size)
	result, err = s.repos.ErrorMessages(conn).FetchPage(ctx, req.Filter, page, size)
	return result, queryError("fetch error messages", err)
}

// FetchIDs returns the IDs of all error messages matching the filter, ignoring paging.
func (s *ErrorMessageService) FetchIDs(ctx context.Context, req domain.IDsRequest) (ids []string, err error) {
	timer := metrics.NewTimer()
	defer func() { s.observe(ctx, "fetch_ids", req.DBType, timer, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	conn, err := s.open(ctx, req.ConnectionConfig)
	if err != nil {
		return nil, err
	}

	ids, err = s.repos.ErrorMessages(conn).FetchIDs(ctx, req.Filter)
	return ids, queryError("fetch error message ids", err)
}

// FetchByIDs returns the error messages with the requested IDs. An empty ID
// list returns an empty result without opening a connection.
func (s *ErrorMessageService) FetchByIDs(ctx context.Context, req domain.ByIDsRequest) (rows []domain.ErrorMessageRow, err error) {
	if len(req.ObjectIDs) == 0 {
		return []domain.ErrorMessageRow{}, nil
	}

	timer := metrics.NewTimer()
	defer func() { s.observe(ctx, "fetch_by_ids", req.DBConfig.DBType, timer, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	conn, err := s.open(ctx, req.DBConfig)
	if err != nil {
		return nil, err
	}

	rows, err = s.repos.ErrorMessages(conn).FetchByIDs(ctx, req.ObjectIDs)
	return rows, queryError("fetch error messages by id", err)
}

// ListDefault returns every error message of the default catalog.
func (s *ErrorMessageService) ListDefault(ctx context.Context) (rows []domain.ErrorMessageRow, err error) {
	conn, err := s.defaultCatalog()
	if err != nil {
		return nil, err
	}

	timer := metrics.NewTimer()
	defer func() { s.observe(ctx, "list_default", conn.Dialect.Type, timer, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows = []domain.ErrorMessageRow{}
	err = s.repos.ErrorMessages(conn).StreamAll(ctx, func(r domain.ErrorMessageRow) error {
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		return nil, queryError("list default error messages", err)
	}
	return rows, nil
}

// RenderXML renders the request messages in the requested language slot,
// country1 when none is given.
func (s *ErrorMessageService) RenderXML(ctx context.Context, req domain.ErrorDownloadRequest) (string, error) {
	return s.render(req.Messages, domain.LangOrDefault(req.Lang))
}

// DefaultXML renders every error message of the default catalog.
func (s *ErrorMessageService) DefaultXML(ctx context.Context, slot domain.Slot) (string, error) {
	rows, err := s.ListDefault(ctx)
	if err != nil {
		return "", err
	}
	return s.render(rows, domain.LangOrDefault(slot))
}

func (s *ErrorMessageService) render(rows []domain.ErrorMessageRow, slot domain.Slot) (string, error) {
	timer := metrics.NewTimer()
	var sb strings.Builder
	n, err := export.WriteErrorXML(&sb, rows, slot)
	metrics.ObserveExport(string(s.resource), string(export.FormatXML), err, timer.Seconds(), n)
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

package service

import (
	"context"

	"resource-converter/internal/domain"
	"resource-converter/internal/export"
	"resource-converter/internal/infrastructure/database"
	"resource-converter/internal/metrics"
)

// LabelService serves SLocalizationLabel rows and renders them as properties.
type LabelService struct {
	catalog
}

// NewLabelService creates a new LabelService. defaultConn may be nil when the
// server has no default catalog.
func NewLabelService(connector Connector, repos RepositoryFactory, defaultConn *database.Conn, opts Options) *LabelService {
	return &LabelService{catalog: catalog{
		resource:    domain.ResourceLabels,
		connector:   connector,
		repos:       repos,
		defaultConn: defaultConn,
		opts:        opts.withDefaults(),
	}}
}

// Fetch returns one page of labels matching the request filter.
func (s *LabelService) Fetch(ctx context.Context, req domain.FetchRequest) (result domain.PagedResult[domain.LabelRow], err error) {
	timer := metrics.NewTimer()
	defer func() { s.observe(ctx, "fetch_page", req.DBType, timer, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	conn, err := s.open(ctx, req.ConnectionConfig)
	if err != nil {
		return result, err
	}

	page, size := s.bounds(req.Page, req.Size)
	result, err = s.repos.Labels(conn).FetchPage(ctx, req.Filter, page, size)
	return result, queryError("fetch labels", err)
}

// FetchIDs returns the IDs of all labels matching the filter, ignoring paging.
func (s *LabelService) FetchIDs(ctx context.Context, req domain.IDsRequest) (ids []string, err error) {
	timer := metrics.NewTimer()
	defer func() { s.observe(ctx, "fetch_ids", req.DBType, timer, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	conn, err := s.open(ctx, req.ConnectionConfig)
	if err != nil {
		return nil, err
	}

	ids, err = s.repos.Labels(conn).FetchIDs(ctx, req.Filter)
	return ids, queryError("fetch label ids", err)
}

// FetchByIDs returns the labels with the requested IDs. An empty ID list
// returns an empty result without opening a connection.
func (s *LabelService) FetchByIDs(ctx context.Context, req domain.ByIDsRequest) (rows []domain.LabelRow, err error) {
	if len(req.ObjectIDs) == 0 {
		return []domain.LabelRow{}, nil
	}

	timer := metrics.NewTimer()
	defer func() { s.observe(ctx, "fetch_by_ids", req.DBConfig.DBType, timer, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	conn, err := s.open(ctx, req.DBConfig)
	if err != nil {
		return nil, err
	}

	rows, err = s.repos.Labels(conn).FetchByIDs(ctx, req.ObjectIDs)
	return rows, queryError("fetch labels by id", err)
}

// ListDefault returns every label of the default catalog.
func (s *LabelService) ListDefault(ctx context.Context) (rows []domain.LabelRow, err error) {
	conn, err := s.defaultCatalog()
	if err != nil {
		return nil, err
	}

	timer := metrics.NewTimer()
	defer func() { s.observe(ctx, "list_default", conn.Dialect.Type, timer, err) }()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows = []domain.LabelRow{}
	err = s.repos.Labels(conn).StreamAll(ctx, func(r domain.LabelRow) error {
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		return nil, queryError("list default labels", err)
	}
	return rows, nil
}

// RenderProperties renders the request labels in the requested language slot,
// country1 when none is given.
func (s *LabelService) RenderProperties(ctx context.Context, req domain.LabelDownloadRequest) string {
	timer := metrics.NewTimer()
	text := export.Properties(req.Labels, domain.LangOrDefault(req.Lang))
	metrics.ObserveExport(string(s.resource), string(export.FormatProperties), nil, timer.Seconds(), len(req.Labels))
	return text
}

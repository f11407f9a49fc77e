package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-converter/internal/domain"
	"resource-converter/internal/repository"
)

func labelIDs(rows []domain.LabelRow) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ObjectID
	}
	return ids
}

func TestSQLLabelRepository_FetchPage(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *TestDB) {
		repo := repository.NewSQLLabelRepository(tdb.Conn)
		ctx := context.Background()

		t.Run("first page ordered by objectID", func(t *testing.T) {
			result, err := repo.FetchPage(ctx, domain.Filter{}, 0, 2)
			require.NoError(t, err)
			assert.Equal(t, int64(5), result.TotalElements)
			assert.Equal(t, []string{"BTN001", "LBL001"}, labelIDs(result.Content))
		})

		t.Run("last partial page", func(t *testing.T) {
			result, err := repo.FetchPage(ctx, domain.Filter{}, 2, 2)
			require.NoError(t, err)
			assert.Equal(t, int64(5), result.TotalElements)
			assert.Equal(t, []string{"LBL004"}, labelIDs(result.Content))
		})

		t.Run("page past the end is empty but keeps total", func(t *testing.T) {
			result, err := repo.FetchPage(ctx, domain.Filter{}, 10, 2)
			require.NoError(t, err)
			assert.Equal(t, int64(5), result.TotalElements)
			assert.NotNil(t, result.Content)
			assert.Empty(t, result.Content)
		})

		t.Run("filters combine with AND", func(t *testing.T) {
			result, err := repo.FetchPage(ctx, domain.Filter{ObjectID: "LBL", CategoryName: "comm"}, 0, 50)
			require.NoError(t, err)
			assert.Equal(t, int64(2), result.TotalElements)
			assert.Equal(t, []string{"LBL001", "LBL002"}, labelIDs(result.Content))
		})

		t.Run("message matches any language column", func(t *testing.T) {
			result, err := repo.FetchPage(ctx, domain.Filter{Message: "ファイル"}, 0, 50)
			require.NoError(t, err)
			assert.Equal(t, []string{"LBL003"}, labelIDs(result.Content))

			result, err = repo.FetchPage(ctx, domain.Filter{Message: "Good"}, 0, 50)
			require.NoError(t, err)
			assert.Equal(t, []string{"LBL002"}, labelIDs(result.Content))
		})

		t.Run("maps columns and null text", func(t *testing.T) {
			result, err := repo.FetchPage(ctx, domain.Filter{ObjectID: "BTN001"}, 0, 50)
			require.NoError(t, err)
			require.Len(t, result.Content, 1)

			row := result.Content[0]
			assert.Equal(t, "button", row.CategoryName)
			assert.Equal(t, "OK", row.Country1)
			assert.Empty(t, row.Country2)
			assert.Empty(t, row.MessageID)
		})
	})
}

func TestSQLLabelRepository_FetchIDs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *TestDB) {
		repo := repository.NewSQLLabelRepository(tdb.Conn)
		ctx := context.Background()

		ids, err := repo.FetchIDs(ctx, domain.Filter{CategoryName: "menu"})
		require.NoError(t, err)
		assert.Equal(t, []string{"LBL003", "LBL004"}, ids)

		all, err := repo.FetchIDs(ctx, domain.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 5, "IDs ignore paging")

		none, err := repo.FetchIDs(ctx, domain.Filter{ObjectID: "nope"})
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})
}

func TestSQLLabelRepository_FetchByIDs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *TestDB) {
		repo := repository.NewSQLLabelRepository(tdb.Conn)
		ctx := context.Background()

		t.Run("returns exactly the requested rows", func(t *testing.T) {
			rows, err := repo.FetchByIDs(ctx, []string{"LBL004", "BTN001", "LBL004", "missing"})
			require.NoError(t, err)
			assert.Equal(t, []string{"BTN001", "LBL004"}, labelIDs(rows))
			assert.Equal(t, "Edit", rows[1].Country1)
		})

		t.Run("empty list returns empty slice", func(t *testing.T) {
			rows, err := repo.FetchByIDs(ctx, nil)
			require.NoError(t, err)
			assert.NotNil(t, rows)
			assert.Empty(t, rows)
		})
	})
}

func TestSQLLabelRepository_StreamAll(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *TestDB) {
		repo := repository.NewSQLLabelRepository(tdb.Conn)
		ctx := context.Background()

		t.Run("streams every row in order", func(t *testing.T) {
			var ids []string
			err := repo.StreamAll(ctx, func(r domain.LabelRow) error {
				ids = append(ids, r.ObjectID)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, []string{"BTN001", "LBL001", "LBL002", "LBL003", "LBL004"}, ids)
		})

		t.Run("callback error stops the stream", func(t *testing.T) {
			calls := 0
			err := repo.StreamAll(ctx, func(r domain.LabelRow) error {
				calls++
				return errors.New("sink closed")
			})
			assert.ErrorContains(t, err, "sink closed")
			assert.Equal(t, 1, calls)
		})

		t.Run("context canceled by callback is not an error", func(t *testing.T) {
			err := repo.StreamAll(ctx, func(r domain.LabelRow) error {
				return context.Canceled
			})
			assert.NoError(t, err)
		})
	})
}

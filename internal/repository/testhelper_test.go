package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"resource-converter/internal/domain"
	"resource-converter/internal/infrastructure/database"
)

// TestDB holds a migrated catalog database and what is needed to tear it down.
type TestDB struct {
	Name      string
	Conn      *database.Conn
	Pool      *pgxpool.Pool
	Container testcontainers.Container
}

func migrationsURL() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return "file://" + filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")
}

func runMigrations(t *testing.T, databaseURL string) {
	t.Helper()
	m, err := migrate.New(migrationsURL(), databaseURL)
	if err != nil {
		t.Fatalf("Failed to create migrate instance: %v", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("Failed to run migrations: %v", err)
	}
}

// SetupSQLiteDB creates a migrated SQLite catalog in a temp file.
func SetupSQLiteDB(t *testing.T) *TestDB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	runMigrations(t, "sqlite://"+path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	return &TestDB{
		Name: "sqlite",
		Conn: &database.Conn{DB: db, Dialect: database.DialectFor(domain.DBTypeSQLite)},
	}
}

// SetupTestDB creates a PostgreSQL container and applies migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	runMigrations(t, connStr)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to ping database: %v", err)
	}

	return &TestDB{
		Name:      "postgres",
		Conn:      database.CatalogFromPool(pool),
		Pool:      pool,
		Container: pgContainer,
	}
}

// Cleanup closes the connections and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Conn != nil {
		_ = tdb.Conn.DB.Close()
	}
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// Exec runs seed statements.
func (tdb *TestDB) Exec(t *testing.T, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		if _, err := tdb.Conn.DB.ExecContext(context.Background(), stmt); err != nil {
			t.Fatalf("Failed to exec %q: %v", stmt, err)
		}
	}
}

// forEachBackend runs fn against a seeded SQLite catalog and, outside short
// mode, a seeded PostgreSQL catalog.
func forEachBackend(t *testing.T, fn func(t *testing.T, tdb *TestDB)) {
	t.Helper()

	setups := []func(*testing.T) *TestDB{SetupSQLiteDB}
	if !testing.Short() {
		setups = append(setups, SetupTestDB)
	}

	for _, setup := range setups {
		tdb := setup(t)
		seedCatalog(t, tdb)
		t.Run(tdb.Name, func(t *testing.T) { fn(t, tdb) })
		tdb.Cleanup(t)
	}
}

func seedCatalog(t *testing.T, tdb *TestDB) {
	t.Helper()
	tdb.Exec(t,
		`INSERT INTO SLocalizationLabel (objectID, categoryName, country1, country2) VALUES
			('LBL001', 'common', 'Hello', 'こんにちは'),
			('LBL002', 'common', 'Goodbye', 'さようなら'),
			('LBL003', 'menu', 'Open', 'ファイル'),
			('LBL004', 'menu', 'Edit', '編集'),
			('BTN001', 'button', 'OK', NULL)`,
		`INSERT INTO SLocalization (ObjectID, country1, country2) VALUES
			('MSG001', 'File not found', 'ファイルが見つかりません'),
			('MSG002', 'Disk almost full', 'ディスク容量が少なくなっています'),
			('MSG003', 'Saved', '保存しました')`,
		`INSERT INTO SError (objectID, errorNo, errorMessageID, errorType) VALUES
			('ERR001', '1001', 'MSG001', '1'),
			('ERR002', '1002', 'MSG002', '2'),
			('ERR003', '1003', 'MSG003', '3'),
			('ERR004', '1004', 'MSG999', '9')`,
	)
}

package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	go_ora "github.com/sijms/go-ora/v2"

	"resource-converter/internal/domain"
)

// Driver names registered by the imported database/sql drivers.
const (
	driverMySQL     = "mysql"
	driverPostgres  = "pgx"
	driverSQLServer = "sqlserver"
	driverOracle    = "oracle"
	driverSQLite    = "sqlite"
)

// DSN returns the database/sql driver name and data source name for a connection.
func DSN(cfg domain.ConnectionConfig) (string, string, error) {
	port := cfg.EffectivePort()
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(port))

	switch cfg.DBType {
	case domain.DBTypeMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.Username
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = hostPort
		mc.DBName = cfg.DBName
		mc.ParseTime = true
		mc.Loc = time.UTC
		return driverMySQL, mc.FormatDSN(), nil

	case domain.DBTypePostgreSQL:
		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.Username, cfg.Password),
			Host:   hostPort,
			Path:   "/" + cfg.DBName,
		}
		return driverPostgres, u.String(), nil

	case domain.DBTypeSQLServer:
		query := url.Values{}
		query.Set("database", cfg.DBName)
		u := &url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(cfg.Username, cfg.Password),
			Host:     hostPort,
			RawQuery: query.Encode(),
		}
		return driverSQLServer, u.String(), nil

	case domain.DBTypeOracle:
		return driverOracle, go_ora.BuildUrl(cfg.Host, port, cfg.DBName, cfg.Username, cfg.Password, nil), nil

	case domain.DBTypeSQLite:
		if strings.TrimSpace(cfg.DBName) == "" {
			return "", "", fmt.Errorf("sqlite requires a database file path")
		}
		return driverSQLite, cfg.DBName, nil
	}

	return "", "", fmt.Errorf("%w: %q", domain.ErrUnsupportedDBType, cfg.DBType)
}

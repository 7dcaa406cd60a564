// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/at-ishikawa/glossary/internal/config"
)

// Driver names as registered with database/sql.
const (
	DriverNameMySQL    = "mysql"
	DriverNamePostgres = "pgx"
	DriverNameSQLite   = "sqlite"
)

// Ports used when database.port is unset.
const (
	DefaultMySQLPort    = 3306
	DefaultPostgresPort = 5432
)

// Open opens a connection pool for the given storage driver using the provided config.
func Open(driver string, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)
	switch driver {
	case config.DriverMySQL:
		db, err = sqlx.Open(DriverNameMySQL, mysqlDSN(cfg))
	case config.DriverPostgres:
		db, err = sqlx.Open(DriverNamePostgres, postgresDSN(cfg))
	case config.DriverSQLite:
		db, err = sqlx.Open(DriverNameSQLite, cfg.SQLitePath)
		if err == nil {
			// SQLite allows a single writer; serialize through one connection.
			db.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 && driver != config.DriverSQLite {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

func mysqlDSN(cfg config.DatabaseConfig) string {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, portOrDefault(cfg.Port, DefaultMySQLPort))
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	// RowsAffected must count matched rows, not changed rows.
	mysqlCfg.ClientFoundRows = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}
	return mysqlCfg.FormatDSN()
}

func postgresDSN(cfg config.DatabaseConfig) string {
	query := url.Values{}
	if cfg.TLS {
		query.Set("sslmode", "require")
	} else {
		query.Set("sslmode", "disable")
	}
	for k, v := range cfg.Params {
		query.Set(k, v)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     cfg.Host + ":" + strconv.Itoa(portOrDefault(cfg.Port, DefaultPostgresPort)),
		Path:     "/" + cfg.Database,
		RawQuery: query.Encode(),
	}
	return u.String()
}

func portOrDefault(port, fallback int) int {
	if port == 0 {
		return fallback
	}
	return port
}

// Ping verifies the connection, retrying with backoff up to attempts times.
func Ping(ctx context.Context, db *sqlx.DB, attempts uint) error {
	if attempts == 0 {
		attempts = 1
	}
	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(200*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		return fmt.Errorf("db.PingContext() > %w", err)
	}
	return nil
}

// RunInTx runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise, it is committed.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

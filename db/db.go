package db

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/cardb/mcp-server/config"
)

// connectFunc is swapped out by SetForTesting so tests can hand back
// sqlmock connections instead of dialing MySQL.
var connectFunc func() (*sql.DB, error)

// Connect opens a fresh connection to the car database and verifies it with
// a ping. Callers own the connection and must close it; there is no pooling
// or reuse across calls.
func Connect() (*sql.DB, error) {
	if connectFunc != nil {
		return connectFunc()
	}

	cfg := config.Load()
	conn, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connect to database %s/%s: %w", cfg.DBHost, cfg.DBName, err)
	}
	return conn, nil
}

// dsn renders the MySQL DSN. utf8mb4 keeps multibyte listing data intact.
func dsn(cfg config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:3306)/%s?charset=utf8mb4&parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBName)
}

// SetForTesting installs a connection factory for tests. Pass nil to restore
// the real MySQL connector.
func SetForTesting(fn func() (*sql.DB, error)) {
	connectFunc = fn
}

package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor - методы *sql.DB, которыми пользуются репозитории
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB que os repositórios usam, para permitir
// a troca por uma transação ou um fake em testes.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

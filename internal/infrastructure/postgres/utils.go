package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// queryError envuelve err con la operación y, si viene de PostgreSQL, con su SQLSTATE.
// Un deadline vencido se reporta como timeout para distinguirlo de un error del servidor.
func queryError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: timeout: %w", op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s [%s]: %w", op, pgErr.Code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// isAbsent indica que la fila no existe. Un id que no es UUID válido (22P02) tampoco puede existir.
func isAbsent(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || isMalformedID(err)
}

func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.InvalidTextRepresentation
	}
	return false
}

// execBatch encola una sentencia por fila y devuelve cuántas filas se insertaron realmente.
// Las sentencias deben llevar ON CONFLICT DO NOTHING para omitir duplicados.
func execBatch(ctx context.Context, q Querier, b *pgx.Batch, label string) (int, error) {
	if b.Len() == 0 {
		return 0, nil
	}
	br := q.SendBatch(ctx, b)
	defer br.Close()

	total := 0
	for i := 0; i < b.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			return total, fmt.Errorf("batch %s (fila %d): %w", label, i, err)
		}
		total += int(tag.RowsAffected())
	}
	return total, nil
}

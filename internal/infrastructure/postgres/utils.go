package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de PostgreSQL para violación de constraint UNIQUE.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si err proviene de un constraint único
// (email ya registrado, postulación repetida sobre la misma oferta).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// Package repository executes the statements produced by the query builders
// against Postgres and maps rows onto the model types. Storage errors never
// leave this package raw; they are translated into the apperr taxonomy at
// the boundary.
package repository

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a violated unique
// constraint (class 23, code 23505).
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation.
// The register path races its existence pre-check against concurrent
// registrations, so callers must treat this exactly like "already exists".
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

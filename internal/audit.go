package internal

import (
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// logAction records a write-side audit row. Failures are logged, never
// surfaced: the audit trail must not break the request that produced it.
func logAction(db *sqlx.DB, actor, action, details string) {
	_, err := db.Exec(
		"INSERT INTO audit_log(actor, action, details) VALUES ($1,$2,$3)",
		actor, action, details,
	)
	if err != nil {
		log.Warn().Err(err).Str("action", action).Msg("audit insert failed")
	}
}

package postgres

import (
	"database/sql"

	_ "github.com/lib/pq" // postgres driver
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS shares
(
    id         VARCHAR(32) PRIMARY KEY,
    path       TEXT        NOT NULL,
    password   TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    expires_at BIGINT      NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS shares_expires_idx ON shares (expires_at);
`

// NewDb opens a postgres connection for the share store and makes sure the
// schema exists. The schema is idempotent, so concurrent instances can run
// it safely.
func NewDb(connStr string) *sql.DB {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal().Err(err).Str("c", "postgres").Msg("could not open postgres connection")
	}
	// Shares are small rows; a modest pool is plenty.
	db.SetMaxOpenConns(25)
	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Str("c", "postgres").Msg("ping failed")
	}
	if _, err = db.Exec(schema); err != nil {
		log.Fatal().Err(err).Str("c", "postgres").Msg("failed to create shares schema")
	}
	return db
}

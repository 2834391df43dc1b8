package dbmanager

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
)

type Pool interface {
	// Conn returns a new connection to the database.
	// Returns a PooledConn and an error, if any.
	Conn(ctx context.Context) (PooledConn, error)
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
}

type PooledConn interface {
	// Conn returns the underlying *sql.Conn. Do not close this directly.
	// Use PooledConn.Close(ctx) so the pool's accounting stays correct.
	Conn() *sql.Conn
	// Close returns the connection back to the pool.
	Close(ctx context.Context)
}

// NewPool returns a managed connection pool for the given database type. Each
// connection carries conservative session timeouts so a stuck statement
// cannot hold a request open indefinitely. The connection is not concurrency
// safe and must be used from a single goroutine; the intake server uses one
// connection per request and does not spawn further goroutines on it.
func NewPool(ctx context.Context, dbtype string) Pool {
	switch dbtype {
	case "postgresql":
		db, err := NewPostgresqlDb()
		if err != nil || db == nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create PostgreSQL DB")
			return nil
		}
		return db
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"devevents/internal/domain"

	_ "github.com/lib/pq"
	"golang.org/x/sync/singleflight"
)

const defaultConnectTimeout = 10 * time.Second

// DialFunc establishes a database connection for the given DSN. The returned
// handle must be ready for use (dialing includes the liveness check).
type DialFunc func(ctx context.Context, dsn string) (*sql.DB, error)

// Manager owns the single shared database connection for the process. The
// connection is established lazily on first use; concurrent callers of Conn
// share one in-flight attempt, a successful attempt is cached for the process
// lifetime, and a failed attempt is cleared so the next call retries fresh.
type Manager struct {
	dsn            string
	logger         *slog.Logger
	dial           DialFunc
	connectTimeout time.Duration

	mu    sync.RWMutex
	db    *sql.DB
	group singleflight.Group
}

// Option configures a Manager.
type Option func(*Manager)

// WithDial overrides how the connection is established.
func WithDial(dial DialFunc) Option {
	return func(m *Manager) { m.dial = dial }
}

// WithConnectTimeout bounds each connection attempt.
func WithConnectTimeout(d time.Duration) Option {
	return func(m *Manager) { m.connectTimeout = d }
}

// NewManager returns a Manager for the given DSN. No connection is made until
// the first call to Conn.
func NewManager(dsn string, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		dsn:            dsn,
		logger:         logger,
		dial:           dialPostgres,
		connectTimeout: defaultConnectTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewManagerWithDB wraps an already-established connection. Used by tests and
// by callers that connect eagerly at startup.
func NewManagerWithDB(db *sql.DB) *Manager {
	return &Manager{
		logger:         slog.Default(),
		dial:           dialPostgres,
		connectTimeout: defaultConnectTimeout,
		db:             db,
	}
}

// dialPostgres opens a postgres connection and verifies it with a ping, so
// operations issued against a dead connection fail immediately instead of
// queueing.
func dialPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Conn returns the shared connection, establishing it on first use. A cached
// connection is returned without any I/O. While an attempt is in flight every
// caller awaits the same result; the attempt is not cached on failure.
func (m *Manager) Conn(ctx context.Context) (*sql.DB, error) {
	m.mu.RLock()
	db := m.db
	m.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	ch := m.group.DoChan("connect", func() (any, error) {
		dialCtx, cancel := context.WithTimeout(context.Background(), m.connectTimeout)
		defer cancel()
		db, err := m.dial(dialCtx, m.dsn)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
		}
		m.mu.Lock()
		m.db = db
		m.mu.Unlock()
		m.logger.Info("database connection established")
		return db, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*sql.DB), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, ctx.Err())
	}
}

// Reset closes and discards the cached connection so the next Conn call
// re-establishes it.
func (m *Manager) Reset() {
	m.mu.Lock()
	db := m.db
	m.db = nil
	m.mu.Unlock()
	if db != nil {
		db.Close()
	}
}

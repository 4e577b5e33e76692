package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/skyharvest/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// DefaultDSN points to the shared storage file, created on first use
const DefaultDSN = "file:space_data.db?mode=rwc&_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// executor is satisfied by both *sqlx.DB and *sqlx.Tx
type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repositories contains all repository instances.
// Repositories returned by InTransaction are bound to the transaction and have nil DB.
type Repositories struct {
	Picture  *PictureRepository
	Asteroid *AsteroidRepository
	DB       *sqlx.DB
}

// NewRepositories opens the store, applies pragmas and makes sure the schema exists.
// Any failure here is fatal for the invocation.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = DefaultDSN
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return newRepositories(db), nil
}

func newRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Picture:  NewPictureRepository(db),
		Asteroid: NewAsteroidRepository(db),
		DB:       db,
	}
}

// Close closes the database connection
func (r *Repositories) Close() error {
	if r.DB == nil {
		return nil
	}
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// InTransaction runs fn with repositories bound to a single transaction.
// The transaction is rolled back if fn returns an error and committed otherwise.
func (r *Repositories) InTransaction(ctx context.Context, fn func(tx *Repositories) error) error {
	if r.DB == nil {
		return errors.New("nested transactions are not supported")
	}

	// only lock errors are retried, anything else is returned as is
	var tx *sqlx.Tx
	var beginErr error
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		tx, beginErr = r.DB.BeginTxx(ctx, nil)
		if beginErr != nil && isLockError(beginErr) {
			return beginErr
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if beginErr != nil {
		return fmt.Errorf("begin transaction: %w", beginErr)
	}

	txRepos := &Repositories{
		Picture:  NewPictureRepository(tx),
		Asteroid: NewAsteroidRepository(tx),
	}

	if err := fn(txRepos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %w (rollback also failed: %s)", err, rbErr.Error())
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Totals returns row counts of all harvested tables
func (r *Repositories) Totals(ctx context.Context) (domain.Totals, error) {
	var res domain.Totals
	var err error
	if res.Pictures, err = r.Picture.CountPictures(ctx); err != nil {
		return domain.Totals{}, err
	}
	if res.Asteroids, err = r.Asteroid.CountAsteroids(ctx); err != nil {
		return domain.Totals{}, err
	}
	if res.Approaches, err = r.Asteroid.CountApproaches(ctx); err != nil {
		return domain.Totals{}, err
	}
	return res, nil
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	return nil
}

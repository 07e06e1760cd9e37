// Package sqlstore implements ncnews.Store on top of sqlx, for postgres (lib/pq
// or pgx) and sqlite (modernc) databases.
package sqlstore

import (
	"context"
	"fmt"

	ncnews "github.com/DTCoding01/be-nc-news"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

var _ ncnews.Store = (*Store)(nil)

// A Store is responsible of interacting with the storage layer using a sql database.
type Store struct {
	driver string
	dsn    string
	db     *sqlx.DB
}

// New returns a Store configured for a given driver and data source name, such as
// "user=postgres dbname=nc_news ..." for postgres or "file::memory:" for sqlite.
func New(driver string, dsn string) *Store {
	return &Store{
		driver: driver,
		dsn:    dsn,
	}
}

// Connect establish a connection with the database using the address given at initialization.
func (s *Store) Connect() error {
	switch s.driver {
	case DriverPostgres, DriverPgx, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", s.driver)
	}

	db, err := sqlx.Connect(s.driver, s.dsn)
	if err != nil {
		return err
	}

	if s.driver == DriverSQLite {
		// An in-memory database only lives as long as its connection.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return err
		}
	}

	s.db = db

	return nil
}

// DB returns the existing connection, making it suitable to perform requests not already supported by
// the store interface. If called while not connected, it will return nil.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Driver returns the name of the database driver in use.
func (s *Store) Driver() string {
	return s.driver
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the tables if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, s.schema())
	return err
}

// Reset drops every table and creates them again.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, dropSchema); err != nil {
		return err
	}
	return s.Migrate(ctx)
}

func (s *Store) schema() string {
	if s.driver == DriverSQLite {
		return sqliteSchema
	}
	return postgresSchema
}

func (s *Store) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return classify(s.db.GetContext(ctx, dest, s.db.Rebind(query), args...))
}

func (s *Store) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return classify(s.db.SelectContext(ctx, dest, s.db.Rebind(query), args...))
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	return classify(err)
}

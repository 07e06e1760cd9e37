package sqlstore

import (
	"errors"

	ncnews "github.com/DTCoding01/be-nc-news"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
var pgClasses = map[string]ncnews.StorageClass{
	"22P02": ncnews.ClassInvalidText,
	"23503": ncnews.ClassForeignKey,
	"23505": ncnews.ClassUnique,
}

// sqlite extended result codes.
var sqliteClasses = map[int]ncnews.StorageClass{
	sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY: ncnews.ClassForeignKey,
	sqlite3.SQLITE_CONSTRAINT_UNIQUE:     ncnews.ClassUnique,
	sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY: ncnews.ClassUnique,
}

// classify wraps driver errors whose code is known into an *ncnews.StorageError.
// Other errors, sql.ErrNoRows included, are returned untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}

	class := ncnews.ClassUnknown

	var pqErr *pq.Error
	var pgErr *pgconn.PgError
	var liteErr *sqlite.Error
	switch {
	case errors.As(err, &pqErr):
		class = pgClasses[string(pqErr.Code)]
	case errors.As(err, &pgErr):
		class = pgClasses[pgErr.Code]
	case errors.As(err, &liteErr):
		class = sqliteClasses[liteErr.Code()]
	}

	if class == ncnews.ClassUnknown {
		return err
	}

	return &ncnews.StorageError{Class: class, Err: err}
}

package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	ncnews "github.com/DTCoding01/be-nc-news"
	qt "github.com/frankban/quicktest"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestClassify(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name  string
		err   error
		class ncnews.StorageClass
	}{
		{"pq invalid text", &pq.Error{Code: "22P02"}, ncnews.ClassInvalidText},
		{"pq foreign key", &pq.Error{Code: "23503"}, ncnews.ClassForeignKey},
		{"pq unique", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), ncnews.ClassUnique},
		{"pgx foreign key", &pgconn.PgError{Code: "23503"}, ncnews.ClassForeignKey},
		{"pgx unique", &pgconn.PgError{Code: "23505"}, ncnews.ClassUnique},
	}

	for _, test := range tests {
		test := test
		c.Run(test.name, func(c *qt.C) {
			var se *ncnews.StorageError
			c.Assert(errors.As(classify(test.err), &se), qt.IsTrue)
			c.Assert(se.Class, qt.Equals, test.class)
			c.Assert(errors.Is(se, test.err), qt.IsTrue)
		})
	}

	c.Run("unknown codes are left untouched", func(c *qt.C) {
		err := &pq.Error{Code: "42P01"}
		c.Assert(classify(err), qt.Equals, error(err))
	})

	c.Run("no rows is left untouched", func(c *qt.C) {
		c.Assert(classify(sql.ErrNoRows), qt.Equals, sql.ErrNoRows)
		c.Assert(classify(nil), qt.IsNil)
	})
}

package cmd

import (
	"os"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestConfigLoad(t *testing.T) {
	c := qt.New(t)

	// Load reads config.json from the working directory.
	dir := c.TempDir()
	wd, err := os.Getwd()
	c.Assert(err, qt.IsNil)
	c.Assert(os.Chdir(dir), qt.IsNil)
	c.Cleanup(func() { os.Chdir(wd) })

	c.Run("defaults", func(c *qt.C) {
		cfg := DefaultConfig()
		c.Assert(cfg.Load(), qt.IsNil)
		c.Assert(cfg.DatabaseDriver, qt.Equals, "postgres")
		c.Assert(cfg.DSN(), qt.Equals, "user=postgres dbname=nc_news sslmode=disable password=postgres host=127.0.0.1")
	})

	c.Run("environment overrides the file", func(c *qt.C) {
		err := os.WriteFile("config.json", []byte(`{"database_name": "from_file", "addr": ":1234"}`), 0o600)
		c.Assert(err, qt.IsNil)
		c.Cleanup(func() { os.Remove("config.json") })
		c.Setenv("DATABASE_NAME", "from_env")

		cfg := DefaultConfig()
		c.Assert(cfg.Load(), qt.IsNil)
		c.Assert(cfg.DatabaseName, qt.Equals, "from_env")
		c.Assert(cfg.Addr, qt.Equals, ":1234")
	})

	c.Run("explicit dsn", func(c *qt.C) {
		c.Setenv("DATABASE_DRIVER", "sqlite")
		c.Setenv("DATABASE_DSN", "file:nc_news.db")

		cfg := DefaultConfig()
		c.Assert(cfg.Load(), qt.IsNil)
		c.Assert(cfg.DSN(), qt.Equals, "file:nc_news.db")
	})

	c.Run("sqlite requires a dsn", func(c *qt.C) {
		c.Setenv("DATABASE_DRIVER", "sqlite")

		cfg := DefaultConfig()
		c.Assert(cfg.Load(), qt.ErrorMatches, "missing config 'database dsn'.*")
	})

	c.Run("unknown driver", func(c *qt.C) {
		c.Setenv("DATABASE_DRIVER", "mysql")

		cfg := DefaultConfig()
		c.Assert(cfg.Load(), qt.ErrorMatches, `unknown database driver "mysql"`)
	})
}

package storage

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/AaronLay10/SaiScope/internal/config"
)

// Dialect names a supported database/sql driver.
type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect accepts the driver names used in saiscope.yaml.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case MySQL, Postgres, SQLite:
		return d, nil
	case "", "mariadb":
		return MySQL, nil
	case "postgresql", "pq":
		return Postgres, nil
	case "sqlite3":
		return SQLite, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", s)
}

// Rebind rewrites ? placeholders into the dialect's bind syntax.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// DSN builds the driver connection string for db.
func (d Dialect) DSN(db config.Database) string {
	switch d {
	case Postgres:
		parts := []string{
			"host=" + pqQuote(db.HostName()),
			"port=" + strconv.Itoa(db.PortNumber()),
			"user=" + pqQuote(db.UserName()),
			"dbname=" + pqQuote(db.DatabaseName()),
			"sslmode=disable",
		}
		if db.Password != "" {
			parts = append(parts, "password="+pqQuote(db.Password))
		}
		return strings.Join(parts, " ")
	case SQLite:
		if db.Path != "" {
			return db.Path
		}
		return db.DatabaseName()
	}

	cfg := mysql.NewConfig()
	cfg.User = db.UserName()
	cfg.Passwd = db.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(db.HostName(), strconv.Itoa(db.PortNumber()))
	cfg.DBName = db.DatabaseName()
	cfg.Timeout = db.ConnectTimeout()
	return cfg.FormatDSN()
}

// pqQuote quotes a keyword/value connection parameter when needed.
func pqQuote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

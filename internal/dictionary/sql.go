// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/toeirei/caesar/internal/logging"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// parseDatabaseSource maps a source URL onto a database/sql driver name and
// the DSN that driver expects.
func parseDatabaseSource(src string) (driver, dsn string, ok bool) {
	switch {
	case strings.HasPrefix(src, "sqlite://"):
		return "sqlite", strings.TrimPrefix(src, "sqlite://"), true
	case strings.HasPrefix(src, "postgres://"), strings.HasPrefix(src, "postgresql://"):
		return "pgx", src, true
	case strings.HasPrefix(src, "mysql://"):
		return "mysql", strings.TrimPrefix(src, "mysql://"), true
	}
	return "", "", false
}

// createBunDB wraps sqlDB with the dialect matching driver.
func createBunDB(sqlDB *sql.DB, driver string) *bun.DB {
	switch driver {
	case "pgx":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

func loadDatabase(ctx context.Context, driver, dsn, table, column string) (*WordSet, error) {
	if !identRe.MatchString(table) || !identRe.MatchString(column) {
		return nil, fmt.Errorf("invalid table or column name %q.%q", table, column)
	}

	start := time.Now()
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	db := createBunDB(sqlDB, driver)
	defer func() { _ = db.Close() }()

	var words []string
	err = db.NewSelect().
		Table(table).
		Column(column).
		Scan(ctx, &words)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s.%s: %w", table, column, err)
	}
	logging.Debugf("dictionary: read %d rows from %s in %s", len(words), driver, time.Since(start))
	return New(words...), nil
}

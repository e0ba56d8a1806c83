package database

import (
	"context"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/trezcool/masomo-desk/core"
)

// sqlDriver maps a configured engine to its database/sql driver name.
var sqlDriver = map[string]string{
	core.EngineSQLite:   "sqlite",
	core.EnginePostgres: "postgres",
}

func dataSourceName(conf *core.Config) (string, error) {
	switch conf.Database.Engine {
	case core.EngineSQLite:
		if conf.Database.Path == "" {
			return "", errors.New("empty database path")
		}
		q := make(url.Values)
		q.Add("_pragma", "foreign_keys(1)")
		q.Add("_pragma", "busy_timeout(5000)")
		return "file:" + conf.Database.Path + "?" + q.Encode(), nil
	case core.EnginePostgres:
		if conf.Database.URL == "" {
			return "", errors.New("empty database url")
		}
		return conf.Database.URL, nil
	default:
		return "", errors.Errorf("unsupported database engine %q", conf.Database.Engine)
	}
}

// Open connects to the configured store. The returned DB holds a single connection for the process lifetime.
// Any failure is reported as core.ErrStoreUnavailable.
func Open(conf *core.Config) (*sqlx.DB, error) {
	dsn, err := dataSourceName(conf)
	if err != nil {
		return nil, errors.Wrapf(core.ErrStoreUnavailable, "%v", err)
	}

	db, err := sqlx.Open(sqlDriver[conf.Database.Engine], dsn)
	if err != nil {
		return nil, errors.Wrapf(core.ErrStoreUnavailable, "opening database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(core.ErrStoreUnavailable, "pinging database: %v", err)
	}
	return db, nil
}

// Initialize creates all tables that do not exist yet. It is safe to call on every startup.
func Initialize(ctx context.Context, db *sqlx.DB) error {
	stmts, err := schemaFor(db.DriverName())
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning schema transaction")
	}
	for _, stmt := range stmts {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return errors.Wrap(err, "creating tables")
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing schema")
	}
	return nil
}

// Tables lists the application tables present in the store, in schema order.
func Tables(ctx context.Context, db *sqlx.DB) ([]string, error) {
	var q string
	switch db.DriverName() {
	case "sqlite":
		q = `SELECT name FROM sqlite_master WHERE type = 'table'`
	case "postgres":
		q = `SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema()`
	default:
		return nil, errors.Errorf("unsupported driver %q", db.DriverName())
	}

	var names []string
	if err := db.SelectContext(ctx, &names, q); err != nil {
		return nil, errors.Wrap(err, "listing tables")
	}
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	tables := make([]string, 0, len(TableNames))
	for _, t := range TableNames {
		if present[t] {
			tables = append(tables, t)
		}
	}
	return tables, nil
}

package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-desk/core"
)

func sqliteConf(path string) *core.Config {
	conf := &core.Config{}
	conf.Database.Engine = core.EngineSQLite
	conf.Database.Path = path
	return conf
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		conf    func(t *testing.T) *core.Config
		wantErr bool
	}{
		{name: "sqlite file", conf: func(t *testing.T) *core.Config { return sqliteConf(filepath.Join(t.TempDir(), "app.db")) }},
		{name: "empty path", conf: func(t *testing.T) *core.Config { return sqliteConf("") }, wantErr: true},
		{
			name:    "missing directory",
			conf:    func(t *testing.T) *core.Config { return sqliteConf(filepath.Join(t.TempDir(), "nope", "app.db")) },
			wantErr: true,
		},
		{
			name: "postgres without url",
			conf: func(t *testing.T) *core.Config {
				conf := &core.Config{}
				conf.Database.Engine = core.EnginePostgres
				return conf
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Open(tt.conf(t))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, core.ErrStoreUnavailable, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.NoError(t, db.Close())
		})
	}
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	db, err := Open(sqliteConf(filepath.Join(t.TempDir(), "app.db")))
	require.NoError(t, err)
	defer db.Close()

	tables, err := Tables(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, tables)

	require.NoError(t, Initialize(ctx, db))
	_, err = db.ExecContext(ctx, `INSERT INTO users (username, password, name, email) VALUES ('amy', 'x', 'Amy', 'amy@test.cd')`)
	require.NoError(t, err)

	// running it again changes nothing
	require.NoError(t, Initialize(ctx, db))
	tables, err = Tables(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, TableNames, tables)

	var role string
	require.NoError(t, db.GetContext(ctx, &role, `SELECT role FROM users WHERE username = 'amy'`))
	assert.Equal(t, "student", role)
}

func TestSchemaFor(t *testing.T) {
	stmts, err := schemaFor("postgres")
	require.NoError(t, err)
	require.Len(t, stmts, len(TableNames))
	assert.Contains(t, stmts[0], "id SERIAL PRIMARY KEY")

	_, err = schemaFor("mysql")
	assert.Error(t, err)
}

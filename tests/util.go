package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/user"
	"github.com/trezcool/masomo-desk/storage/database"
)

// OpenDB opens an initialized sqlite store in a temporary directory. It is closed when the test ends.
func OpenDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conf := &core.Config{}
	conf.Database.Engine = core.EngineSQLite
	conf.Database.Path = filepath.Join(t.TempDir(), "test.db")

	db, err := database.Open(conf)
	if err != nil {
		t.Fatalf("database.Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Initialize(context.Background(), db); err != nil {
		t.Fatalf("database.Initialize() failed: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, repo user.Repository, name, uname, email, pwd, role string) user.User {
	t.Helper()
	usr, err := repo.CreateUser(context.Background(), user.User{
		Username: uname,
		Password: pwd,
		Name:     name,
		Email:    email,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

// Logger records the messages it is given.
type Logger struct {
	mu   sync.Mutex
	msgs []string
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	line := level + ": " + msg
	for _, arg := range args {
		if err, ok := arg.(error); ok {
			line += fmt.Sprintf(" (%v)", err)
		}
	}
	l.msgs = append(l.msgs, line)
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args) }

func (l *Logger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs...)
}

// Contains reports whether a recorded message contains substr.
func (l *Logger) Contains(substr string) bool {
	for _, m := range l.Messages() {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

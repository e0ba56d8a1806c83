package sqlxrepos

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/user"
)

// postgres error codes
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// constraintKind classifies err as a unique ("unique") or foreign key ("fk") violation and returns the column
// involved when known.
func constraintKind(err error) (kind, column string) {
	if pqErr, ok := errors.Cause(err).(*pq.Error); ok {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			// default constraint names: <table>_<column>_key
			name := strings.TrimSuffix(pqErr.Constraint, "_key")
			if i := strings.Index(name, "_"); i >= 0 {
				name = name[i+1:]
			}
			return "unique", name
		case pqForeignKeyViolation:
			return "fk", "user_id"
		}
		return "", ""
	}

	// sqlite: "UNIQUE constraint failed: users.username", "FOREIGN KEY constraint failed"
	msg := errors.Cause(err).Error()
	if i := strings.Index(msg, "UNIQUE constraint failed: "); i >= 0 {
		col := msg[i+len("UNIQUE constraint failed: "):]
		if j := strings.IndexAny(col, " ,"); j >= 0 {
			col = col[:j]
		}
		if k := strings.Index(col, "."); k >= 0 {
			col = col[k+1:]
		}
		return "unique", col
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return "fk", "user_id"
	}
	return "", ""
}

// trapUserErr maps store errors of a users write to the user package errors.
func trapUserErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return user.ErrNotFound
	}
	if kind, col := constraintKind(err); kind == "unique" {
		switch col {
		case "username":
			return user.ErrUsernameExists
		case "email":
			return user.ErrEmailExists
		}
	}
	return errors.Wrap(err, msg)
}

// trapRecordErr maps foreign key violations of a user-scoped insert to school.ErrUnknownUser.
func trapRecordErr(err error, msg string) error {
	if kind, _ := constraintKind(err); kind == "fk" {
		return school.ErrUnknownUser
	}
	return errors.Wrap(err, msg)
}

package panel

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/session"
)

type Level int

// Ack levels
const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return "error"
	}
}

// Ack is the blocking acknowledgment shown after a form submission.
type Ack struct {
	Level   Level
	Title   string
	Message string
}

func (a Ack) OK() bool { return a.Level == Info }

// Silent reports whether there is nothing to show.
func (a Ack) Silent() bool { return a.Message == "" }

func Success(msg string) Ack { return Ack{Level: Info, Title: "Success", Message: msg} }

func InputError(msg string) Ack { return Ack{Level: Warning, Title: "Input Error", Message: msg} }

func Failure(msg string) Ack { return Ack{Level: Error, Title: "Error", Message: msg} }

// AllFieldsRequired is the message shown when a form has blank fields.
const AllFieldsRequired = "All fields are required."

var errPermissionDenied = errors.New("permission denied")

// AckFor maps an error of the taxonomy to its acknowledgment. failed is the message for store failures.
func AckFor(err error, failed string) Ack {
	switch origErr := errors.Cause(err).(type) {
	case *core.ValidationError:
		msgs := make([]string, 0, len(origErr.Fields))
		for _, fld := range origErr.Fields {
			if fld.Error == core.RequiredText {
				return InputError(AllFieldsRequired)
			}
			msgs = append(msgs, fld.Field+": "+fld.Error)
		}
		if len(msgs) == 0 {
			return InputError(origErr.Error())
		}
		return InputError(strings.Join(msgs, "\n"))
	case *core.ConstraintError:
		return Ack{Level: Warning, Title: "Error", Message: constraintMessage(origErr)}
	}

	switch errors.Cause(err) {
	case core.ErrAuthFailure:
		return Failure("Invalid username or password.")
	case session.ErrNoSession:
		return Failure("You must be logged in.")
	case errPermissionDenied:
		return Failure("You are not allowed to do this.")
	}
	return Failure(failed)
}

func constraintMessage(err *core.ConstraintError) string {
	switch err.Field {
	case "student_id", "user_id":
		return "No student with this ID."
	case "username":
		return "This username is already taken."
	case "email":
		return "This email is already registered."
	default:
		return err.Error()
	}
}

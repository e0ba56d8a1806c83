package school

import (
	"strconv"

	"github.com/trezcool/masomo-desk/core"
)

// Statuses
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusPending = "Pending"
)

type Attendance struct {
	ID     int    `json:"id" db:"id"`
	UserID int    `json:"user_id" db:"user_id"`
	Date   string `json:"date" db:"date"`
	Status string `json:"status" db:"status"`
}

type Mark struct {
	ID       int    `json:"id" db:"id"`
	UserID   int    `json:"user_id" db:"user_id"`
	Semester int    `json:"semester" db:"semester"`
	Subject  string `json:"subject" db:"subject"`
	Marks    int    `json:"marks" db:"marks"`
}

// Assignment is also the shape of a project.
type Assignment struct {
	ID          int    `json:"id" db:"id"`
	UserID      int    `json:"user_id" db:"user_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Deadline    string `json:"deadline" db:"deadline"`
	Status      string `json:"status" db:"status"`
}

type Project Assignment

type Notification struct {
	ID      int    `json:"id" db:"id"`
	UserID  int    `json:"user_id" db:"user_id"`
	Message string `json:"message" db:"message"`
	Date    string `json:"date" db:"date"`
}

type Event struct {
	ID          int    `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Date        string `json:"date" db:"date"`
}

// Forms hold the values as typed by a teacher; Validate cleans and converts them.

type NewAttendance struct {
	StudentID string `json:"student_id" validate:"notblank"`
	Date      string `json:"date" validate:"notblank"`
	Status    string `json:"status" validate:"notblank,oneof=Present Absent"`
}

func (na *NewAttendance) Validate() (Attendance, error) {
	na.StudentID = core.CleanString(na.StudentID)
	na.Date = core.CleanString(na.Date)
	na.Status = core.CleanString(na.Status)

	if err := core.Validate.Struct(na); err != nil {
		return Attendance{}, core.Validation(err)
	}
	uid, err := parseInt("student_id", na.StudentID)
	if err != nil {
		return Attendance{}, err
	}
	return Attendance{UserID: uid, Date: na.Date, Status: na.Status}, nil
}

type NewMark struct {
	StudentID string `json:"student_id" validate:"notblank"`
	Semester  string `json:"semester" validate:"notblank"`
	Subject   string `json:"subject" validate:"notblank"`
	Marks     string `json:"marks" validate:"notblank"`
}

func (nm *NewMark) Validate() (Mark, error) {
	nm.StudentID = core.CleanString(nm.StudentID)
	nm.Semester = core.CleanString(nm.Semester)
	nm.Subject = core.CleanString(nm.Subject)
	nm.Marks = core.CleanString(nm.Marks)

	if err := core.Validate.Struct(nm); err != nil {
		return Mark{}, core.Validation(err)
	}
	mark := Mark{Subject: nm.Subject}
	var err error
	if mark.UserID, err = parseInt("student_id", nm.StudentID); err != nil {
		return Mark{}, err
	}
	if mark.Semester, err = parseInt("semester", nm.Semester); err != nil {
		return Mark{}, err
	}
	if mark.Marks, err = parseInt("marks", nm.Marks); err != nil {
		return Mark{}, err
	}
	return mark, nil
}

// NewAssignment is used for both assignments and projects.
type NewAssignment struct {
	StudentID   string `json:"student_id" validate:"notblank"`
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Deadline    string `json:"deadline" validate:"notblank"`
}

func (na *NewAssignment) Validate() (Assignment, error) {
	na.StudentID = core.CleanString(na.StudentID)
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.Deadline = core.CleanString(na.Deadline)

	if err := core.Validate.Struct(na); err != nil {
		return Assignment{}, core.Validation(err)
	}
	uid, err := parseInt("student_id", na.StudentID)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{
		UserID:      uid,
		Title:       na.Title,
		Description: na.Description,
		Deadline:    na.Deadline,
		Status:      StatusPending,
	}, nil
}

type NewNotification struct {
	UserID  int    `json:"user_id" validate:"gt=0"`
	Message string `json:"message" validate:"notblank"`
	Date    string `json:"date" validate:"notblank"`
}

func (nn *NewNotification) Validate() error {
	nn.Message = core.CleanString(nn.Message)
	nn.Date = core.CleanString(nn.Date)
	return core.Validation(core.Validate.Struct(nn))
}

type NewEvent struct {
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Date        string `json:"date" validate:"notblank"`
}

func (ne *NewEvent) Validate() error {
	ne.Title = core.CleanString(ne.Title)
	ne.Description = core.CleanString(ne.Description)
	ne.Date = core.CleanString(ne.Date)
	return core.Validation(core.Validate.Struct(ne))
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, core.NewValidationError(nil, core.FieldError{Field: field, Error: "must be a whole number"})
	}
	return n, nil
}

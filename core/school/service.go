package school

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core"
)

// ErrUnknownUser is returned by a Repository when a record references a user that does not exist.
var ErrUnknownUser = errors.New("no user with this id")

type (
	Repository interface {
		InsertAttendance(ctx context.Context, rec Attendance) (Attendance, error)
		InsertMark(ctx context.Context, rec Mark) (Mark, error)
		InsertAssignment(ctx context.Context, rec Assignment) (Assignment, error)
		InsertProject(ctx context.Context, rec Project) (Project, error)
		InsertNotification(ctx context.Context, rec Notification) (Notification, error)
		InsertEvent(ctx context.Context, rec Event) (Event, error)

		ListAttendance(ctx context.Context, userID int) ([]Attendance, error)
		ListMarks(ctx context.Context, userID int) ([]Mark, error)
		ListAssignments(ctx context.Context, userID int) ([]Assignment, error)
		ListAllAssignments(ctx context.Context) ([]Assignment, error)
		ListProjects(ctx context.Context, userID int) ([]Project, error)
		ListAllProjects(ctx context.Context) ([]Project, error)
		ListNotifications(ctx context.Context, userID int) ([]Notification, error)
		ListEvents(ctx context.Context) ([]Event, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// unknownUserErr maps ErrUnknownUser to a core.ConstraintError on field.
func unknownUserErr(err error, field string) error {
	if errors.Cause(err) == ErrUnknownUser {
		return core.NewConstraintError(field, ErrUnknownUser)
	}
	return err
}

func (svc *Service) RecordAttendance(ctx context.Context, na NewAttendance) (Attendance, error) {
	rec, err := na.Validate()
	if err != nil {
		return Attendance{}, err
	}
	if rec, err = svc.repo.InsertAttendance(ctx, rec); err != nil {
		return Attendance{}, unknownUserErr(err, "student_id")
	}
	return rec, nil
}

func (svc *Service) UploadMark(ctx context.Context, nm NewMark) (Mark, error) {
	rec, err := nm.Validate()
	if err != nil {
		return Mark{}, err
	}
	if rec, err = svc.repo.InsertMark(ctx, rec); err != nil {
		return Mark{}, unknownUserErr(err, "student_id")
	}
	return rec, nil
}

func (svc *Service) Assign(ctx context.Context, na NewAssignment) (Assignment, error) {
	rec, err := na.Validate()
	if err != nil {
		return Assignment{}, err
	}
	if rec, err = svc.repo.InsertAssignment(ctx, rec); err != nil {
		return Assignment{}, unknownUserErr(err, "student_id")
	}
	return rec, nil
}

func (svc *Service) AssignProject(ctx context.Context, na NewAssignment) (Project, error) {
	rec, err := na.Validate()
	if err != nil {
		return Project{}, err
	}
	prj, err := svc.repo.InsertProject(ctx, Project(rec))
	if err != nil {
		return Project{}, unknownUserErr(err, "student_id")
	}
	return prj, nil
}

func (svc *Service) Notify(ctx context.Context, nn NewNotification) (Notification, error) {
	if err := nn.Validate(); err != nil {
		return Notification{}, err
	}
	rec, err := svc.repo.InsertNotification(ctx, Notification{UserID: nn.UserID, Message: nn.Message, Date: nn.Date})
	if err != nil {
		return Notification{}, unknownUserErr(err, "user_id")
	}
	return rec, nil
}

func (svc *Service) AddEvent(ctx context.Context, ne NewEvent) (Event, error) {
	if err := ne.Validate(); err != nil {
		return Event{}, err
	}
	return svc.repo.InsertEvent(ctx, Event{Title: ne.Title, Description: ne.Description, Date: ne.Date})
}

func (svc *Service) Attendance(ctx context.Context, userID int) ([]Attendance, error) {
	return svc.repo.ListAttendance(ctx, userID)
}

func (svc *Service) AttendanceSummary(ctx context.Context, userID int) ([]Attendance, AttendanceSummary, error) {
	records, err := svc.repo.ListAttendance(ctx, userID)
	if err != nil {
		return nil, AttendanceSummary{}, err
	}
	return records, Summarize(records), nil
}

func (svc *Service) Marks(ctx context.Context, userID int) ([]Mark, error) {
	return svc.repo.ListMarks(ctx, userID)
}

func (svc *Service) Assignments(ctx context.Context, userID int) ([]Assignment, error) {
	return svc.repo.ListAssignments(ctx, userID)
}

func (svc *Service) AllAssignments(ctx context.Context) ([]Assignment, error) {
	return svc.repo.ListAllAssignments(ctx)
}

func (svc *Service) Projects(ctx context.Context, userID int) ([]Project, error) {
	return svc.repo.ListProjects(ctx, userID)
}

func (svc *Service) AllProjects(ctx context.Context) ([]Project, error) {
	return svc.repo.ListAllProjects(ctx)
}

func (svc *Service) Notifications(ctx context.Context, userID int) ([]Notification, error) {
	return svc.repo.ListNotifications(ctx, userID)
}

func (svc *Service) Events(ctx context.Context) ([]Event, error) {
	return svc.repo.ListEvents(ctx)
}

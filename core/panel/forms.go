package panel

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/session"
)

// Success messages
const (
	MarksUploaded       = "Marks uploaded successfully."
	AttendanceSubmitted = "Attendance submitted successfully."
	AssignmentAssigned  = "Assignment assigned successfully."
	ProjectAssigned     = "Project assigned successfully."
)

// form is shared by the teacher panels: each submit is exactly one store write.
type form struct {
	sess   *session.Session
	svc    *school.Service
	logger core.Logger
}

func (f form) teacher() error {
	usr, err := current(f.sess)
	if err != nil {
		return err
	}
	if !usr.IsTeacher() {
		return errors.Wrapf(errPermissionDenied, "user %d", usr.ID)
	}
	return nil
}

// ack turns the outcome of a submit into an Ack, logging store failures.
func (f form) ack(err error, success, failed, what string) Ack {
	if err == nil {
		f.logger.Info(fmt.Sprintf("%s (session %s)", what, f.sess.ID()))
		return Success(success)
	}
	a := AckFor(err, failed)
	if a.Level == Error {
		f.logger.Error(err.Error())
	}
	return a
}

type UploadMarks struct{ form }

func NewUploadMarks(sess *session.Session, svc *school.Service, logger core.Logger) *UploadMarks {
	return &UploadMarks{form{sess: sess, svc: svc, logger: logger}}
}

func (p *UploadMarks) Submit(ctx context.Context, nm school.NewMark) Ack {
	if err := p.teacher(); err != nil {
		return AckFor(err, "Failed to upload marks.")
	}
	mark, err := p.svc.UploadMark(ctx, nm)
	return p.ack(err, MarksUploaded, "Failed to upload marks.", fmt.Sprintf("marks uploaded for student %d", mark.UserID))
}

type ManageAttendance struct{ form }

func NewManageAttendance(sess *session.Session, svc *school.Service, logger core.Logger) *ManageAttendance {
	return &ManageAttendance{form{sess: sess, svc: svc, logger: logger}}
}

func (p *ManageAttendance) Submit(ctx context.Context, na school.NewAttendance) Ack {
	if err := p.teacher(); err != nil {
		return AckFor(err, "Failed to submit attendance.")
	}
	rec, err := p.svc.RecordAttendance(ctx, na)
	return p.ack(err, AttendanceSubmitted, "Failed to submit attendance.", fmt.Sprintf("attendance recorded for student %d", rec.UserID))
}

type AssignAssignments struct{ form }

func NewAssignAssignments(sess *session.Session, svc *school.Service, logger core.Logger) *AssignAssignments {
	return &AssignAssignments{form{sess: sess, svc: svc, logger: logger}}
}

func (p *AssignAssignments) Submit(ctx context.Context, na school.NewAssignment) Ack {
	if err := p.teacher(); err != nil {
		return AckFor(err, "Failed to assign assignment.")
	}
	rec, err := p.svc.Assign(ctx, na)
	return p.ack(err, AssignmentAssigned, "Failed to assign assignment.", fmt.Sprintf("assignment %d assigned to student %d", rec.ID, rec.UserID))
}

type AssignProjects struct{ form }

func NewAssignProjects(sess *session.Session, svc *school.Service, logger core.Logger) *AssignProjects {
	return &AssignProjects{form{sess: sess, svc: svc, logger: logger}}
}

func (p *AssignProjects) Submit(ctx context.Context, na school.NewAssignment) Ack {
	if err := p.teacher(); err != nil {
		return AckFor(err, "Failed to assign project.")
	}
	rec, err := p.svc.AssignProject(ctx, na)
	return p.ack(err, ProjectAssigned, "Failed to assign project.", fmt.Sprintf("project %d assigned to student %d", rec.ID, rec.UserID))
}

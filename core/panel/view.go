package panel

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/session"
	"github.com/trezcool/masomo-desk/core/user"
)

// Placeholders of empty lists
const (
	NoAttendance    = "No attendance records found."
	NoMarks         = "No marks records found."
	NoAssignments   = "No assignments found."
	NoProjects      = "No projects found."
	NoNotifications = "No notifications found."
	NoEvents        = "No events found."
)

// List is a read-only panel: a heading and one line per record.
type List struct {
	Title       string
	Placeholder string
	Items       []string
}

func (l List) IsEmpty() bool { return len(l.Items) == 0 }

// Lines returns the items, or the placeholder when there are none.
func (l List) Lines() []string {
	if l.IsEmpty() {
		return []string{l.Placeholder}
	}
	return l.Items
}

type Submissions struct {
	Assignments List
	Projects    List
}

// Bar is one slice of the attendance proportion.
type Bar struct {
	Label   string
	Count   int
	Percent float64
}

type AttendanceView struct {
	Records List
	Summary school.AttendanceSummary
}

// Chart returns the Present and Absent bars; it is nil when there is no record.
func (v AttendanceView) Chart() []Bar {
	if v.Summary.IsEmpty() {
		return nil
	}
	return []Bar{
		{Label: school.StatusPresent, Count: v.Summary.Present, Percent: v.Summary.PresentPercent()},
		{Label: school.StatusAbsent, Count: v.Summary.Absent, Percent: v.Summary.AbsentPercent()},
	}
}

func current(sess *session.Session) (user.User, error) {
	usr, err := sess.Current()
	if err != nil {
		return user.User{}, errors.Wrap(err, "loading panel")
	}
	return usr, nil
}

func assignmentLines(recs []school.Assignment, withStudent bool) []string {
	lines := make([]string, 0, len(recs))
	for _, a := range recs {
		line := fmt.Sprintf("Title: %s, Deadline: %s, Status: %s", a.Title, a.Deadline, a.Status)
		if withStudent {
			line = fmt.Sprintf("Student ID: %d, %s", a.UserID, line)
		}
		lines = append(lines, line)
	}
	return lines
}

func projectsAsAssignments(recs []school.Project) []school.Assignment {
	out := make([]school.Assignment, 0, len(recs))
	for _, p := range recs {
		out = append(out, school.Assignment(p))
	}
	return out
}

// ViewSubmissions lists every assignment and project, for teachers.
func ViewSubmissions(ctx context.Context, sess *session.Session, svc *school.Service) (Submissions, error) {
	if _, err := current(sess); err != nil {
		return Submissions{}, err
	}
	assignments, err := svc.AllAssignments(ctx)
	if err != nil {
		return Submissions{}, errors.Wrap(err, "loading submissions")
	}
	projects, err := svc.AllProjects(ctx)
	if err != nil {
		return Submissions{}, errors.Wrap(err, "loading submissions")
	}
	return Submissions{
		Assignments: List{Title: "Assignments", Placeholder: NoAssignments, Items: assignmentLines(assignments, true)},
		Projects:    List{Title: "Projects", Placeholder: NoProjects, Items: assignmentLines(projectsAsAssignments(projects), true)},
	}, nil
}

func Notifications(ctx context.Context, sess *session.Session, svc *school.Service) (List, error) {
	usr, err := current(sess)
	if err != nil {
		return List{}, err
	}
	recs, err := svc.Notifications(ctx, usr.ID)
	if err != nil {
		return List{}, errors.Wrap(err, "loading notifications")
	}
	lst := List{Title: "Notifications", Placeholder: NoNotifications}
	for _, n := range recs {
		lst.Items = append(lst.Items, fmt.Sprintf("Date: %s, Message: %s", n.Date, n.Message))
	}
	return lst, nil
}

func Events(ctx context.Context, sess *session.Session, svc *school.Service) (List, error) {
	if _, err := current(sess); err != nil {
		return List{}, err
	}
	recs, err := svc.Events(ctx)
	if err != nil {
		return List{}, errors.Wrap(err, "loading events")
	}
	lst := List{Title: "Events", Placeholder: NoEvents}
	for _, e := range recs {
		lst.Items = append(lst.Items, fmt.Sprintf("Date: %s, Title: %s, Description: %s", e.Date, e.Title, e.Description))
	}
	return lst, nil
}

func Profile(sess *session.Session) (List, error) {
	usr, err := current(sess)
	if err != nil {
		return List{}, err
	}
	return List{
		Title: "Profile",
		Items: []string{
			"Name: " + usr.Name,
			"Email: " + usr.Email,
			"Role: " + usr.Role,
		},
	}, nil
}

func Attendance(ctx context.Context, sess *session.Session, svc *school.Service) (AttendanceView, error) {
	usr, err := current(sess)
	if err != nil {
		return AttendanceView{}, err
	}
	recs, summary, err := svc.AttendanceSummary(ctx, usr.ID)
	if err != nil {
		return AttendanceView{}, errors.Wrap(err, "loading attendance")
	}
	view := AttendanceView{
		Records: List{Title: "Attendance", Placeholder: NoAttendance},
		Summary: summary,
	}
	for _, r := range recs {
		view.Records.Items = append(view.Records.Items, fmt.Sprintf("Date: %s, Status: %s", r.Date, r.Status))
	}
	return view, nil
}

func Marks(ctx context.Context, sess *session.Session, svc *school.Service) (List, error) {
	usr, err := current(sess)
	if err != nil {
		return List{}, err
	}
	recs, err := svc.Marks(ctx, usr.ID)
	if err != nil {
		return List{}, errors.Wrap(err, "loading marks")
	}
	lst := List{Title: "Marks", Placeholder: NoMarks}
	for _, m := range recs {
		lst.Items = append(lst.Items, fmt.Sprintf("Semester: %d, Subject: %s, Marks: %d", m.Semester, m.Subject, m.Marks))
	}
	return lst, nil
}

func Assignments(ctx context.Context, sess *session.Session, svc *school.Service) (List, error) {
	usr, err := current(sess)
	if err != nil {
		return List{}, err
	}
	recs, err := svc.Assignments(ctx, usr.ID)
	if err != nil {
		return List{}, errors.Wrap(err, "loading assignments")
	}
	return List{Title: "Assignments", Placeholder: NoAssignments, Items: assignmentLines(recs, false)}, nil
}

func Projects(ctx context.Context, sess *session.Session, svc *school.Service) (List, error) {
	usr, err := current(sess)
	if err != nil {
		return List{}, err
	}
	recs, err := svc.Projects(ctx, usr.ID)
	if err != nil {
		return List{}, errors.Wrap(err, "loading projects")
	}
	return List{Title: "Projects", Placeholder: NoProjects, Items: assignmentLines(projectsAsAssignments(recs), false)}, nil
}

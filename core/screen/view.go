package screen

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core/panel"
	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/session"
	"github.com/trezcool/masomo-desk/core/user"
)

type State int

// States
const (
	LoggedOutLogin State = iota
	LoggedOutSignUp
	TeacherDashboard
	StudentDashboard
)

func (s State) String() string {
	switch s {
	case LoggedOutLogin:
		return "LoggedOut/Login"
	case LoggedOutSignUp:
		return "LoggedOut/SignUp"
	case TeacherDashboard:
		return "TeacherDashboard"
	case StudentDashboard:
		return "StudentDashboard"
	default:
		return "unknown"
	}
}

// Tab labels, in display order.
var (
	TeacherTabs = []string{
		"Upload Marks", "Manage Attendance", "Assign Assignments", "Assign Projects",
		"View Submissions", "Notifications", "Events",
	}
	StudentTabs = []string{
		"Profile", "Attendance", "Marks", "Assignments", "Projects", "Notifications", "Events",
	}
)

// View is a full replacement of the rendered surface.
// Teacher is set in TeacherDashboard, Student in StudentDashboard.
type View struct {
	State   State
	Teacher *TeacherView
	Student *StudentView
}

// TeacherView is the data of the teacher dashboard, loaded when it is entered.
type TeacherView struct {
	Welcome       string
	Tabs          []string
	Submissions   panel.Submissions
	Notifications panel.List
	Events        panel.List
}

// StudentView is the data of the student dashboard, loaded when it is entered.
type StudentView struct {
	Welcome       string
	Tabs          []string
	Profile       panel.List
	Attendance    panel.AttendanceView
	Marks         panel.List
	Assignments   panel.List
	Projects      panel.List
	Notifications panel.List
	Events        panel.List
}

func welcome(usr user.User) string {
	if usr.IsTeacher() {
		return "Welcome, " + usr.Name + " (Teacher)!"
	}
	return "Welcome, " + usr.Name + " (Student)!"
}

func loadTeacherView(ctx context.Context, sess *session.Session, svc *school.Service, usr user.User) (*TeacherView, error) {
	v := &TeacherView{Welcome: welcome(usr), Tabs: TeacherTabs}
	var err error
	if v.Submissions, err = panel.ViewSubmissions(ctx, sess, svc); err != nil {
		return nil, err
	}
	if v.Notifications, err = panel.Notifications(ctx, sess, svc); err != nil {
		return nil, err
	}
	if v.Events, err = panel.Events(ctx, sess, svc); err != nil {
		return nil, err
	}
	return v, nil
}

func loadStudentView(ctx context.Context, sess *session.Session, svc *school.Service, usr user.User) (*StudentView, error) {
	v := &StudentView{Welcome: welcome(usr), Tabs: StudentTabs}
	var err error
	if v.Profile, err = panel.Profile(sess); err != nil {
		return nil, err
	}
	if v.Attendance, err = panel.Attendance(ctx, sess, svc); err != nil {
		return nil, err
	}
	if v.Marks, err = panel.Marks(ctx, sess, svc); err != nil {
		return nil, err
	}
	if v.Assignments, err = panel.Assignments(ctx, sess, svc); err != nil {
		return nil, err
	}
	if v.Projects, err = panel.Projects(ctx, sess, svc); err != nil {
		return nil, err
	}
	if v.Notifications, err = panel.Notifications(ctx, sess, svc); err != nil {
		return nil, err
	}
	if v.Events, err = panel.Events(ctx, sess, svc); err != nil {
		return nil, err
	}
	return v, nil
}

// dashboard builds the view matching the role of the logged-in user.
func dashboard(ctx context.Context, sess *session.Session, svc *school.Service) (View, error) {
	usr, err := sess.Current()
	if err != nil {
		return View{}, errors.Wrap(err, "entering dashboard")
	}
	if usr.IsTeacher() {
		tv, err := loadTeacherView(ctx, sess, svc, usr)
		if err != nil {
			return View{}, errors.Wrap(err, "loading teacher dashboard")
		}
		return View{State: TeacherDashboard, Teacher: tv}, nil
	}
	sv, err := loadStudentView(ctx, sess, svc, usr)
	if err != nil {
		return View{}, errors.Wrap(err, "loading student dashboard")
	}
	return View{State: StudentDashboard, Student: sv}, nil
}

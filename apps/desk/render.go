package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/trezcool/masomo-desk/core/panel"
	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/screen"
)

// windowRenderer draws screen views into a fyne window and forwards the user's input to the controller.
type windowRenderer struct {
	w    fyne.Window
	ctrl *screen.Controller
}

var _ screen.Renderer = (*windowRenderer)(nil)

func newWindowRenderer(w fyne.Window) *windowRenderer {
	return &windowRenderer{w: w}
}

func (r *windowRenderer) Render(v screen.View) {
	switch v.State {
	case screen.LoggedOutLogin:
		r.w.SetContent(r.loginScreen())
	case screen.LoggedOutSignUp:
		r.w.SetContent(r.signUpScreen())
	case screen.TeacherDashboard:
		r.w.SetContent(r.teacherDashboard(v.Teacher))
	case screen.StudentDashboard:
		r.w.SetContent(r.studentDashboard(v.Student))
	}
}

// dispatch sends req to the controller and shows its acknowledgment. It reports whether req succeeded.
func (r *windowRenderer) dispatch(req screen.Request) bool {
	ack := r.ctrl.Dispatch(context.Background(), req)
	if ack.Silent() {
		return true
	}
	switch ack.Level {
	case panel.Info:
		dialog.ShowInformation(ack.Title, ack.Message, r.w)
	case panel.Warning:
		dialog.NewCustom(ack.Title, "OK", widget.NewLabel(ack.Message), r.w).Show()
	default:
		dialog.ShowError(fmt.Errorf("%s", ack.Message), r.w)
	}
	return ack.OK()
}

func title(text string, size float32) *canvas.Text {
	t := canvas.NewText(text, theme.ForegroundColor())
	t.TextSize = size
	t.Alignment = fyne.TextAlignCenter
	return t
}

func labelled(label string, obj fyne.CanvasObject) []fyne.CanvasObject {
	return []fyne.CanvasObject{widget.NewLabel(label), obj}
}

func column(objs ...fyne.CanvasObject) fyne.CanvasObject {
	box := container.NewVBox(objs...)
	return container.NewCenter(container.New(layout.NewGridWrapLayout(fyne.NewSize(300, box.MinSize().Height)), box))
}

func (r *windowRenderer) loginScreen() fyne.CanvasObject {
	username := widget.NewEntry()
	password := widget.NewPasswordEntry()

	objs := []fyne.CanvasObject{title("Login", 24)}
	objs = append(objs, labelled("Username:", username)...)
	objs = append(objs, labelled("Password:", password)...)
	objs = append(objs,
		widget.NewButton("Login", func() {
			r.dispatch(screen.Login{Username: username.Text, Password: password.Text})
		}),
		widget.NewButton("Sign Up", func() { r.dispatch(screen.ShowSignUp{}) }),
	)
	return column(objs...)
}

func (r *windowRenderer) signUpScreen() fyne.CanvasObject {
	username := widget.NewEntry()
	password := widget.NewPasswordEntry()
	name := widget.NewEntry()
	email := widget.NewEntry()
	role := widget.NewSelect([]string{"student", "teacher"}, nil)

	objs := []fyne.CanvasObject{title("Sign Up", 24)}
	objs = append(objs, labelled("Username:", username)...)
	objs = append(objs, labelled("Password:", password)...)
	objs = append(objs, labelled("Name:", name)...)
	objs = append(objs, labelled("Email:", email)...)
	objs = append(objs, labelled("Role:", role)...)
	objs = append(objs,
		widget.NewButton("Sign Up", func() {
			r.dispatch(screen.SignUp{
				Username: username.Text,
				Password: password.Text,
				Name:     name.Text,
				Email:    email.Text,
				Role:     role.Selected,
			})
		}),
		widget.NewButton("Back to Login", func() { r.dispatch(screen.ShowLogin{}) }),
	)
	return column(objs...)
}

func (r *windowRenderer) header(welcome string) fyne.CanvasObject {
	logout := widget.NewButton("Logout", func() { r.dispatch(screen.Logout{}) })
	return container.NewBorder(nil, nil, nil, logout, title(welcome, 24))
}

func (r *windowRenderer) tabs(labels []string, contents ...fyne.CanvasObject) *container.AppTabs {
	items := make([]*container.TabItem, 0, len(labels))
	for i, label := range labels {
		items = append(items, container.NewTabItem(label, container.NewVScroll(container.NewVBox(title(label, 20), contents[i]))))
	}
	return container.NewAppTabs(items...)
}

func (r *windowRenderer) teacherDashboard(v *screen.TeacherView) fyne.CanvasObject {
	tabs := r.tabs(v.Tabs,
		r.uploadMarksForm(),
		r.attendanceForm(),
		r.assignmentForm("Assign Assignment", func(f school.NewAssignment) screen.Request { return screen.AssignAssignment{Form: f} }),
		r.assignmentForm("Assign Project", func(f school.NewAssignment) screen.Request { return screen.AssignProject{Form: f} }),
		container.NewVBox(listView(v.Submissions.Assignments), listView(v.Submissions.Projects)),
		listView(v.Notifications),
		listView(v.Events),
	)
	return container.NewBorder(r.header(v.Welcome), nil, nil, nil, tabs)
}

func (r *windowRenderer) studentDashboard(v *screen.StudentView) fyne.CanvasObject {
	tabs := r.tabs(v.Tabs,
		listView(v.Profile),
		attendanceView(v.Attendance),
		listView(v.Marks),
		listView(v.Assignments),
		listView(v.Projects),
		listView(v.Notifications),
		listView(v.Events),
	)
	return container.NewBorder(r.header(v.Welcome), nil, nil, nil, tabs)
}

func listView(l panel.List) fyne.CanvasObject {
	box := container.NewVBox()
	for _, line := range l.Lines() {
		box.Add(widget.NewLabel(line))
	}
	return box
}

// attendanceView draws the records and the Present/Absent proportion as two labelled bars.
func attendanceView(v panel.AttendanceView) fyne.CanvasObject {
	bars := v.Chart()
	if bars == nil {
		return listView(v.Records)
	}
	box := container.NewVBox()
	for _, b := range bars {
		b := b
		bar := widget.NewProgressBar()
		bar.Max = 100
		bar.SetValue(b.Percent)
		bar.TextFormatter = func() string { return fmt.Sprintf("%.1f%%", b.Percent) }
		box.Add(container.NewBorder(nil, nil, widget.NewLabel(fmt.Sprintf("%s (%d)", b.Label, b.Count)), nil, bar))
	}
	box.Add(widget.NewSeparator())
	box.Add(listView(v.Records))
	return box
}

func (r *windowRenderer) uploadMarksForm() fyne.CanvasObject {
	studentID := widget.NewEntry()
	semester := widget.NewEntry()
	subject := widget.NewEntry()
	marks := widget.NewEntry()

	var objs []fyne.CanvasObject
	objs = append(objs, labelled("Student ID:", studentID)...)
	objs = append(objs, labelled("Semester:", semester)...)
	objs = append(objs, labelled("Subject:", subject)...)
	objs = append(objs, labelled("Marks:", marks)...)
	objs = append(objs, widget.NewButton("Upload Marks", func() {
		r.dispatch(screen.UploadMarks{Form: school.NewMark{
			StudentID: studentID.Text,
			Semester:  semester.Text,
			Subject:   subject.Text,
			Marks:     marks.Text,
		}})
	}))
	return column(objs...)
}

func (r *windowRenderer) attendanceForm() fyne.CanvasObject {
	studentID := widget.NewEntry()
	date := widget.NewEntry()
	date.SetPlaceHolder("YYYY-MM-DD")
	status := widget.NewSelect([]string{school.StatusPresent, school.StatusAbsent}, nil)

	var objs []fyne.CanvasObject
	objs = append(objs, labelled("Student ID:", studentID)...)
	objs = append(objs, labelled("Date (YYYY-MM-DD):", date)...)
	objs = append(objs, labelled("Status (Present/Absent):", status)...)
	objs = append(objs, widget.NewButton("Submit Attendance", func() {
		r.dispatch(screen.SubmitAttendance{Form: school.NewAttendance{
			StudentID: studentID.Text,
			Date:      date.Text,
			Status:    status.Selected,
		}})
	}))
	return column(objs...)
}

func (r *windowRenderer) assignmentForm(button string, req func(school.NewAssignment) screen.Request) fyne.CanvasObject {
	studentID := widget.NewEntry()
	titleEntry := widget.NewEntry()
	description := widget.NewMultiLineEntry()
	deadline := widget.NewEntry()
	deadline.SetPlaceHolder("YYYY-MM-DD")

	var objs []fyne.CanvasObject
	objs = append(objs, labelled("Student ID:", studentID)...)
	objs = append(objs, labelled("Title:", titleEntry)...)
	objs = append(objs, labelled("Description:", description)...)
	objs = append(objs, labelled("Deadline (YYYY-MM-DD):", deadline)...)
	objs = append(objs, widget.NewButton(button, func() {
		r.dispatch(req(school.NewAssignment{
			StudentID:   studentID.Text,
			Title:       titleEntry.Text,
			Description: description.Text,
			Deadline:    deadline.Text,
		}))
	}))
	return column(objs...)
}

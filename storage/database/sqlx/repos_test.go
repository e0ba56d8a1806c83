package sqlxrepos

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/user"
	"github.com/trezcool/masomo-desk/tests"
)

func setup(t *testing.T) (*userRepository, *schoolRepository) {
	db := testutil.OpenDB(t)
	return NewUserRepository(db), NewSchoolRepository(db)
}

func TestUserRepository_uniqueness(t *testing.T) {
	usrRepo, _ := setup(t)
	ctx := context.Background()
	testutil.CreateUser(t, usrRepo, "Awe", "awe", "awe@test.cd", "mdr", user.RoleTeacher)

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{name: "new user", username: "amy", email: "amy@test.cd"},
		{name: "same username", username: "awe", email: "other@test.cd", wantErr: user.ErrUsernameExists},
		{name: "same email", username: "other", email: "awe@test.cd", wantErr: user.ErrEmailExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usrRepo.CheckUsernameUniqueness(ctx, tt.username, tt.email)
			assert.Equal(t, tt.wantErr, err)

			// the store enforces it too
			_, err = usrRepo.CreateUser(ctx, user.User{Username: tt.username, Password: "x", Name: "X", Email: tt.email, Role: user.RoleStudent})
			assert.Equal(t, tt.wantErr, errors.Cause(err))
		})
	}
}

func TestUserRepository_Authenticate(t *testing.T) {
	usrRepo, _ := setup(t)
	ctx := context.Background()
	awe := testutil.CreateUser(t, usrRepo, "Awe", "awe", "awe@test.cd", "mdr", user.RoleTeacher)

	usr, err := usrRepo.Authenticate(ctx, "awe", "mdr")
	require.NoError(t, err)
	assert.Equal(t, awe, usr)

	_, err = usrRepo.Authenticate(ctx, "awe", "MDR")
	assert.Equal(t, user.ErrNotFound, err)

	usr, err = usrRepo.GetUserByID(ctx, awe.ID)
	require.NoError(t, err)
	assert.Equal(t, awe, usr)

	_, err = usrRepo.GetUserByID(ctx, awe.ID+1)
	assert.Equal(t, user.ErrNotFound, err)
}

func TestSchoolRepository_attendanceRoundTrip(t *testing.T) {
	usrRepo, repo := setup(t)
	ctx := context.Background()
	amy := testutil.CreateUser(t, usrRepo, "Amy", "amy", "amy@test.cd", "x", user.RoleStudent)

	rec, err := repo.InsertAttendance(ctx, school.Attendance{UserID: amy.ID, Date: "2024-03-01", Status: school.StatusPresent})
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)

	recs, err := repo.ListAttendance(ctx, amy.ID)
	require.NoError(t, err)
	assert.Equal(t, []school.Attendance{{ID: rec.ID, UserID: amy.ID, Date: "2024-03-01", Status: "Present"}}, recs)
}

func TestSchoolRepository_marksScoping(t *testing.T) {
	usrRepo, repo := setup(t)
	ctx := context.Background()
	amy := testutil.CreateUser(t, usrRepo, "Amy", "amy", "amy@test.cd", "x", user.RoleStudent)
	bob := testutil.CreateUser(t, usrRepo, "Bob", "bob", "bob@test.cd", "y", user.RoleStudent)

	marks := []school.Mark{
		{UserID: amy.ID, Semester: 1, Subject: "Math", Marks: 90},
		{UserID: bob.ID, Semester: 1, Subject: "Math", Marks: 70},
		{UserID: amy.ID, Semester: 2, Subject: "Physics", Marks: 85},
	}
	for i, m := range marks {
		var err error
		marks[i], err = repo.InsertMark(ctx, m)
		require.NoError(t, err)
	}

	got, err := repo.ListMarks(ctx, amy.ID)
	require.NoError(t, err)
	assert.Equal(t, []school.Mark{marks[0], marks[2]}, got)

	got, err = repo.ListMarks(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []school.Mark{marks[1]}, got)

	got, err = repo.ListMarks(ctx, bob.ID+100)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSchoolRepository_assignmentsAndProjects(t *testing.T) {
	usrRepo, repo := setup(t)
	ctx := context.Background()
	amy := testutil.CreateUser(t, usrRepo, "Amy", "amy", "amy@test.cd", "x", user.RoleStudent)
	bob := testutil.CreateUser(t, usrRepo, "Bob", "bob", "bob@test.cd", "y", user.RoleStudent)

	a1, err := repo.InsertAssignment(ctx, school.Assignment{UserID: amy.ID, Title: "Essay", Description: "Rivers", Deadline: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, school.StatusPending, a1.Status)
	a2, err := repo.InsertAssignment(ctx, school.Assignment{UserID: bob.ID, Title: "Lab", Description: "Optics", Deadline: "2024-05-02"})
	require.NoError(t, err)
	p1, err := repo.InsertProject(ctx, school.Project{UserID: bob.ID, Title: "Robot", Description: "Line follower", Deadline: "2024-06-01"})
	require.NoError(t, err)

	all, err := repo.ListAllAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []school.Assignment{a1, a2}, all)

	mine, err := repo.ListAssignments(ctx, amy.ID)
	require.NoError(t, err)
	assert.Equal(t, []school.Assignment{a1}, mine)

	prjs, err := repo.ListAllProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []school.Project{p1}, prjs)

	prjs, err = repo.ListProjects(ctx, amy.ID)
	require.NoError(t, err)
	assert.Empty(t, prjs)
}

func TestSchoolRepository_notificationsAndEvents(t *testing.T) {
	usrRepo, repo := setup(t)
	ctx := context.Background()
	amy := testutil.CreateUser(t, usrRepo, "Amy", "amy", "amy@test.cd", "x", user.RoleStudent)

	n, err := repo.InsertNotification(ctx, school.Notification{UserID: amy.ID, Message: "Fees are due", Date: "2024-03-05"})
	require.NoError(t, err)
	notifs, err := repo.ListNotifications(ctx, amy.ID)
	require.NoError(t, err)
	assert.Equal(t, []school.Notification{n}, notifs)

	e, err := repo.InsertEvent(ctx, school.Event{Title: "Sports day", Description: "All day", Date: "2024-04-02"})
	require.NoError(t, err)
	events, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []school.Event{e}, events)
}

func TestSchoolRepository_unknownUser(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	_, err := repo.InsertAttendance(ctx, school.Attendance{UserID: 42, Date: "2024-03-01", Status: school.StatusAbsent})
	assert.Equal(t, school.ErrUnknownUser, err)

	_, err = repo.InsertMark(ctx, school.Mark{UserID: 42, Semester: 1, Subject: "Math", Marks: 50})
	assert.Equal(t, school.ErrUnknownUser, err)

	_, err = repo.InsertNotification(ctx, school.Notification{UserID: 42, Message: "hi", Date: "2024-03-01"})
	assert.Equal(t, school.ErrUnknownUser, err)
}

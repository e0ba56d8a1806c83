package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core/school"
)

type schoolRepository struct {
	db *sqlx.DB
}

var _ school.Repository = (*schoolRepository)(nil) // interface compliance check

func NewSchoolRepository(db *sqlx.DB) *schoolRepository {
	return &schoolRepository{db: db}
}

// insert runs an INSERT ... RETURNING id and returns the new id.
func (repo schoolRepository) insert(ctx context.Context, query string, args ...interface{}) (int, error) {
	var id int
	err := repo.db.QueryRowxContext(ctx, repo.db.Rebind(query+" RETURNING id"), args...).Scan(&id)
	return id, err
}

// selectScoped runs query with an optional `WHERE user_id = ?` scope.
func (repo schoolRepository) selectScoped(ctx context.Context, dest interface{}, query string, userID ...int) error {
	if len(userID) > 0 {
		return repo.db.SelectContext(ctx, dest, repo.db.Rebind(query+" WHERE user_id = ? ORDER BY id"), userID[0])
	}
	return repo.db.SelectContext(ctx, dest, query+" ORDER BY id")
}

func (repo schoolRepository) InsertAttendance(ctx context.Context, rec school.Attendance) (school.Attendance, error) {
	id, err := repo.insert(ctx, `INSERT INTO attendance (user_id, date, status) VALUES (?, ?, ?)`,
		rec.UserID, rec.Date, rec.Status)
	if err != nil {
		return school.Attendance{}, trapRecordErr(err, "inserting attendance")
	}
	rec.ID = id
	return rec, nil
}

func (repo schoolRepository) InsertMark(ctx context.Context, rec school.Mark) (school.Mark, error) {
	id, err := repo.insert(ctx, `INSERT INTO marks (user_id, semester, subject, marks) VALUES (?, ?, ?, ?)`,
		rec.UserID, rec.Semester, rec.Subject, rec.Marks)
	if err != nil {
		return school.Mark{}, trapRecordErr(err, "inserting mark")
	}
	rec.ID = id
	return rec, nil
}

func (repo schoolRepository) InsertAssignment(ctx context.Context, rec school.Assignment) (school.Assignment, error) {
	if rec.Status == "" {
		rec.Status = school.StatusPending
	}
	id, err := repo.insert(ctx, `INSERT INTO assignments (user_id, title, description, deadline, status) VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, rec.Title, rec.Description, rec.Deadline, rec.Status)
	if err != nil {
		return school.Assignment{}, trapRecordErr(err, "inserting assignment")
	}
	rec.ID = id
	return rec, nil
}

func (repo schoolRepository) InsertProject(ctx context.Context, rec school.Project) (school.Project, error) {
	if rec.Status == "" {
		rec.Status = school.StatusPending
	}
	id, err := repo.insert(ctx, `INSERT INTO projects (user_id, title, description, deadline, status) VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, rec.Title, rec.Description, rec.Deadline, rec.Status)
	if err != nil {
		return school.Project{}, trapRecordErr(err, "inserting project")
	}
	rec.ID = id
	return rec, nil
}

func (repo schoolRepository) InsertNotification(ctx context.Context, rec school.Notification) (school.Notification, error) {
	id, err := repo.insert(ctx, `INSERT INTO notifications (user_id, message, date) VALUES (?, ?, ?)`,
		rec.UserID, rec.Message, rec.Date)
	if err != nil {
		return school.Notification{}, trapRecordErr(err, "inserting notification")
	}
	rec.ID = id
	return rec, nil
}

func (repo schoolRepository) InsertEvent(ctx context.Context, rec school.Event) (school.Event, error) {
	id, err := repo.insert(ctx, `INSERT INTO events (title, description, date) VALUES (?, ?, ?)`,
		rec.Title, rec.Description, rec.Date)
	if err != nil {
		return school.Event{}, errors.Wrap(err, "inserting event")
	}
	rec.ID = id
	return rec, nil
}

func (repo schoolRepository) ListAttendance(ctx context.Context, userID int) ([]school.Attendance, error) {
	var recs []school.Attendance
	if err := repo.selectScoped(ctx, &recs, `SELECT id, user_id, date, status FROM attendance`, userID); err != nil {
		return nil, errors.Wrap(err, "listing attendance")
	}
	return recs, nil
}

func (repo schoolRepository) ListMarks(ctx context.Context, userID int) ([]school.Mark, error) {
	var recs []school.Mark
	if err := repo.selectScoped(ctx, &recs, `SELECT id, user_id, semester, subject, marks FROM marks`, userID); err != nil {
		return nil, errors.Wrap(err, "listing marks")
	}
	return recs, nil
}

const assignmentColumns = `SELECT id, user_id, title, description, deadline, status`

func (repo schoolRepository) ListAssignments(ctx context.Context, userID int) ([]school.Assignment, error) {
	var recs []school.Assignment
	if err := repo.selectScoped(ctx, &recs, assignmentColumns+` FROM assignments`, userID); err != nil {
		return nil, errors.Wrap(err, "listing assignments")
	}
	return recs, nil
}

func (repo schoolRepository) ListAllAssignments(ctx context.Context) ([]school.Assignment, error) {
	var recs []school.Assignment
	if err := repo.selectScoped(ctx, &recs, assignmentColumns+` FROM assignments`); err != nil {
		return nil, errors.Wrap(err, "listing all assignments")
	}
	return recs, nil
}

func (repo schoolRepository) ListProjects(ctx context.Context, userID int) ([]school.Project, error) {
	var recs []school.Project
	if err := repo.selectScoped(ctx, &recs, assignmentColumns+` FROM projects`, userID); err != nil {
		return nil, errors.Wrap(err, "listing projects")
	}
	return recs, nil
}

func (repo schoolRepository) ListAllProjects(ctx context.Context) ([]school.Project, error) {
	var recs []school.Project
	if err := repo.selectScoped(ctx, &recs, assignmentColumns+` FROM projects`); err != nil {
		return nil, errors.Wrap(err, "listing all projects")
	}
	return recs, nil
}

func (repo schoolRepository) ListNotifications(ctx context.Context, userID int) ([]school.Notification, error) {
	var recs []school.Notification
	if err := repo.selectScoped(ctx, &recs, `SELECT id, user_id, message, date FROM notifications`, userID); err != nil {
		return nil, errors.Wrap(err, "listing notifications")
	}
	return recs, nil
}

func (repo schoolRepository) ListEvents(ctx context.Context) ([]school.Event, error) {
	var recs []school.Event
	if err := repo.db.SelectContext(ctx, &recs, `SELECT id, title, description, date FROM events ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "listing events")
	}
	return recs, nil
}

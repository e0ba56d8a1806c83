package dummydb

import (
	"context"

	"github.com/trezcool/masomo-desk/core/school"
)

type schoolRepository struct {
	db     *DB
	tables *schoolTables
}

var _ school.Repository = (*schoolRepository)(nil) // interface compliance check

func NewSchoolRepository(db *DB) school.Repository {
	return &schoolRepository{db: db, tables: db.school}
}

// nextID must be called with the write lock held.
func (repo *schoolRepository) nextID(table string) int {
	repo.tables.pkCount[table]++
	return repo.tables.pkCount[table]
}

func (repo *schoolRepository) InsertAttendance(_ context.Context, rec school.Attendance) (school.Attendance, error) {
	if !repo.db.userExists(rec.UserID) {
		return school.Attendance{}, school.ErrUnknownUser
	}
	repo.tables.Lock()
	defer repo.tables.Unlock()

	rec.ID = repo.nextID("attendance")
	repo.tables.attendance = append(repo.tables.attendance, rec)
	return rec, nil
}

func (repo *schoolRepository) InsertMark(_ context.Context, rec school.Mark) (school.Mark, error) {
	if !repo.db.userExists(rec.UserID) {
		return school.Mark{}, school.ErrUnknownUser
	}
	repo.tables.Lock()
	defer repo.tables.Unlock()

	rec.ID = repo.nextID("marks")
	repo.tables.marks = append(repo.tables.marks, rec)
	return rec, nil
}

func (repo *schoolRepository) InsertAssignment(_ context.Context, rec school.Assignment) (school.Assignment, error) {
	if !repo.db.userExists(rec.UserID) {
		return school.Assignment{}, school.ErrUnknownUser
	}
	repo.tables.Lock()
	defer repo.tables.Unlock()

	if rec.Status == "" {
		rec.Status = school.StatusPending
	}
	rec.ID = repo.nextID("assignments")
	repo.tables.assignments = append(repo.tables.assignments, rec)
	return rec, nil
}

func (repo *schoolRepository) InsertProject(_ context.Context, rec school.Project) (school.Project, error) {
	if !repo.db.userExists(rec.UserID) {
		return school.Project{}, school.ErrUnknownUser
	}
	repo.tables.Lock()
	defer repo.tables.Unlock()

	if rec.Status == "" {
		rec.Status = school.StatusPending
	}
	rec.ID = repo.nextID("projects")
	repo.tables.projects = append(repo.tables.projects, rec)
	return rec, nil
}

func (repo *schoolRepository) InsertNotification(_ context.Context, rec school.Notification) (school.Notification, error) {
	if !repo.db.userExists(rec.UserID) {
		return school.Notification{}, school.ErrUnknownUser
	}
	repo.tables.Lock()
	defer repo.tables.Unlock()

	rec.ID = repo.nextID("notifications")
	repo.tables.notifications = append(repo.tables.notifications, rec)
	return rec, nil
}

func (repo *schoolRepository) InsertEvent(_ context.Context, rec school.Event) (school.Event, error) {
	repo.tables.Lock()
	defer repo.tables.Unlock()

	rec.ID = repo.nextID("events")
	repo.tables.events = append(repo.tables.events, rec)
	return rec, nil
}

func (repo *schoolRepository) ListAttendance(_ context.Context, userID int) ([]school.Attendance, error) {
	repo.tables.RLock()
	defer repo.tables.RUnlock()

	var recs []school.Attendance
	for _, r := range repo.tables.attendance {
		if r.UserID == userID {
			recs = append(recs, r)
		}
	}
	return recs, nil
}

func (repo *schoolRepository) ListMarks(_ context.Context, userID int) ([]school.Mark, error) {
	repo.tables.RLock()
	defer repo.tables.RUnlock()

	var recs []school.Mark
	for _, r := range repo.tables.marks {
		if r.UserID == userID {
			recs = append(recs, r)
		}
	}
	return recs, nil
}

func (repo *schoolRepository) ListAssignments(_ context.Context, userID int) ([]school.Assignment, error) {
	repo.tables.RLock()
	defer repo.tables.RUnlock()

	var recs []school.Assignment
	for _, r := range repo.tables.assignments {
		if r.UserID == userID {
			recs = append(recs, r)
		}
	}
	return recs, nil
}

func (repo *schoolRepository) ListAllAssignments(_ context.Context) ([]school.Assignment, error) {
	repo.tables.RLock()
	defer repo.tables.RUnlock()
	return append([]school.Assignment(nil), repo.tables.assignments...), nil
}

func (repo *schoolRepository) ListProjects(_ context.Context, userID int) ([]school.Project, error) {
	repo.tables.RLock()
	defer repo.tables.RUnlock()

	var recs []school.Project
	for _, r := range repo.tables.projects {
		if r.UserID == userID {
			recs = append(recs, r)
		}
	}
	return recs, nil
}

func (repo *schoolRepository) ListAllProjects(_ context.Context) ([]school.Project, error) {
	repo.tables.RLock()
	defer repo.tables.RUnlock()
	return append([]school.Project(nil), repo.tables.projects...), nil
}

func (repo *schoolRepository) ListNotifications(_ context.Context, userID int) ([]school.Notification, error) {
	repo.tables.RLock()
	defer repo.tables.RUnlock()

	var recs []school.Notification
	for _, r := range repo.tables.notifications {
		if r.UserID == userID {
			recs = append(recs, r)
		}
	}
	return recs, nil
}

func (repo *schoolRepository) ListEvents(_ context.Context) ([]school.Event, error) {
	repo.tables.RLock()
	defer repo.tables.RUnlock()
	return append([]school.Event(nil), repo.tables.events...), nil
}

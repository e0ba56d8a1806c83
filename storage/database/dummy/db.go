package dummydb

import (
	"sync"

	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/user"
)

type (
	// DB is an in-memory store. Tables are kept in insertion order.
	DB struct {
		user   *userTable
		school *schoolTables
	}

	userTable struct {
		sync.RWMutex
		pkCount int
		table   []user.User
	}

	schoolTables struct {
		sync.RWMutex
		pkCount       map[string]int
		attendance    []school.Attendance
		marks         []school.Mark
		assignments   []school.Assignment
		projects      []school.Project
		notifications []school.Notification
		events        []school.Event
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:   &userTable{},
		school: &schoolTables{pkCount: make(map[string]int)},
	}
	return db, nil
}

// userExists reports whether id belongs to a stored user; it takes its own read lock.
func (db *DB) userExists(id int) bool {
	db.user.RLock()
	defer db.user.RUnlock()
	for _, u := range db.user.table {
		if u.ID == id {
			return true
		}
	}
	return false
}

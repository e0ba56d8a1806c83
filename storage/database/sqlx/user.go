package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

func (repo userRepository) CheckUsernameUniqueness(ctx context.Context, username, email string) error {
	var found []user.User
	q := repo.db.Rebind(`SELECT id, username, email FROM users WHERE username = ? OR email = ?`)
	if err := repo.db.SelectContext(ctx, &found, q, username, email); err != nil {
		return errors.Wrap(err, "checking user uniqueness")
	}
	for _, usr := range found {
		if usr.Username == username {
			return user.ErrUsernameExists
		}
	}
	if len(found) > 0 {
		return user.ErrEmailExists
	}
	return nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	q := repo.db.Rebind(`
		INSERT INTO users (username, password, name, email, role)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)
	err := repo.db.QueryRowxContext(ctx, q, usr.Username, usr.Password, usr.Name, usr.Email, usr.Role).Scan(&usr.ID)
	if err != nil {
		return user.User{}, trapUserErr(err, "inserting user")
	}
	return usr, nil
}

func (repo userRepository) Authenticate(ctx context.Context, username, password string) (user.User, error) {
	var usr user.User
	q := repo.db.Rebind(`
		SELECT id, username, password, name, email, role FROM users
		WHERE username = ? AND password = ?`)
	if err := repo.db.GetContext(ctx, &usr, q, username, password); err != nil {
		return user.User{}, trapUserErr(err, "authenticating user")
	}
	return usr, nil
}

func (repo userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var usr user.User
	q := repo.db.Rebind(`SELECT id, username, password, name, email, role FROM users WHERE id = ?`)
	if err := repo.db.GetContext(ctx, &usr, q, id); err != nil {
		return user.User{}, trapUserErr(err, "finding user by ID")
	}
	return usr, nil
}

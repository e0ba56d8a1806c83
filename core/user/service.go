package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrEmailExists    = errors.New("a user with this email already exists")
	ErrUsernameExists = errors.New("a user with this username already exists")
)

type (
	Repository interface {
		CheckUsernameUniqueness(ctx context.Context, username, email string) error
		CreateUser(ctx context.Context, usr User) (User, error)
		// Authenticate returns the User whose username and password match exactly, or ErrNotFound.
		Authenticate(ctx context.Context, username, password string) (User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// constraintErr maps uniqueness errors to a core.ConstraintError on the offending field.
func constraintErr(err error) error {
	switch errors.Cause(err) {
	case ErrUsernameExists:
		return core.NewConstraintError("username", ErrUsernameExists)
	case ErrEmailExists:
		return core.NewConstraintError("email", ErrEmailExists)
	default:
		return err
	}
}

// Create validates nu and inserts a new User.
func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	if err := svc.repo.CheckUsernameUniqueness(ctx, nu.Username, nu.Email); err != nil {
		return User{}, constraintErr(err)
	}

	usr, err := svc.repo.CreateUser(ctx, User{
		Username: nu.Username,
		Password: nu.Password,
		Name:     nu.Name,
		Email:    nu.Email,
		Role:     nu.Role,
	})
	if err != nil {
		return User{}, constraintErr(err)
	}
	svc.logger.Info("user '" + usr.Username + "' added")
	return usr, nil
}

// Authenticate returns the User matching username and password. A miss is ErrNotFound.
func (svc *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if username == "" || password == "" {
		return User{}, ErrNotFound
	}
	return svc.repo.Authenticate(ctx, username, password)
}

func (svc *Service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

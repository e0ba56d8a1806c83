package user_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/user"
	"github.com/trezcool/masomo-desk/storage/database/dummy"
	"github.com/trezcool/masomo-desk/tests"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := dummydb.NewUserRepository(db)
	return user.NewService(repo, &testutil.Logger{}), repo
}

func TestService_Create(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	testutil.CreateUser(t, repo, "Awe", "awe", "awe@test.cd", "mdr", user.RoleTeacher)

	tests := []struct {
		name      string
		nu        user.NewUser
		wantRole  string
		wantField string // constraint violation on this field
		wantValid bool   // validation error
	}{
		{name: "student", nu: user.NewUser{Username: "amy", Password: "x", Name: "Amy", Email: "amy@test.cd", Role: "student"}, wantRole: user.RoleStudent},
		{name: "role defaults to student", nu: user.NewUser{Username: "bob", Password: "x", Name: "Bob", Email: "bob@test.cd"}, wantRole: user.RoleStudent},
		{name: "role is lowered", nu: user.NewUser{Username: "cat", Password: "x", Name: "Cat", Email: "cat@test.cd", Role: " Teacher "}, wantRole: user.RoleTeacher},
		{name: "duplicate username", nu: user.NewUser{Username: "awe", Password: "x", Name: "Other", Email: "other@test.cd"}, wantField: "username"},
		{name: "duplicate email", nu: user.NewUser{Username: "other", Password: "x", Name: "Other", Email: "awe@test.cd"}, wantField: "email"},
		{name: "blank name", nu: user.NewUser{Username: "dan", Password: "x", Name: " ", Email: "dan@test.cd"}, wantValid: true},
		{name: "unknown role", nu: user.NewUser{Username: "eve", Password: "x", Name: "Eve", Email: "eve@test.cd", Role: "admin"}, wantValid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Create(ctx, tt.nu)
			switch {
			case tt.wantField != "":
				require.True(t, core.IsConstraintViolation(err), "got %v", err)
				cErr := errors.Cause(err).(*core.ConstraintError)
				assert.Equal(t, tt.wantField, cErr.Field)
			case tt.wantValid:
				assert.True(t, core.IsValidationError(err), "got %v", err)
			default:
				require.NoError(t, err)
				assert.NotZero(t, usr.ID)
				assert.Equal(t, tt.wantRole, usr.Role)
			}
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	awe := testutil.CreateUser(t, repo, "Awe", "awe", "awe@test.cd", "mdr", user.RoleTeacher)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "match", username: "awe", password: "mdr"},
		{name: "wrong password", username: "awe", password: "lol", wantErr: user.ErrNotFound},
		{name: "password is case sensitive", username: "awe", password: "MDR", wantErr: user.ErrNotFound},
		{name: "unknown username", username: "lol", password: "mdr", wantErr: user.ErrNotFound},
		{name: "empty", wantErr: user.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, awe, usr)
		})
	}
}

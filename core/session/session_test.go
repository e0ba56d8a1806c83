package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/user"
	"github.com/trezcool/masomo-desk/storage/database/dummy"
	"github.com/trezcool/masomo-desk/tests"
)

func setup(t *testing.T) (*Session, user.Repository, *testutil.Logger) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := dummydb.NewUserRepository(db)
	logger := &testutil.Logger{}
	return New(user.NewService(repo, logger), logger), repo, logger
}

func TestSession_Login(t *testing.T) {
	sess, repo, logger := setup(t)
	ctx := context.Background()
	awe := testutil.CreateUser(t, repo, "Awe", "awe", "awe@test.cd", "mdr", user.RoleTeacher)
	amy := testutil.CreateUser(t, repo, "Amy", "amy", "amy@test.cd", "x", user.RoleStudent)

	// no session yet
	_, err := sess.Current()
	assert.Equal(t, ErrNoSession, err)
	assert.Equal(t, uuid.Nil, sess.ID())

	// bad credentials leave it unset
	_, err = sess.Login(ctx, "awe", "lol")
	assert.Equal(t, core.ErrAuthFailure, err)
	assert.False(t, sess.IsAuthenticated())
	assert.True(t, logger.Contains("failed login for 'awe'"))

	role, err := sess.Login(ctx, "awe", "mdr")
	require.NoError(t, err)
	assert.Equal(t, user.RoleTeacher, role)
	usr, err := sess.Current()
	require.NoError(t, err)
	assert.Equal(t, awe, usr)
	firstID := sess.ID()
	assert.NotEqual(t, uuid.Nil, firstID)

	// a failed login keeps the held identity
	_, err = sess.Login(ctx, "amy", "lol")
	assert.Equal(t, core.ErrAuthFailure, err)
	usr, _ = sess.Current()
	assert.Equal(t, awe, usr)
	assert.Equal(t, firstID, sess.ID())

	// a second login overwrites it
	role, err = sess.Login(ctx, "amy", "x")
	require.NoError(t, err)
	assert.Equal(t, user.RoleStudent, role)
	usr, _ = sess.Current()
	assert.Equal(t, amy, usr)
	assert.NotEqual(t, firstID, sess.ID())
}

func TestSession_Logout(t *testing.T) {
	sess, repo, _ := setup(t)
	testutil.CreateUser(t, repo, "Amy", "amy", "amy@test.cd", "x", user.RoleStudent)

	_, err := sess.Login(context.Background(), "amy", "x")
	require.NoError(t, err)
	require.True(t, sess.IsAuthenticated())

	sess.Logout()
	_, err = sess.Current()
	assert.Equal(t, ErrNoSession, err)
	assert.Equal(t, uuid.Nil, sess.ID())
}

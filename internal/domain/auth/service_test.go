package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemill/internal/core/apperror"
)

type stubUsers struct {
	byEmail map[string]*User
}

func (s *stubUsers) Create(_ context.Context, u *User) error {
	s.byEmail[u.Email] = u
	return nil
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return u, nil
}

func newTestService(t *testing.T) (*Service, *User) {
	t.Helper()
	user, err := NewUser("admin@mill.test", "Admin", "s3cret-pass", RoleAdmin)
	require.NoError(t, err)

	users := &stubUsers{byEmail: map[string]*User{user.Email: user}}
	return NewService(users, []byte("test-signing-key"), time.Hour), user
}

func TestLoginAndVerify(t *testing.T) {
	svc, user := newTestService(t)

	session, err := svc.Login(context.Background(), "Admin@Mill.Test", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.Email, session.User.Email)

	claims, err := svc.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "admin@mill.test", "wrong")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newTestService(t)

	_, errUnknown := svc.Login(context.Background(), "nobody@mill.test", "whatever")
	_, errWrongPw := svc.Login(context.Background(), "admin@mill.test", "wrong")
	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
}

func TestLoginInactiveUser(t *testing.T) {
	svc, user := newTestService(t)
	user.Deactivate()

	_, err := svc.Login(context.Background(), "admin@mill.test", "s3cret-pass")
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Verify("not.a.token")
	require.Error(t, err)
}

func TestShortPasswordRejected(t *testing.T) {
	_, err := NewUser("x@mill.test", "X", "short", RoleViewer)
	require.Error(t, err)
}

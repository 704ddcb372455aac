package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarloJair/charlore-api/internal/common"
	"github.com/KarloJair/charlore-api/internal/server/auth"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	codec := auth.NewCodec([]byte("test-secret"), 20*time.Minute)
	return NewService(NewMemoryRepository(), auth.NewHasher(), codec)
}

func TestService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	assert.NotContains(t, user.Password, "password123")
	assert.True(t, strings.HasPrefix(user.Password, "$argon2id$"))
	assert.True(t, auth.NewHasher().Verify("password123", user.Password))
}

func TestService_Register_Duplicate(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "otherpassword")
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := s.Authenticate(ctx, "alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Authenticate(ctx, "alice", "wrongpass")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Authenticate(ctx, "nouser", "anything")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := s.Authenticate(ctx, "nouser", "anything")
		_, errWrong := s.Authenticate(ctx, "alice", "wrongpass")
		assert.Equal(t, errUnknown, errWrong)
	})
}

type failingRepository struct{}

func (failingRepository) Create(ctx context.Context, user *User) (*User, error) {
	return nil, errors.New("connection refused")
}

func (failingRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return nil, errors.New("connection refused")
}

func (failingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return false, errors.New("connection refused")
}

func TestService_Authenticate_StoreFailureIsNotAuthFailure(t *testing.T) {
	t.Parallel()

	codec := auth.NewCodec([]byte("test-secret"), 20*time.Minute)
	s := NewService(failingRepository{}, auth.NewHasher(), codec)

	_, err := s.Authenticate(context.Background(), "alice", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestService_Login_IssuesDecodableToken(t *testing.T) {
	t.Parallel()

	codec := auth.NewCodec([]byte("test-secret"), 20*time.Minute)
	s := NewService(NewMemoryRepository(), auth.NewHasher(), codec)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	token, err := s.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	identity, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, user.ID, identity.UserID)
}

func TestService_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	s := newTestService(t)

	_, err := s.Login(context.Background(), "alice", "password123")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

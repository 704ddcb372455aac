package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/KarloJair/charlore-api/internal/common"
	"github.com/KarloJair/charlore-api/internal/server/auth"
)

// Service implements registration and credential authentication on top of
// the user store, the password hasher and the token codec.
type Service struct {
	repo   Repository
	hasher *auth.Hasher
	codec  *auth.Codec

	// digest verified against when the username does not exist, so unknown
	// usernames cost the same as wrong passwords
	equalizer string
}

func NewService(repo Repository, hasher *auth.Hasher, codec *auth.Codec) *Service {
	equalizer, _ := hasher.Hash("equalizer")

	return &Service{
		repo:      repo,
		hasher:    hasher,
		codec:     codec,
		equalizer: equalizer,
	}
}

// Register hashes the password and persists a new user. A duplicate
// username surfaces as common.ErrConflict.
func (s *Service) Register(ctx context.Context, username string, password string) (*User, error) {

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Username: username,
		Password: digest,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate looks the user up by username and verifies the password
// against the stored digest. Unknown user and wrong password both return
// common.ErrInvalidCredentials; a store failure propagates as a distinct
// error and must not be treated as an authentication failure.
func (s *Service) Authenticate(ctx context.Context, username string, password string) (*User, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.Verify(password, s.equalizer)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the credentials and mints an access token for the
// user.
func (s *Service) Login(ctx context.Context, username string, password string) (string, error) {

	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := s.codec.Encode(user.Username, user.ID)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type fakeTokens struct{}

func (fakeTokens) Generate(ctx context.Context, user User) (string, error) {
	return "token-" + user.ID.String(), nil
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokens{})
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"missing at sign", "not-an-email", "secret1", ErrInvalidEmail},
		{"whitespace in email", "a b@example.com", "secret1", ErrInvalidEmail},
		{"too short password", "a@example.com", "ab1", ErrWeakPassword},
		{"password without letters", "a@example.com", "123456", ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, "Dana", tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokens{})
	ctx := context.Background()

	res, err := svc.Register(ctx, "Dana", "Dana@Example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", res.User.Email)
	assert.NotEmpty(t, res.Token)

	// duplicate registration
	_, err = svc.Register(ctx, "Dana", "dana@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	// login, email case-insensitive
	got, err := svc.Login(ctx, "DANA@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, got.User.ID)

	// wrong password and unknown user fail identically
	_, err = svc.Login(ctx, "dana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

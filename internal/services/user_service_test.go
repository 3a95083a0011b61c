package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	svc := NewUserService(s.users)

	u, err := svc.Create(ctx, CreateUserInput{
		Name:         " Neha ",
		Email:        "Neha@Example.com",
		Password:     "s3cret",
		Demographics: map[string]any{"skills": []any{"SQL"}, "location": nil},
	})
	require.NoError(t, err)
	assert.Equal(t, "Neha", u.Name)
	assert.Equal(t, "neha@example.com", u.Email)
	assert.NotContains(t, u.Demographics, "location")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))

	_, err = svc.Create(ctx, CreateUserInput{Name: "Other", Email: "NEHA@example.com"})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
	var ae *utils.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, u.ID, ae.Meta["user_id"])
}

func TestUserCreateValidation(t *testing.T) {
	svc := NewUserService(newStores(t).users)

	for _, in := range []CreateUserInput{
		{Name: "", Email: "a@example.com"},
		{Name: "A", Email: ""},
		{Name: "A", Email: "not-an-email"},
		{Name: "A", Email: "Asha <asha@example.com>"},
	} {
		_, err := svc.Create(context.Background(), in)
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument), in)
	}
}

func TestUserUpdateDemographicsMerges(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Om")
	svc := NewUserService(s.users)

	got, err := svc.UpdateDemographics(ctx, u.ID, map[string]any{"location": "Pune", "goals": nil})
	require.NoError(t, err)
	assert.Equal(t, "Pune", got.Demographics["location"])
	assert.Equal(t, "B.Tech", got.Demographics["education"])
	assert.NotContains(t, got.Demographics, "goals")

	stored, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pune", stored.Demographics["location"])

	_, err = svc.UpdateDemographics(ctx, u.ID, nil)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestUserListDemo(t *testing.T) {
	s := newStores(t)
	for i := 0; i < 12; i++ {
		s.addUser(t, "demo")
	}

	got, err := NewUserService(s.users).ListDemo(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, demoUserLimit)
}

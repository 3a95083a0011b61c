package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

func TestMentorConnectLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Gita")
	m := s.addMentor(t, "Hari", "Finance", "Investment Banking")
	other := s.addMentor(t, "Ivy", "Finance", "Audit")
	svc := NewMentorService(s.users, s.mentors, s.conns, 50)

	conn, err := svc.Connect(ctx, u.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionPending, conn.Status)

	_, err = svc.Connect(ctx, u.ID, m.ID)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
	var ae *utils.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, models.ConnectionPending, ae.Meta["status"])
	assert.Equal(t, conn.ID, ae.Meta["connection_id"])

	_, err = svc.Accept(ctx, other.ID, conn.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound), "another mentor cannot decide")

	accepted, err := svc.Accept(ctx, m.ID, conn.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionAccepted, accepted.Status)
	assert.NotNil(t, accepted.DecidedAt)

	_, err = svc.Reject(ctx, m.ID, conn.ID)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	mine, err := s.mentors.ListAcceptedForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, m.ID, mine[0].ID)
}

func TestMentorReject(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Jai")
	m := s.addMentor(t, "Kiran", "Technology", "Cloud")
	svc := NewMentorService(s.users, s.mentors, s.conns, 50)

	conn, err := svc.Connect(ctx, u.ID, m.ID)
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, m.ID, conn.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionRejected, rejected.Status)

	stored, err := s.conns.GetByPair(ctx, u.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionRejected, stored.Status)

	_, err = svc.Accept(ctx, m.ID, uuid.NewString())
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestMentorConnectMissingParties(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	u := s.addUser(t, "Lata")
	m := s.addMentor(t, "Mohan", "Healthcare", "Nursing")
	svc := NewMentorService(s.users, s.mentors, s.conns, 50)

	_, err := svc.Connect(ctx, uuid.NewString(), m.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	_, err = svc.Connect(ctx, u.ID, uuid.NewString())
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	_, err = svc.Connect(ctx, u.ID, "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestMentorListFiltersAndCap(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	s.addMentor(t, "A", "Technology", "Backend")
	s.addMentor(t, "B", "Technology", "Frontend")
	s.addMentor(t, "C", "Technology", "Backend")
	s.addMentor(t, "D", "Design", "UX")

	got, err := NewMentorService(s.users, s.mentors, s.conns, 2).List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = NewMentorService(s.users, s.mentors, s.conns, 50).List(ctx, "Technology", "Backend")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
}

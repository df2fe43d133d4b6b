package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewSubscriptionRepository(db, nil)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	require.NoError(t, repo.Subscribe(ctx, bob.UserID, alice.UserID))
	require.NoError(t, repo.Subscribe(ctx, carol.UserID, alice.UserID))
	// repeated subscribe is a no-op
	require.NoError(t, repo.Subscribe(ctx, bob.UserID, alice.UserID))
	require.NoError(t, repo.Subscribe(ctx, alice.UserID, carol.UserID))

	subscribers, err := repo.CountSubscribers(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, subscribers)

	subscribedTo, err := repo.CountSubscribedTo(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, subscribedTo)

	ok, err := repo.IsSubscribed(ctx, bob.UserID, alice.UserID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsSubscribed(ctx, alice.UserID, bob.UserID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Unsubscribe(ctx, bob.UserID, alice.UserID))
	require.NoError(t, repo.Unsubscribe(ctx, bob.UserID, alice.UserID))

	subscribers, err = repo.CountSubscribers(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, subscribers)
}

func TestSubscriptionRepository_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db, nil)
	subscriber, channel := uuid.New(), uuid.New()

	mock.ExpectExec("INSERT INTO subscriptions").
		WithArgs(sqlmock.AnyArg(), subscriber, channel).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Subscribe(context.Background(), subscriber, channel))

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM subscriptions WHERE channel_id").
		WithArgs(channel).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	n, err := repo.CountSubscribers(context.Background(), channel)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(subscriber, channel).
		WillReturnError(errors.New("timeout"))
	_, err = repo.IsSubscribed(context.Background(), subscriber, channel)
	assert.EqualError(t, err, "timeout")

	assert.NoError(t, mock.ExpectationsWereMet())
}

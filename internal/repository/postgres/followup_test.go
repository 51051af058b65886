package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/romidental/reception-api/internal/model"
	apperrors "github.com/romidental/reception-api/pkg/errors"
)

func TestUpdateStatusSetsCompletedAtOnCompletion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowUpRepository(db)
	id := uuid.New()

	mock.ExpectExec("UPDATE follow_ups").
		WithArgs(model.FollowUpStatusCompleted, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, model.FollowUpStatusCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusClearsCompletedAtOtherwise(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowUpRepository(db)
	id := uuid.New()

	mock.ExpectExec("UPDATE follow_ups").
		WithArgs(model.FollowUpStatusCancelled, nil, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, model.FollowUpStatusCancelled)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusUnknownFollowUp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowUpRepository(db)
	id := uuid.New()

	mock.ExpectExec("UPDATE follow_ups").
		WithArgs(model.FollowUpStatusCompleted, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, model.FollowUpStatusCompleted)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

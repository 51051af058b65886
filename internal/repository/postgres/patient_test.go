package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/romidental/reception-api/pkg/errors"
)

func TestGetPatientByPhone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM patients").
		WithArgs("+355671234567").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "phone_number", "email", "created_at", "updated_at",
		}).AddRow(id, "John Doe", "+355671234567", nil, now, now))

	patient, err := repo.GetByPhone(context.Background(), "+355671234567")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", patient.Name)
	assert.Equal(t, "+355671234567", patient.PhoneNumber)
	assert.Nil(t, patient.Email)
}

func TestGetPatientByPhoneMiss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM patients").
		WithArgs("+355000000000").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "phone_number", "email", "created_at", "updated_at",
		}))

	patient, err := repo.GetByPhone(context.Background(), "+355000000000")
	assert.Nil(t, patient)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

package leaguerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mrusso19/schedina/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByName(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name       string
		leagueName string
		mockSetup  func()
		expectErr  bool
		result     *domain.League
	}{
		{
			name:       "League found",
			leagueName: "friends-cup",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "password_hash", "created_at"}).
					AddRow(1, "friends-cup", "hashed_password", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password_hash, created_at")).
					WithArgs("friends-cup").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.League{
				ID:           1,
				Name:         "friends-cup",
				PasswordHash: "hashed_password",
				CreatedAt:    createdAt,
			},
		},
		{
			name:       "League not found",
			leagueName: "no-such-league",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password_hash, created_at")).
					WithArgs("no-such-league").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:       "Database error",
			leagueName: "friends-cup",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password_hash, created_at")).
					WithArgs("friends-cup").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByName(context.Background(), tt.leagueName)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		league    *domain.League
		mockSetup func()
		expectErr error
	}{
		{
			name:   "League created",
			league: &domain.League{Name: "friends-cup", PasswordHash: "hashed_password"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO leagues (name, password_hash)")).
					WithArgs("friends-cup", "hashed_password").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
			},
			expectErr: nil,
		},
		{
			name:   "Database error",
			league: &domain.League{Name: "friends-cup", PasswordHash: "hashed_password"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO leagues (name, password_hash)")).
					WithArgs("friends-cup", "hashed_password").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.league)
			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

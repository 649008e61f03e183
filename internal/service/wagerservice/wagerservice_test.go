package wagerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/internal/matches"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo, *MockLeagueRepo, *MockStandingRepo, *matches.MockSource) {
	ctrl := gomock.NewController(t)
	wagerRepo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	leagueRepo := NewMockLeagueRepo(ctrl)
	standingRepo := NewMockStandingRepo(ctrl)
	source := matches.NewMockSource(ctrl)

	service := New(wagerRepo, userRepo, leagueRepo, standingRepo, source)
	defer ctrl.Finish()
	return service, wagerRepo, userRepo, leagueRepo, standingRepo, source
}

func TestPlaceWager(t *testing.T) {
	service, wagerRepo, userRepo, leagueRepo, standingRepo, _ := NewMock(t)

	league := &domain.League{ID: 2, Name: "friends-cup"}
	standing := &domain.Standing{ID: 10, UserID: 1, LeagueID: 2}
	user := &domain.User{ID: 1, Credits: 1000}

	tests := []struct {
		name          string
		outcome       string
		score         string
		stake         int
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Wager placed",
			outcome: "HOME",
			score:   "2-1",
			stake:   100,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				standingRepo.EXPECT().GetStanding(context.Background(), 1, 2).Return(standing, nil)
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(user, nil)
				wagerRepo.EXPECT().FindByUserLeagueMatch(context.Background(), 1, 2, int64(497555)).Return(nil, nil)
				wagerRepo.EXPECT().Place(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, wager *domain.Wager) error {
					wager.ID = 5
					return nil
				})
			},
			expectedError: nil,
		},
		{
			name:    "League not found",
			outcome: "HOME",
			score:   "2-1",
			stake:   100,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(nil, nil)
			},
			expectedError: domain.ErrLeagueNotFound,
		},
		{
			name:    "Not a league member",
			outcome: "HOME",
			score:   "2-1",
			stake:   100,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				standingRepo.EXPECT().GetStanding(context.Background(), 1, 2).Return(nil, nil)
			},
			expectedError: domain.ErrNotLeagueMember,
		},
		{
			name:    "Zero stake rejected",
			outcome: "HOME",
			score:   "2-1",
			stake:   0,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				standingRepo.EXPECT().GetStanding(context.Background(), 1, 2).Return(standing, nil)
			},
			expectedError: domain.ErrInvalidStake,
		},
		{
			name:    "Stake exceeds balance",
			outcome: "HOME",
			score:   "2-1",
			stake:   1500,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				standingRepo.EXPECT().GetStanding(context.Background(), 1, 2).Return(standing, nil)
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(user, nil)
			},
			expectedError: domain.ErrInsufficientCredits,
		},
		{
			name:    "Invalid outcome",
			outcome: "WIN",
			score:   "2-1",
			stake:   100,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				standingRepo.EXPECT().GetStanding(context.Background(), 1, 2).Return(standing, nil)
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(user, nil)
			},
			expectedError: domain.ErrInvalidOutcome,
		},
		{
			name:    "Invalid score",
			outcome: "HOME",
			score:   "2:1",
			stake:   100,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				standingRepo.EXPECT().GetStanding(context.Background(), 1, 2).Return(standing, nil)
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(user, nil)
			},
			expectedError: domain.ErrInvalidScore,
		},
		{
			name:    "Duplicate wager",
			outcome: "HOME",
			score:   "2-1",
			stake:   100,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				standingRepo.EXPECT().GetStanding(context.Background(), 1, 2).Return(standing, nil)
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(user, nil)
				wagerRepo.EXPECT().FindByUserLeagueMatch(context.Background(), 1, 2, int64(497555)).Return(&domain.Wager{ID: 5}, nil)
			},
			expectedError: domain.ErrWagerExists,
		},
		{
			name:    "Concurrent placement drains balance",
			outcome: "HOME",
			score:   "2-1",
			stake:   100,
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				standingRepo.EXPECT().GetStanding(context.Background(), 1, 2).Return(standing, nil)
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(user, nil)
				wagerRepo.EXPECT().FindByUserLeagueMatch(context.Background(), 1, 2, int64(497555)).Return(nil, nil)
				wagerRepo.EXPECT().Place(context.Background(), gomock.Any()).Return(domain.ErrInsufficientCredits)
			},
			expectedError: domain.ErrInsufficientCredits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wager, err := service.PlaceWager(context.Background(), 1, "friends-cup", 497555, tt.outcome, tt.score, tt.stake)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, wager)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, wager.ID)
				assert.Equal(t, domain.OutcomeHome, wager.Outcome)
				assert.Equal(t, domain.Score{Home: 2, Away: 1}, wager.Score)
			}
		})
	}
}

func TestGetWagers(t *testing.T) {
	service, wagerRepo, _, leagueRepo, _, _ := NewMock(t)

	league := &domain.League{ID: 2, Name: "friends-cup"}
	wagers := []domain.Wager{
		{ID: 5, UserID: 1, LeagueID: 2, MatchID: 497555, Outcome: domain.OutcomeHome, Stake: 100, PlacedAt: time.Now()},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Wager
		expectedError error
	}{
		{
			name: "Wagers returned",
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				wagerRepo.EXPECT().FindByUserLeague(context.Background(), 1, 2).Return(wagers, nil)
			},
			expected:      wagers,
			expectedError: nil,
		},
		{
			name: "League not found",
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(nil, nil)
			},
			expected:      nil,
			expectedError: domain.ErrLeagueNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				leagueRepo.EXPECT().FindByName(context.Background(), "friends-cup").Return(league, nil)
				wagerRepo.EXPECT().FindByUserLeague(context.Background(), 1, 2).Return(nil, errors.New("database error"))
			},
			expected:      nil,
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.GetWagers(context.Background(), 1, "friends-cup")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestUpcomingMatches(t *testing.T) {
	service, _, _, _, _, source := NewMock(t)

	t.Run("Limited to the next fixtures", func(t *testing.T) {
		fixtures := make([]domain.Match, upcomingLimit+4)
		for i := range fixtures {
			fixtures[i] = domain.Match{ID: int64(i + 1), Status: matches.StatusScheduled}
		}
		source.EXPECT().List(context.Background(), matches.StatusScheduled).Return(fixtures, nil)

		got, err := service.UpcomingMatches(context.Background())
		assert.NoError(t, err)
		assert.Len(t, got, upcomingLimit)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("Source failure surfaces", func(t *testing.T) {
		source.EXPECT().List(context.Background(), matches.StatusScheduled).Return(nil, errors.New("transport error"))

		got, err := service.UpcomingMatches(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

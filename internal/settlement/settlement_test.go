package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/mrusso19/schedina/internal/config"
	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/internal/matches"
	"github.com/mrusso19/schedina/internal/service/wagerservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *wagerservice.MockRepo, *matches.MockSource) {
	ctrl := gomock.NewController(t)
	wagerRepo := wagerservice.NewMockRepo(ctrl)
	source := matches.NewMockSource(ctrl)

	cfg := &config.Config{SettleInterval: 300}
	service := New(cfg, wagerRepo, source)
	defer ctrl.Finish()
	return service, wagerRepo, source
}

func finishedMatch(id int64, home, away int) domain.Match {
	return domain.Match{
		ID:        id,
		Status:    matches.StatusFinished,
		HomeScore: &home,
		AwayScore: &away,
	}
}

func TestEvaluate(t *testing.T) {
	result := domain.Score{Home: 2, Away: 1}
	outcome := result.Outcome()

	tests := []struct {
		name           string
		wager          domain.Wager
		expectedCredit int
		expectedPoints int
	}{
		{
			name:           "Exact score doubles the stake",
			wager:          domain.Wager{Outcome: domain.OutcomeHome, Score: domain.Score{Home: 2, Away: 1}, Stake: 100},
			expectedCredit: 200,
			expectedPoints: 5,
		},
		{
			name:           "Correct outcome refunds the stake",
			wager:          domain.Wager{Outcome: domain.OutcomeHome, Score: domain.Score{Home: 1, Away: 0}, Stake: 100},
			expectedCredit: 100,
			expectedPoints: 3,
		},
		{
			name:           "Wrong outcome costs twice the stake",
			wager:          domain.Wager{Outcome: domain.OutcomeAway, Score: domain.Score{Home: 0, Away: 2}, Stake: 100},
			expectedCredit: -200,
			expectedPoints: 0,
		},
		{
			name:           "Wrong outcome with matching digits still misses",
			wager:          domain.Wager{Outcome: domain.OutcomeDraw, Score: domain.Score{Home: 2, Away: 1}, Stake: 50},
			expectedCredit: -100,
			expectedPoints: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creditDelta, points := Evaluate(tt.wager, outcome, result)
			assert.Equal(t, tt.expectedCredit, creditDelta)
			assert.Equal(t, tt.expectedPoints, points)
		})
	}
}

func TestSettle(t *testing.T) {
	t.Run("Source failure degrades to a no-op", func(t *testing.T) {
		service, _, source := NewMock(t)
		source.EXPECT().List(gomock.Any(), matches.StatusFinished).Return(nil, errors.New("transport error"))

		count := service.Settle(context.Background())
		assert.Equal(t, 0, count)
	})

	t.Run("No finished matches settles nothing", func(t *testing.T) {
		service, _, source := NewMock(t)
		source.EXPECT().List(gomock.Any(), matches.StatusFinished).Return([]domain.Match{}, nil)

		count := service.Settle(context.Background())
		assert.Equal(t, 0, count)
	})

	t.Run("Finished match without a full-time score is skipped", func(t *testing.T) {
		service, _, source := NewMock(t)
		source.EXPECT().List(gomock.Any(), matches.StatusFinished).
			Return([]domain.Match{{ID: 1, Status: matches.StatusFinished}}, nil)

		count := service.Settle(context.Background())
		assert.Equal(t, 0, count)
	})

	t.Run("Wagers evaluated with the payout matrix", func(t *testing.T) {
		service, wagerRepo, source := NewMock(t)

		match := finishedMatch(497555, 2, 1)
		wagers := []domain.Wager{
			{ID: 5, UserID: 1, LeagueID: 2, MatchID: 497555, Outcome: domain.OutcomeHome, Score: domain.Score{Home: 2, Away: 1}, Stake: 100},
			{ID: 6, UserID: 3, LeagueID: 2, MatchID: 497555, Outcome: domain.OutcomeHome, Score: domain.Score{Home: 1, Away: 0}, Stake: 100},
			{ID: 7, UserID: 4, LeagueID: 2, MatchID: 497555, Outcome: domain.OutcomeAway, Score: domain.Score{Home: 0, Away: 2}, Stake: 100},
		}

		source.EXPECT().List(gomock.Any(), matches.StatusFinished).Return([]domain.Match{match}, nil)
		wagerRepo.EXPECT().FindUnevaluatedByMatch(gomock.Any(), int64(497555)).Return(wagers, nil)
		wagerRepo.EXPECT().Settle(gomock.Any(), wagers[0], 200, 5).Return(true, nil)
		wagerRepo.EXPECT().Settle(gomock.Any(), wagers[1], 100, 3).Return(true, nil)
		wagerRepo.EXPECT().Settle(gomock.Any(), wagers[2], -200, 0).Return(true, nil)

		count := service.Settle(context.Background())
		assert.Equal(t, 3, count)
	})

	t.Run("Wager settled by a concurrent run is not counted", func(t *testing.T) {
		service, wagerRepo, source := NewMock(t)

		match := finishedMatch(497555, 1, 1)
		wagers := []domain.Wager{
			{ID: 5, UserID: 1, LeagueID: 2, MatchID: 497555, Outcome: domain.OutcomeDraw, Score: domain.Score{Home: 1, Away: 1}, Stake: 100},
			{ID: 6, UserID: 3, LeagueID: 2, MatchID: 497555, Outcome: domain.OutcomeDraw, Score: domain.Score{Home: 0, Away: 0}, Stake: 100},
		}

		source.EXPECT().List(gomock.Any(), matches.StatusFinished).Return([]domain.Match{match}, nil)
		wagerRepo.EXPECT().FindUnevaluatedByMatch(gomock.Any(), int64(497555)).Return(wagers, nil)
		wagerRepo.EXPECT().Settle(gomock.Any(), wagers[0], 200, 5).Return(false, nil)
		wagerRepo.EXPECT().Settle(gomock.Any(), wagers[1], 100, 3).Return(true, nil)

		count := service.Settle(context.Background())
		assert.Equal(t, 1, count)
	})

	t.Run("One failing wager does not block the rest", func(t *testing.T) {
		service, wagerRepo, source := NewMock(t)

		match := finishedMatch(497555, 0, 3)
		wagers := []domain.Wager{
			{ID: 5, UserID: 1, LeagueID: 2, MatchID: 497555, Outcome: domain.OutcomeAway, Score: domain.Score{Home: 0, Away: 3}, Stake: 100},
			{ID: 6, UserID: 3, LeagueID: 2, MatchID: 497555, Outcome: domain.OutcomeHome, Score: domain.Score{Home: 1, Away: 0}, Stake: 100},
		}

		source.EXPECT().List(gomock.Any(), matches.StatusFinished).Return([]domain.Match{match}, nil)
		wagerRepo.EXPECT().FindUnevaluatedByMatch(gomock.Any(), int64(497555)).Return(wagers, nil)
		wagerRepo.EXPECT().Settle(gomock.Any(), wagers[0], 200, 5).Return(false, errors.New("database error"))
		wagerRepo.EXPECT().Settle(gomock.Any(), wagers[1], -200, 0).Return(true, nil)

		count := service.Settle(context.Background())
		assert.Equal(t, 1, count)
	})

	t.Run("Repository failure for one match is isolated", func(t *testing.T) {
		service, wagerRepo, source := NewMock(t)

		broken := finishedMatch(1, 1, 0)
		healthy := finishedMatch(2, 0, 0)
		wagers := []domain.Wager{
			{ID: 9, UserID: 1, LeagueID: 2, MatchID: 2, Outcome: domain.OutcomeDraw, Score: domain.Score{Home: 0, Away: 0}, Stake: 10},
		}

		source.EXPECT().List(gomock.Any(), matches.StatusFinished).Return([]domain.Match{broken, healthy}, nil)
		wagerRepo.EXPECT().FindUnevaluatedByMatch(gomock.Any(), int64(1)).Return(nil, errors.New("database error"))
		wagerRepo.EXPECT().FindUnevaluatedByMatch(gomock.Any(), int64(2)).Return(wagers, nil)
		wagerRepo.EXPECT().Settle(gomock.Any(), wagers[0], 20, 5).Return(true, nil)

		count := service.Settle(context.Background())
		assert.Equal(t, 1, count)
	})
}

package wagerservice

import (
	"context"
	"time"

	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/internal/matches"
	"go.uber.org/zap"
)

// upcomingLimit bounds how many scheduled fixtures are offered for betting.
const upcomingLimit = 8

type Repo interface {
	FindByUserLeagueMatch(ctx context.Context, userID, leagueID int, matchID int64) (*domain.Wager, error)
	FindByUserLeague(ctx context.Context, userID, leagueID int) ([]domain.Wager, error)
	FindUnevaluatedByMatch(ctx context.Context, matchID int64) ([]domain.Wager, error)
	Place(ctx context.Context, wager *domain.Wager) error
	Settle(ctx context.Context, wager domain.Wager, creditDelta, points int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type LeagueRepo interface {
	FindByName(ctx context.Context, name string) (*domain.League, error)
}

type StandingRepo interface {
	GetStanding(ctx context.Context, userID, leagueID int) (*domain.Standing, error)
}

type Service struct {
	wagerRepo    Repo
	userRepo     UserRepo
	leagueRepo   LeagueRepo
	standingRepo StandingRepo
	source       matches.Source
}

func New(wagerRepo Repo, userRepo UserRepo, leagueRepo LeagueRepo, standingRepo StandingRepo, source matches.Source) *Service {
	return &Service{
		wagerRepo:    wagerRepo,
		userRepo:     userRepo,
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
		source:       source,
	}
}

// PlaceWager validates a prediction and records it, debiting the stake from
// the bettor's balance. Preconditions are checked in order; the first
// failure wins and nothing is mutated. The debit and the insert commit
// together in the repository transaction.
func (s *Service) PlaceWager(ctx context.Context, userID int, leagueName string, matchID int64, outcome, score string, stake int) (*domain.Wager, error) {
	league, err := s.leagueRepo.FindByName(ctx, leagueName)
	if err != nil {
		return nil, err
	}
	if league == nil {
		return nil, domain.ErrLeagueNotFound
	}
	standing, err := s.standingRepo.GetStanding(ctx, userID, league.ID)
	if err != nil {
		return nil, err
	}
	if standing == nil {
		return nil, domain.ErrNotLeagueMember
	}

	if stake <= 0 {
		return nil, domain.ErrInvalidStake
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		zap.L().Error("can't load bettor", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.ErrInsufficientCredits
	}
	if stake > user.Credits {
		return nil, domain.ErrInsufficientCredits
	}
	parsedOutcome, err := domain.ParseOutcome(outcome)
	if err != nil {
		return nil, err
	}
	parsedScore, err := domain.ParseScore(score)
	if err != nil {
		return nil, err
	}
	existing, err := s.wagerRepo.FindByUserLeagueMatch(ctx, userID, league.ID, matchID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("wager already placed", zap.Int("userID", userID), zap.Int64("matchID", matchID))
		return nil, domain.ErrWagerExists
	}

	wager := &domain.Wager{
		UserID:   userID,
		LeagueID: league.ID,
		MatchID:  matchID,
		Outcome:  parsedOutcome,
		Score:    parsedScore,
		Stake:    stake,
		PlacedAt: time.Now(),
	}

	// The repository re-checks the balance under a row lock: a concurrent
	// placement may have drained it since the read above.
	if err := s.wagerRepo.Place(ctx, wager); err != nil {
		zap.L().Error("can't place wager", zap.Error(err))
		return nil, err
	}

	zap.L().Info("wager placed",
		zap.Int("userID", userID),
		zap.Int64("matchID", matchID),
		zap.Int("stake", stake),
	)
	return wager, nil
}

// GetWagers lists the caller's wagers in a league, pending first, newest
// match first.
func (s *Service) GetWagers(ctx context.Context, userID int, leagueName string) ([]domain.Wager, error) {
	league, err := s.leagueRepo.FindByName(ctx, leagueName)
	if err != nil {
		return nil, err
	}
	if league == nil {
		return nil, domain.ErrLeagueNotFound
	}
	wagers, err := s.wagerRepo.FindByUserLeague(ctx, userID, league.ID)
	if err != nil {
		zap.L().Error("failed to get wagers", zap.Error(err))
		return nil, err
	}
	return wagers, nil
}

// UpcomingMatches returns the next scheduled fixtures open for predictions.
func (s *Service) UpcomingMatches(ctx context.Context) ([]domain.Match, error) {
	fixtures, err := s.source.List(ctx, matches.StatusScheduled)
	if err != nil {
		zap.L().Error("failed to fetch scheduled matches", zap.Error(err))
		return nil, err
	}
	if len(fixtures) > upcomingLimit {
		fixtures = fixtures[:upcomingLimit]
	}
	return fixtures, nil
}

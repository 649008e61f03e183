package leagueservice

import (
	"context"

	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/pkg/auth"
	"go.uber.org/zap"
)

// MaxMembers caps how many players a league can hold.
const MaxMembers = 12

type LeagueRepo interface {
	FindByName(ctx context.Context, name string) (*domain.League, error)
	Create(ctx context.Context, league *domain.League) (*domain.League, error)
}

type StandingRepo interface {
	GetStanding(ctx context.Context, userID, leagueID int) (*domain.Standing, error)
	CreateStanding(ctx context.Context, userID, leagueID int) (*domain.Standing, error)
	CountMembers(ctx context.Context, leagueID int) (int, error)
	Leaderboard(ctx context.Context, leagueID int) ([]domain.LeaderboardEntry, error)
}

type Service struct {
	leagueRepo   LeagueRepo
	standingRepo StandingRepo
	hashService  auth.HashServiceInterface
}

func New(leagueRepo LeagueRepo, standingRepo StandingRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
		hashService:  hashService,
	}
}

// CreateLeague registers a new league and joins the founder with a zero
// standing.
func (s *Service) CreateLeague(ctx context.Context, userID int, name, password string) (*domain.League, error) {
	existing, err := s.leagueRepo.FindByName(ctx, name)
	if err != nil {
		zap.L().Error("can't find league", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("league already exists", zap.String("name", name))
		return nil, domain.ErrLeagueExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash league password", zap.Error(err))
		return nil, err
	}

	league, err := s.leagueRepo.Create(ctx, &domain.League{Name: name, PasswordHash: hashedPassword})
	if err != nil {
		zap.L().Error("can't create league", zap.Error(err))
		return nil, err
	}

	if _, err := s.standingRepo.CreateStanding(ctx, userID, league.ID); err != nil {
		zap.L().Error("can't create founder standing", zap.Error(err))
		return nil, err
	}

	zap.L().Info("league created", zap.String("name", name), zap.Int("founder", userID))
	return league, nil
}

// JoinLeague verifies the league password, enforces the member cap and adds
// the user with a zero standing. Joining a league twice is a no-op.
func (s *Service) JoinLeague(ctx context.Context, userID int, name, password string) (*domain.League, error) {
	league, err := s.leagueRepo.FindByName(ctx, name)
	if err != nil {
		zap.L().Error("can't find league", zap.Error(err))
		return nil, err
	}
	if league == nil {
		return nil, domain.ErrLeagueNotFound
	}
	if ok := s.hashService.ComparePassword(league.PasswordHash, password); !ok {
		return nil, domain.ErrInvalidLeagueCredentials
	}

	standing, err := s.standingRepo.GetStanding(ctx, userID, league.ID)
	if err != nil {
		zap.L().Error("can't get standing", zap.Error(err))
		return nil, err
	}
	if standing != nil {
		return league, nil
	}

	count, err := s.standingRepo.CountMembers(ctx, league.ID)
	if err != nil {
		zap.L().Error("can't count league members", zap.Error(err))
		return nil, err
	}
	if count >= MaxMembers {
		return nil, domain.ErrLeagueFull
	}

	if _, err := s.standingRepo.CreateStanding(ctx, userID, league.ID); err != nil {
		zap.L().Error("can't create standing", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user joined league", zap.Int("userID", userID), zap.String("name", name))
	return league, nil
}

// Leaderboard returns the league table ordered by points, then credits, then
// join order.
func (s *Service) Leaderboard(ctx context.Context, name string) ([]domain.LeaderboardEntry, error) {
	league, err := s.leagueRepo.FindByName(ctx, name)
	if err != nil {
		zap.L().Error("can't find league", zap.Error(err))
		return nil, err
	}
	if league == nil {
		return nil, domain.ErrLeagueNotFound
	}

	entries, err := s.standingRepo.Leaderboard(ctx, league.ID)
	if err != nil {
		zap.L().Error("can't get leaderboard", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

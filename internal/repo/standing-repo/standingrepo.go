package standingrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetStanding(ctx context.Context, userID, leagueID int) (*domain.Standing, error) {
	query := `
        SELECT id, user_id, league_id, points
        FROM standings
        WHERE user_id = $1 AND league_id = $2
    `
	var standing domain.Standing
	err := r.db.QueryRow(ctx, query, userID, leagueID).
		Scan(&standing.ID, &standing.UserID, &standing.LeagueID, &standing.Points)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get standing", zap.Error(err))
		return nil, err
	}
	return &standing, nil
}

func (r *Repository) CreateStanding(ctx context.Context, userID, leagueID int) (*domain.Standing, error) {
	query := `
        INSERT INTO standings (user_id, league_id, points)
        VALUES ($1, $2, 0)
        ON CONFLICT (user_id, league_id) DO NOTHING
        RETURNING id, user_id, league_id, points
    `
	var standing domain.Standing
	err := r.db.QueryRow(ctx, query, userID, leagueID).
		Scan(&standing.ID, &standing.UserID, &standing.LeagueID, &standing.Points)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Row already existed; membership is idempotent.
			return r.GetStanding(ctx, userID, leagueID)
		}
		zap.L().Error("can't create standing", zap.Error(err))
		return nil, err
	}
	return &standing, nil
}

func (r *Repository) CountMembers(ctx context.Context, leagueID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM standings WHERE league_id = $1`, leagueID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count league members", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Leaderboard(ctx context.Context, leagueID int) ([]domain.LeaderboardEntry, error) {
	query := `
        SELECT u.team, s.points, u.credits
        FROM standings s
        JOIN users u ON u.id = s.user_id
        WHERE s.league_id = $1
        ORDER BY s.points DESC, u.credits DESC, s.id ASC
    `
	rows, err := r.db.Query(ctx, query, leagueID)
	if err != nil {
		zap.L().Error("can't query leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		err := rows.Scan(&entry.Team, &entry.Points, &entry.Credits)
		if err != nil {
			zap.L().Error("can't scan leaderboard row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

package leaguerepo

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

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.League, error) {
	query := `
        SELECT id, name, password_hash, created_at
        FROM leagues
        WHERE name = $1
    `
	var league domain.League
	err := r.db.QueryRow(ctx, query, name).Scan(&league.ID, &league.Name, &league.PasswordHash, &league.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find league", zap.Error(err))
		return nil, err
	}
	return &league, nil
}

func (r *Repository) Create(ctx context.Context, league *domain.League) (*domain.League, error) {
	query := `
		INSERT INTO leagues (name, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, league.Name, league.PasswordHash).Scan(&league.ID, &league.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrLeagueExists
		}
		zap.L().Error("can't save league", zap.Error(err))
		return nil, err
	}
	return league, nil
}

package wagerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanWager(row pgx.Row) (*domain.Wager, error) {
	var wager domain.Wager
	var outcome, score string
	err := row.Scan(&wager.ID, &wager.UserID, &wager.LeagueID, &wager.MatchID,
		&outcome, &score, &wager.Stake, &wager.Evaluated, &wager.PlacedAt)
	if err != nil {
		return nil, err
	}
	wager.Outcome = domain.Outcome(outcome)
	wager.Score, err = domain.ParseScore(score)
	if err != nil {
		return nil, err
	}
	return &wager, nil
}

func (r *Repository) FindByUserLeagueMatch(ctx context.Context, userID, leagueID int, matchID int64) (*domain.Wager, error) {
	query := `
        SELECT id, user_id, league_id, match_id, outcome, score, stake, evaluated, placed_at
        FROM wagers
        WHERE user_id = $1 AND league_id = $2 AND match_id = $3
    `
	wager, err := scanWager(r.db.QueryRow(ctx, query, userID, leagueID, matchID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find wager", zap.Error(err))
		return nil, err
	}
	return wager, nil
}

func (r *Repository) FindByUserLeague(ctx context.Context, userID, leagueID int) ([]domain.Wager, error) {
	query := `
        SELECT id, user_id, league_id, match_id, outcome, score, stake, evaluated, placed_at
        FROM wagers
        WHERE user_id = $1 AND league_id = $2
        ORDER BY evaluated ASC, match_id DESC
    `
	rows, err := r.db.Query(ctx, query, userID, leagueID)
	if err != nil {
		zap.L().Error("can't get wagers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wagers []domain.Wager
	for rows.Next() {
		wager, err := scanWager(rows)
		if err != nil {
			zap.L().Error("can't scan wager row", zap.Error(err))
			return nil, err
		}
		wagers = append(wagers, *wager)
	}
	return wagers, nil
}

func (r *Repository) FindUnevaluatedByMatch(ctx context.Context, matchID int64) ([]domain.Wager, error) {
	query := `
        SELECT id, user_id, league_id, match_id, outcome, score, stake, evaluated, placed_at
        FROM wagers
        WHERE match_id = $1 AND evaluated = false
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, matchID)
	if err != nil {
		zap.L().Error("can't get wagers for settlement", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wagers []domain.Wager
	for rows.Next() {
		wager, err := scanWager(rows)
		if err != nil {
			zap.L().Error("can't scan wager row for settlement", zap.Error(err))
			return nil, err
		}
		wagers = append(wagers, *wager)
	}
	return wagers, nil
}

// Place debits the stake and inserts the wager in one transaction. The user
// row is locked first so concurrent placements for the same user serialize
// on the balance check.
func (r *Repository) Place(ctx context.Context, wager *domain.Wager) error {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var credits int
		err := r.db.QueryRow(ctx, `SELECT credits FROM users WHERE id = $1 FOR UPDATE`, wager.UserID).Scan(&credits)
		if err != nil {
			zap.L().Error("can't lock user row", zap.Error(err))
			return err
		}
		if credits < wager.Stake {
			return domain.ErrInsufficientCredits
		}

		_, err = r.db.Exec(ctx, `UPDATE users SET credits = credits - $1 WHERE id = $2`, wager.Stake, wager.UserID)
		if err != nil {
			zap.L().Error("can't debit stake", zap.Error(err))
			return err
		}

		query := `
            INSERT INTO wagers (user_id, league_id, match_id, outcome, score, stake, evaluated, placed_at)
            VALUES ($1, $2, $3, $4, $5, $6, false, $7)
            RETURNING id
        `
		err = r.db.QueryRow(ctx, query, wager.UserID, wager.LeagueID, wager.MatchID,
			string(wager.Outcome), wager.Score.String(), wager.Stake, wager.PlacedAt).Scan(&wager.ID)
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return domain.ErrWagerExists
			}
			zap.L().Error("can't save wager", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Settle flips the evaluated latch and, if this run won it, applies the
// credit delta to the user and the points to the league standing. All three
// writes commit together. Returns false when another run settled the wager
// first; nothing is applied in that case.
func (r *Repository) Settle(ctx context.Context, wager domain.Wager, creditDelta, points int) (bool, error) {
	settled := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, `UPDATE wagers SET evaluated = true WHERE id = $1 AND evaluated = false`, wager.ID)
		if err != nil {
			zap.L().Error("can't flip evaluated latch", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		_, err = r.db.Exec(ctx, `UPDATE users SET credits = credits + $1 WHERE id = $2`, creditDelta, wager.UserID)
		if err != nil {
			zap.L().Error("can't apply payout", zap.Error(err))
			return err
		}

		query := `
            INSERT INTO standings (user_id, league_id, points)
            VALUES ($1, $2, $3)
            ON CONFLICT (user_id, league_id) DO UPDATE SET points = standings.points + EXCLUDED.points
        `
		_, err = r.db.Exec(ctx, query, wager.UserID, wager.LeagueID, points)
		if err != nil {
			zap.L().Error("can't update standing", zap.Error(err))
			return err
		}
		settled = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return settled, nil
}

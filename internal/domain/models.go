package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Team         string    `db:"team"`
	Credits      int       `db:"credits"`
	CreatedAt    time.Time `db:"created_at"`
}

type League struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Standing struct {
	ID       int `db:"id"`
	UserID   int `db:"user_id"`
	LeagueID int `db:"league_id"`
	Points   int `db:"points"`
}

type Wager struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	LeagueID  int       `db:"league_id"`
	MatchID   int64     `db:"match_id"`
	Outcome   Outcome   `db:"outcome"`
	Score     Score     `db:"score"`
	Stake     int       `db:"stake"`
	Evaluated bool      `db:"evaluated"`
	PlacedAt  time.Time `db:"placed_at"`
}

// LeaderboardEntry is one row of a league table: a standing joined with the
// owning user's team name and credit balance.
type LeaderboardEntry struct {
	Team    string `db:"team"`
	Points  int    `db:"points"`
	Credits int    `db:"credits"`
}

// Match is a fixture as reported by the match data source. Matches are never
// persisted; wagers reference them by MatchID only.
type Match struct {
	ID        int64
	HomeTeam  string
	AwayTeam  string
	Kickoff   time.Time
	Status    string
	HomeScore *int
	AwayScore *int
}

// Finished reports whether the source delivered a full-time score.
func (m Match) Finished() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Result derives the outcome and exact score of a finished match.
func (m Match) Result() (Outcome, Score, bool) {
	if !m.Finished() {
		return "", Score{}, false
	}
	score := Score{Home: *m.HomeScore, Away: *m.AwayScore}
	return score.Outcome(), score, true
}

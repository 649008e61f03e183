package dto

import "time"

type PlaceWagerRequestDTO struct {
	League  string `json:"league" example:"friends-cup"`
	MatchID int64  `json:"match_id" example:"497555"`
	Outcome string `json:"outcome" example:"HOME"`
	Score   string `json:"score" example:"2-1"`
	Stake   int    `json:"stake" example:"100"`
}

type PlaceWagerResponseDTO struct {
	Message string `json:"message"`
}

type GetWagersResponseDTO struct {
	MatchID   int64     `json:"match_id" example:"497555"`
	Outcome   string    `json:"outcome" example:"HOME"`
	Score     string    `json:"score" example:"2-1"`
	Stake     int       `json:"stake" example:"100"`
	Evaluated bool      `json:"evaluated" example:"false"`
	PlacedAt  time.Time `json:"placed_at" example:"2024-11-03T16:09:57+01:00"`
}

type MatchResponseDTO struct {
	ID       int64     `json:"id" example:"497555"`
	HomeTeam string    `json:"home_team" example:"AC Milan"`
	AwayTeam string    `json:"away_team" example:"AS Roma"`
	Kickoff  time.Time `json:"kickoff" example:"2024-11-03T20:45:00Z"`
}

type SettlementResponseDTO struct {
	Evaluated int `json:"evaluated" example:"3"`
}

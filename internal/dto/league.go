package dto

type CreateLeagueRequestDTO struct {
	Name     string `json:"name" example:"friends-cup"`
	Password string `json:"password" example:"secret"`
}

type JoinLeagueRequestDTO struct {
	Name     string `json:"name" example:"friends-cup"`
	Password string `json:"password" example:"secret"`
}

type LeagueResponseDTO struct {
	Name    string `json:"name" example:"friends-cup"`
	Message string `json:"message"`
}

type LeaderboardEntryDTO struct {
	Position int    `json:"position" example:"1"`
	Team     string `json:"team" example:"FC Awesome"`
	Points   int    `json:"points" example:"11"`
	Credits  int    `json:"credits" example:"1300"`
}

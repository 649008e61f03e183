package leagues

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/internal/dto"
	"github.com/mrusso19/schedina/pkg/auth"
	"github.com/mrusso19/schedina/pkg/utils"
)

type Service interface {
	CreateLeague(ctx context.Context, userID int, name, password string) (*domain.League, error)
	JoinLeague(ctx context.Context, userID int, name, password string) (*domain.League, error)
	Leaderboard(ctx context.Context, name string) ([]domain.LeaderboardEntry, error)
}

type LeagueHandler struct {
	leagueService Service
}

func New(leagueService Service) *LeagueHandler {
	return &LeagueHandler{
		leagueService: leagueService,
	}
}

// Create godoc
//
//	@Summary		Create a league
//	@Description	Create a password-protected league; the creator joins it automatically
//	@Tags			Leagues
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateLeagueRequestDTO	true	"Create league request body"
//	@Success		200		{object}	dto.LeagueResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"League already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/leagues [post]
func (h *LeagueHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateLeagueRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and password are required")
		return
	}

	league, err := h.leagueService.CreateLeague(r.Context(), userID, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrLeagueExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LeagueResponseDTO{
		Name:    league.Name,
		Message: "League successfully created",
	})
}

// Join godoc
//
//	@Summary		Join a league
//	@Description	Join an existing league with its name and password
//	@Tags			Leagues
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.JoinLeagueRequestDTO	true	"Join league request body"
//	@Success		200		{object}	dto.LeagueResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid league credentials"
//	@Failure		403		{object}	utils.Response	"League is full"
//	@Failure		404		{object}	utils.Response	"League not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/leagues/join [post]
func (h *LeagueHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.JoinLeagueRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	league, err := h.leagueService.JoinLeague(r.Context(), userID, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLeagueNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidLeagueCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, domain.ErrLeagueFull):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LeagueResponseDTO{
		Name:    league.Name,
		Message: "Joined league",
	})
}

// Leaderboard godoc
//
//	@Summary		Get league leaderboard
//	@Description	Get the league table sorted by points, credits and join order
//	@Tags			Leagues
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	path		string	true	"League name"
//	@Success		200		{array}		dto.LeaderboardEntryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"League not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/leagues/{name}/leaderboard [get]
func (h *LeagueHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	entries, err := h.leagueService.Leaderboard(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrLeagueNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.LeaderboardEntryDTO{
			Position: i + 1,
			Team:     entry.Team,
			Points:   entry.Points,
			Credits:  entry.Credits,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

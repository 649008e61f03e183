package wagers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mrusso19/schedina/internal/domain"
	"github.com/mrusso19/schedina/internal/dto"
	"github.com/mrusso19/schedina/pkg/auth"
	"github.com/mrusso19/schedina/pkg/utils"
)

type Service interface {
	PlaceWager(ctx context.Context, userID int, league string, matchID int64, outcome, score string, stake int) (*domain.Wager, error)
	GetWagers(ctx context.Context, userID int, league string) ([]domain.Wager, error)
	UpcomingMatches(ctx context.Context) ([]domain.Match, error)
}

// Settler triggers a settlement run on demand. Safe to call at any time and
// any frequency.
type Settler interface {
	Settle(ctx context.Context) int
}

type WagerHandler struct {
	wagerService Service
	settler      Settler
}

func New(wagerService Service, settler Settler) *WagerHandler {
	return &WagerHandler{
		wagerService: wagerService,
		settler:      settler,
	}
}

// PlaceWager godoc
//
//	@Summary		Place a wager
//	@Description	Stake credits on a match prediction (outcome and exact score) within a league
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceWagerRequestDTO	true	"Place wager request body"
//	@Success		200		{object}	dto.PlaceWagerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid stake, outcome or score"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient credits"
//	@Failure		403		{object}	utils.Response	"Not a member of the league"
//	@Failure		404		{object}	utils.Response	"League not found"
//	@Failure		409		{object}	utils.Response	"Wager already placed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wagers [post]
func (h *WagerHandler) PlaceWager(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PlaceWagerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.wagerService.PlaceWager(r.Context(), userID, req.League, req.MatchID, req.Outcome, req.Score, req.Stake)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLeagueNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNotLeagueMember):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrInvalidStake),
			errors.Is(err, domain.ErrInvalidOutcome),
			errors.Is(err, domain.ErrInvalidScore):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientCredits):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrWagerExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlaceWagerResponseDTO{
		Message: "Wager successfully placed",
	})
}

// GetWagers godoc
//
//	@Summary		List own wagers
//	@Description	List the caller's wagers in a league, pending first
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			league	query		string	true	"League name"
//	@Success		200		{array}		dto.GetWagersResponseDTO
//	@Success		204		{object}	utils.Response	"No wagers found"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"League not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wagers [get]
func (h *WagerHandler) GetWagers(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	league := r.URL.Query().Get("league")

	wagers, err := h.wagerService.GetWagers(r.Context(), userID, league)
	if err != nil {
		if errors.Is(err, domain.ErrLeagueNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wagers")
		return
	}
	if len(wagers) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No wagers found")
		return
	}

	response := make([]dto.GetWagersResponseDTO, len(wagers))
	for i, wager := range wagers {
		response[i] = dto.GetWagersResponseDTO{
			MatchID:   wager.MatchID,
			Outcome:   string(wager.Outcome),
			Score:     wager.Score.String(),
			Stake:     wager.Stake,
			Evaluated: wager.Evaluated,
			PlacedAt:  wager.PlacedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMatches godoc
//
//	@Summary		List upcoming matches
//	@Description	List the next scheduled fixtures open for predictions
//	@Tags			Matches
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.MatchResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Match data source unavailable"
//	@Router			/api/matches [get]
func (h *WagerHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	fixtures, err := h.wagerService.UpcomingMatches(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Match data source unavailable")
		return
	}

	response := make([]dto.MatchResponseDTO, len(fixtures))
	for i, m := range fixtures {
		response[i] = dto.MatchResponseDTO{
			ID:       m.ID,
			HomeTeam: m.HomeTeam,
			AwayTeam: m.AwayTeam,
			Kickoff:  m.Kickoff,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RunSettlement godoc
//
//	@Summary		Trigger a settlement run
//	@Description	Evaluate all outstanding wagers against finished matches and return how many were settled
//	@Tags			Settlement
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettlementResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/settlement/run [post]
func (h *WagerHandler) RunSettlement(w http.ResponseWriter, r *http.Request) {
	evaluated := h.settler.Settle(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponseDTO{
		Evaluated: evaluated,
	})
}
